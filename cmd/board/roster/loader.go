package roster

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

var (
	ErrConfigNotFound      = errors.New("config file not found")
	ErrInvalidConfigFormat = errors.New("invalid config format")
	ErrMusicDirNotFound    = errors.New("music directory not found")
	ErrAssetNotFound       = errors.New("audio file not found")
	ErrUnsupportedFormat   = errors.New("unsupported audio format")
	ErrMissingField        = errors.New("missing required field")
	ErrNegativeOffset      = errors.New("negative timecode")
	ErrReservedHotkey      = errors.New("hotkey is reserved")
)

// supportedExtensions lists the audio formats the playback transport can decode.
var supportedExtensions = []string{".mp3", ".wav", ".flac", ".ogg"}

// Load parses an INI soundboard config and returns the track roster in file
// order. Tokens in reserved may not be claimed as track hotkeys. Any error
// discards the whole roster.
func Load(configPath, musicDir string, reserved []string) ([]Track, error) {
	if info, err := os.Stat(configPath); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}
	if !strings.EqualFold(filepath.Ext(configPath), ".ini") {
		return nil, fmt.Errorf("%w: %s is not an INI file", ErrInvalidConfigFormat, configPath)
	}
	if info, err := os.Stat(musicDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMusicDirNotFound, musicDir)
	}

	cfg, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfigFormat, err)
	}

	var tracks []Track
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		track, err := parseSection(section, musicDir, reserved)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", section.Name(), err)
		}
		tracks = append(tracks, track)
	}

	slog.Debug("loaded soundboard config", "path", configPath, "tracks", len(tracks))
	return tracks, nil
}

func parseSection(sec *ini.Section, musicDir string, reserved []string) (Track, error) {
	filename := unquote(sec.Key("filename").String())
	if filename == "" {
		return Track{}, fmt.Errorf("%w: filename", ErrMissingField)
	}
	title := unquote(sec.Key("title").String())
	if title == "" {
		return Track{}, fmt.Errorf("%w: title", ErrMissingField)
	}

	path := filepath.Join(musicDir, filename)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return Track{}, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
	}
	if !lo.Contains(supportedExtensions, strings.ToLower(filepath.Ext(path))) {
		return Track{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	offset := time.Duration(0)
	if raw := sec.Key("timecode").String(); raw != "" {
		seconds, err := sec.Key("timecode").Int()
		if err != nil {
			return Track{}, fmt.Errorf("%w: timecode %q is not an integer", ErrInvalidConfigFormat, raw)
		}
		if seconds < 0 {
			return Track{}, fmt.Errorf("%w: %d", ErrNegativeOffset, seconds)
		}
		offset = time.Duration(seconds) * time.Second
	}

	key := unquote(sec.Key("key").String())
	if key != "" && lo.Contains(reserved, key) {
		return Track{}, fmt.Errorf("%w: %q", ErrReservedHotkey, key)
	}

	artist := unquote(sec.Key("artist").String())
	if artist == "" {
		artist = DefaultArtist
	}

	return Track{
		Filepath:    path,
		Title:       title,
		Artist:      artist,
		StartOffset: offset,
		Hotkey:      key,
		Category:    unquote(sec.Key("category").String()),
	}, nil
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}
