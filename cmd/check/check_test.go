package check

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gigurra/sampleboard/cmd/board/hotkeys"
	"github.com/gigurra/sampleboard/cmd/board/roster"
)

func writeFixture(t *testing.T) (configPath, musicDir string) {
	t.Helper()
	dir := t.TempDir()

	musicDir = filepath.Join(dir, "music")
	if err := os.MkdirAll(musicDir, 0755); err != nil {
		t.Fatalf("Failed to create music dir: %v", err)
	}
	for _, name := range []string{"a.mp3", "b.wav"} {
		if err := os.WriteFile(filepath.Join(musicDir, name), []byte("audio"), 0644); err != nil {
			t.Fatalf("Failed to create asset %s: %v", name, err)
		}
	}

	configPath = filepath.Join(dir, "board.ini")
	config := `
[theme]
filename = a.mp3
title = "Main Theme"
key = q

[boss]
filename = b.wav
title = Boss
key = w
category = boss
`
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath, musicDir
}

func TestCheckValidConfig(t *testing.T) {
	configPath, musicDir := writeFixture(t)

	var buf bytes.Buffer
	err := Run(&Params{Config: configPath, MusicDir: musicDir}, &buf)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Main Theme", "Boss", "Unknown Artist", "2 tracks in 2 categories", "OK"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckPrintsBindings(t *testing.T) {
	configPath, musicDir := writeFixture(t)

	var buf bytes.Buffer
	err := Run(&Params{Config: configPath, MusicDir: musicDir, Keys: true}, &buf)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"play Main Theme", "play random from all", "play random from boss", "stop playback"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckFailsOnMissingConfig(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	err := Run(&Params{Config: filepath.Join(dir, "missing.ini"), MusicDir: dir}, &buf)
	if !errors.Is(err, roster.ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestCheckFailsOnDuplicateHotkey(t *testing.T) {
	configPath, musicDir := writeFixture(t)

	config := `
[a]
filename = a.mp3
title = A
key = q

[b]
filename = b.wav
title = B
key = q
`
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	var buf bytes.Buffer
	err := Run(&Params{Config: configPath, MusicDir: musicDir}, &buf)
	if !errors.Is(err, hotkeys.ErrDuplicateHotkey) {
		t.Fatalf("Expected ErrDuplicateHotkey, got %v", err)
	}
}
