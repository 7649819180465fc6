//go:build (linux && cgo) || windows || darwin

package playback

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// AudioAvailable indicates whether audio output is supported in this build.
const AudioAvailable = true

// beepTransport plays audio through the beep speaker. It holds at most one
// decoded asset at a time.
type beepTransport struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate
	file        *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
}

// NewTransport returns the beep-backed audio transport.
func NewTransport() Transport {
	return &beepTransport{
		sampleRate: beep.SampleRate(44100),
	}
}

func (t *beepTransport) InitSubsystem() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := speaker.Init(t.sampleRate, t.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	t.initialized = true
	return nil
}

func (t *beepTransport) LoadAsset(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// The previous asset is superseded, not an error
	_ = t.unloadLocked()

	file, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(path, file)
	if err != nil {
		_ = file.Close()
		return err
	}

	t.file = file
	t.streamer = streamer
	t.format = format
	return nil
}

func (t *beepTransport) Play(offset time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.streamer == nil {
		return ErrNothingLoaded
	}
	if !t.initialized {
		return ErrSubsystemNotReady
	}

	if offset > 0 {
		if err := t.streamer.Seek(t.format.SampleRate.N(offset)); err != nil {
			return err
		}
	}

	speaker.Clear()
	speaker.Play(beep.Resample(4, t.format.SampleRate, t.sampleRate, t.streamer))
	return nil
}

func (t *beepTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.streamer == nil {
		return ErrNothingLoaded
	}
	if t.initialized {
		speaker.Clear()
	}
	return nil
}

func (t *beepTransport) Unload() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unloadLocked()
}

func (t *beepTransport) unloadLocked() error {
	if t.streamer == nil {
		return ErrNothingLoaded
	}
	_ = t.streamer.Close()
	if t.file != nil {
		_ = t.file.Close()
		t.file = nil
	}
	t.streamer = nil
	return nil
}

func decode(path string, file *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode(file)
	case ".wav":
		return wav.Decode(file)
	case ".flac":
		return flac.Decode(file)
	case ".ogg":
		return vorbis.Decode(file)
	default:
		return nil, beep.Format{}, fmt.Errorf("no decoder for %s", filepath.Ext(path))
	}
}
