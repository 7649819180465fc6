//go:build !((linux && cgo) || windows || darwin)

package playback

import (
	"os"
	"sync"
	"time"
)

// AudioAvailable indicates whether audio output is supported in this build.
// Audio requires CGO for the native sound libraries on this platform.
const AudioAvailable = false

// nullTransport keeps the board usable in builds without audio support. It
// mimics the real transport's state rules so the controller behaves the same.
type nullTransport struct {
	mu          sync.Mutex
	initialized bool
	loaded      bool
}

// NewTransport returns a silent transport.
func NewTransport() Transport {
	return &nullTransport{}
}

func (t *nullTransport) InitSubsystem() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.initialized = true
	return nil
}

func (t *nullTransport) LoadAsset(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		return err
	}
	t.loaded = true
	return nil
}

func (t *nullTransport) Play(offset time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.loaded {
		return ErrNothingLoaded
	}
	if !t.initialized {
		return ErrSubsystemNotReady
	}
	return nil
}

func (t *nullTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.loaded {
		return ErrNothingLoaded
	}
	return nil
}

func (t *nullTransport) Unload() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.loaded {
		return ErrNothingLoaded
	}
	t.loaded = false
	return nil
}
