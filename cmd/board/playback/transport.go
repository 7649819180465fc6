package playback

import (
	"errors"
	"time"
)

var (
	// ErrSubsystemNotReady is returned by LoadAsset/Play before InitSubsystem
	// has succeeded. The controller recovers from it exactly once.
	ErrSubsystemNotReady = errors.New("audio subsystem not initialized")
	// ErrNothingLoaded is returned by Stop/Unload when the asset slot is empty.
	ErrNothingLoaded = errors.New("nothing loaded")
)

// Transport is the audio service owning the single active asset slot.
type Transport interface {
	InitSubsystem() error
	LoadAsset(path string) error
	Play(offset time.Duration) error
	Stop() error
	Unload() error
}
