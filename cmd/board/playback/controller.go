package playback

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gigurra/sampleboard/cmd/board/roster"
)

var (
	// ErrNoTracks means a random-play request hit an empty category bucket.
	ErrNoTracks = errors.New("no tracks available")
	// ErrAudioSubsystem wraps transport failures that survived the one
	// permitted init-and-retry.
	ErrAudioSubsystem = errors.New("audio subsystem failure")
)

// Controller owns the playback state: which asset is loaded and whether it
// is playing. All calls are expected on the single UI event loop, so the
// controller itself does no locking.
type Controller struct {
	transport Transport
	current   string
	playing   bool
	rnd       *rand.Rand
}

// NewController returns an idle controller driving the given transport.
func NewController(transport Transport) *Controller {
	return &Controller{
		transport: transport,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// PlayTrack loads the track and starts playback at its offset, superseding
// whatever was playing. A not-ready audio subsystem gets exactly one
// init-and-retry before the failure is surfaced and the controller goes idle.
func (c *Controller) PlayTrack(track roster.Track) error {
	err := c.loadAndPlay(track)
	if errors.Is(err, ErrSubsystemNotReady) {
		if initErr := c.transport.InitSubsystem(); initErr != nil {
			err = initErr
		} else {
			err = c.loadAndPlay(track)
		}
	}
	if err != nil {
		c.current = ""
		c.playing = false
		return fmt.Errorf("%w: %v", ErrAudioSubsystem, err)
	}

	c.current = track.Filepath
	c.playing = true
	return nil
}

func (c *Controller) loadAndPlay(track roster.Track) error {
	if err := c.transport.LoadAsset(track.Filepath); err != nil {
		return err
	}
	return c.transport.Play(track.StartOffset)
}

// PlayRandomIn plays a uniformly chosen track from the named category
// bucket. An empty or unknown category yields ErrNoTracks and leaves the
// playback state untouched.
func (c *Controller) PlayRandomIn(cats *roster.Categories, category string) error {
	bucket := cats.Tracks(category)
	if len(bucket) == 0 {
		return fmt.Errorf("%w: category %q", ErrNoTracks, category)
	}
	return c.PlayTrack(bucket[c.rnd.Intn(len(bucket))])
}

// Stop halts and unloads whatever is playing and always goes idle.
// Stopping an idle board is not an error.
func (c *Controller) Stop() error {
	c.current = ""
	c.playing = false

	if err := c.transport.Stop(); err != nil && !errors.Is(err, ErrNothingLoaded) {
		return err
	}
	if err := c.transport.Unload(); err != nil && !errors.Is(err, ErrNothingLoaded) {
		return err
	}
	return nil
}

// Status reports the loaded asset path and whether playback is active.
func (c *Controller) Status() (path string, playing bool) {
	return c.current, c.playing
}
