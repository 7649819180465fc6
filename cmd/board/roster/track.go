package roster

import (
	"fmt"
	"time"
)

// DefaultArtist is used when a config section has no artist key.
const DefaultArtist = "Unknown Artist"

// Track describes one playable clip. Values are immutable after Load.
type Track struct {
	Filepath    string        // Resolved path to the audio asset
	Title       string        // Display name, required
	Artist      string        // Display name, defaults to DefaultArtist
	StartOffset time.Duration // Where playback begins within the asset
	Hotkey      string        // Key token bound to this track, "" for none
	Category    string        // Grouping label, "" for uncategorized
}

func (t Track) String() string {
	return fmt.Sprintf("<Track %s - %s>", t.Title, t.Artist)
}

// ButtonText renders the label shown on the track's trigger.
func (t Track) ButtonText() string {
	text := t.Title + "\n" + t.Artist
	if t.Hotkey != "" {
		text += "\n(" + t.Hotkey + ")"
	}
	return text
}
