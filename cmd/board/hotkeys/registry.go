package hotkeys

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gigurra/sampleboard/cmd/board/roster"
	"github.com/samber/lo"
)

var (
	ErrReservedHotkey  = errors.New("hotkey is reserved")
	ErrDuplicateHotkey = errors.New("duplicate hotkey")
)

const (
	// StopToken halts playback.
	StopToken = "space"
	// RandomAllToken plays a random track from the whole roster.
	RandomAllToken = "enter"
	// maxSelectors caps how many categories get a digit selector key.
	maxSelectors = 9
)

// uiTokens are claimed by the presentation surface for navigation.
var uiTokens = []string{"esc", "tab", "left", "right", "r"}

// ReservedTokens returns every token the board itself owns: stop, random-all,
// the category selector digits 1..9, and the UI navigation keys. Tracks may
// not claim any of these.
func ReservedTokens() []string {
	tokens := []string{StopToken, RandomAllToken}
	tokens = append(tokens, uiTokens...)
	for i := 1; i <= maxSelectors; i++ {
		tokens = append(tokens, strconv.Itoa(i))
	}
	return tokens
}

// Normalize maps raw terminal key strings onto registry tokens.
func Normalize(token string) string {
	if token == " " {
		return StopToken
	}
	return token
}

// Action is what a resolved key token triggers.
type Action interface {
	isAction()
}

// PlaySpecific plays one particular track.
type PlaySpecific struct {
	Track roster.Track
}

// PlayRandom plays a uniformly chosen track from a category bucket.
type PlayRandom struct {
	Category string
}

// Stop halts playback.
type Stop struct{}

func (PlaySpecific) isAction() {}
func (PlayRandom) isAction()   {}
func (Stop) isAction()         {}

// Binding pairs a token with its bound action, for listings.
type Binding struct {
	Token  string
	Action Action
}

// Registry maps key tokens to playback actions. Built once at startup,
// read-only afterward.
type Registry struct {
	actions map[string]Action
	order   []string
}

// Build binds every track hotkey, one digit selector per category (in index
// order, AllCategory first), the random-all token and the stop token.
// Categories beyond the 9th get no selector; that is warned, not fatal.
func Build(tracks []roster.Track, cats *roster.Categories) (*Registry, error) {
	r := &Registry{actions: map[string]Action{}}

	reserved := ReservedTokens()
	for _, t := range tracks {
		if t.Hotkey == "" {
			continue
		}
		if lo.Contains(reserved, t.Hotkey) {
			return nil, fmt.Errorf("%w: %q claimed by track %q", ErrReservedHotkey, t.Hotkey, t.Title)
		}
		if _, taken := r.actions[t.Hotkey]; taken {
			return nil, fmt.Errorf("%w: %q claimed again by track %q", ErrDuplicateHotkey, t.Hotkey, t.Title)
		}
		r.bind(t.Hotkey, PlaySpecific{Track: t})
	}

	names := cats.Names()
	for i, name := range names {
		if i >= maxSelectors {
			slog.Warn("more categories than selector keys, some categories only reachable from the UI",
				"unreachable", strings.Join(names[maxSelectors:], ", "))
			break
		}
		r.bind(strconv.Itoa(i+1), PlayRandom{Category: name})
	}

	r.bind(RandomAllToken, PlayRandom{Category: roster.AllCategory})
	r.bind(StopToken, Stop{})

	return r, nil
}

func (r *Registry) bind(token string, a Action) {
	if _, exists := r.actions[token]; !exists {
		r.order = append(r.order, token)
	}
	r.actions[token] = a
}

// Resolve looks up the action for a key token. Unknown tokens resolve to
// nothing, which callers treat as a no-op.
func (r *Registry) Resolve(token string) (Action, bool) {
	a, ok := r.actions[token]
	return a, ok
}

// Bindings returns all bindings in deterministic bind order.
func (r *Registry) Bindings() []Binding {
	return lo.Map(r.order, func(token string, _ int) Binding {
		return Binding{Token: token, Action: r.actions[token]}
	})
}
