package board

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/sampleboard/cmd/board/hotkeys"
	"github.com/gigurra/sampleboard/cmd/board/playback"
	"github.com/gigurra/sampleboard/cmd/board/roster"
)

func testModel(t *testing.T) model {
	t.Helper()
	tracks := []roster.Track{
		{Filepath: "m/a.mp3", Title: "Theme", Artist: roster.DefaultArtist, Hotkey: "q"},
		{Filepath: "m/b.mp3", Title: "Boss", Artist: roster.DefaultArtist, Hotkey: "w", Category: "boss"},
	}
	cats := roster.BuildCategories(tracks)
	reg, err := hotkeys.Build(tracks, cats)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return newModel(cats, reg, playback.NewController(playback.NewTransport()))
}

func keyMsg(k tea.Key) tea.Msg {
	return tea.KeyMsg(k)
}

func TestTabKeyCyclesCategories(t *testing.T) {
	m := testModel(t)
	if m.tab != 0 {
		t.Fatalf("Initial tab = %d, want 0", m.tab)
	}

	next, _ := m.Update(keyMsg(tea.Key{Type: tea.KeyTab}))
	m = next.(model)
	if m.tab != 1 {
		t.Errorf("tab = %d after tab key, want 1", m.tab)
	}

	next, _ = m.Update(keyMsg(tea.Key{Type: tea.KeyTab}))
	m = next.(model)
	if m.tab != 0 {
		t.Errorf("tab = %d after wrapping, want 0", m.tab)
	}

	next, _ = m.Update(keyMsg(tea.Key{Type: tea.KeyShiftTab}))
	m = next.(model)
	if m.tab != 1 {
		t.Errorf("tab = %d after shift+tab, want 1 (wrap backwards)", m.tab)
	}
}

func TestUnknownKeyIsNoop(t *testing.T) {
	m := testModel(t)
	before := m.status

	next, _ := m.Update(keyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{'z'}}))
	m = next.(model)

	if m.status != before || m.errMsg != "" {
		t.Errorf("Unknown key changed state: status %q, err %q", m.status, m.errMsg)
	}
}

func TestStopKeyTwiceWhenIdleNeverErrors(t *testing.T) {
	m := testModel(t)

	for i := 0; i < 2; i++ {
		next, _ := m.Update(keyMsg(tea.Key{Type: tea.KeySpace, Runes: []rune{' '}}))
		m = next.(model)
		if m.errMsg != "" {
			t.Fatalf("Stop press #%d errored: %q", i+1, m.errMsg)
		}
	}
	if m.status != "stopped" {
		t.Errorf("status = %q, want stopped", m.status)
	}
}

func TestHitTestMapsGridAndBottomRow(t *testing.T) {
	m := testModel(t)

	// First cell of the "all" tab
	action, ok := m.hitTest(0, gridTop)
	if !ok {
		t.Fatal("First cell not hit")
	}
	if play, ok := action.(hotkeys.PlaySpecific); !ok || play.Track.Title != "Theme" {
		t.Errorf("First cell resolved to %v, want PlaySpecific(Theme)", action)
	}

	// Gap row between cells hits nothing
	if _, ok := m.hitTest(0, gridTop+cellLines); ok {
		t.Error("Gap row reported a hit")
	}

	// Empty cell hits nothing
	if _, ok := m.hitTest(2*(cellWidth+cellGap), gridTop); ok {
		t.Error("Empty cell reported a hit")
	}

	// Third bottom-row zone is the stop trigger
	bottomTop := gridTop + gridRows*(cellLines+1)
	action, ok = m.hitTest(2*(wideWidth()+cellGap), bottomTop)
	if !ok {
		t.Fatal("Stop trigger not hit")
	}
	if _, ok := action.(hotkeys.Stop); !ok {
		t.Errorf("Stop zone resolved to %v, want Stop", action)
	}
}

func TestBossTabShowsOnlyBossTracks(t *testing.T) {
	m := testModel(t)
	if len(m.pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(m.pages))
	}
	if len(m.pages[0]) != 2 {
		t.Errorf("all page has %d triggers, want 2", len(m.pages[0]))
	}
	if len(m.pages[1]) != 1 {
		t.Fatalf("boss page has %d triggers, want 1", len(m.pages[1]))
	}
	if play, ok := m.pages[1][0].action.(hotkeys.PlaySpecific); !ok || play.Track.Title != "Boss" {
		t.Errorf("boss page trigger = %v, want PlaySpecific(Boss)", m.pages[1][0].action)
	}
}

func TestRenderCellDimensions(t *testing.T) {
	long := strings.Repeat("x", 3*cellWidth) + "\nartist"
	cell := renderCell(long, cellStyle)

	lines := strings.Split(cell, "\n")
	if len(lines) != cellLines {
		t.Fatalf("Cell has %d lines, want %d", len(lines), cellLines)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != cellWidth {
			t.Errorf("Line %d width = %d, want %d", i, w, cellWidth)
		}
	}
}
