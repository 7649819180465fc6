package board

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/sampleboard/cmd/board/hotkeys"
	"github.com/gigurra/sampleboard/cmd/board/playback"
	"github.com/gigurra/sampleboard/cmd/board/roster"
	"github.com/mattn/go-runewidth"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	cellStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	playingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("28"))
	emptyCellStyle = lipgloss.NewStyle().Background(lipgloss.Color("234"))
	wideStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Align(lipgloss.Center)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Grid geometry. The hit test in hitTest must stay in sync with View.
const (
	gridCols  = 9
	gridRows  = 5
	cellWidth = 16
	cellLines = 3
	cellGap   = 1
	gridTop   = 2 // tab line + blank line
)

// trigger binds one rendered cell to its action at construction time.
type trigger struct {
	label  string
	path   string // asset path, for highlighting the playing track
	action hotkeys.Action
}

type model struct {
	cats     *roster.Categories
	catNames []string
	reg      *hotkeys.Registry
	ctrl     *playback.Controller

	pages  [][]trigger // one page of track triggers per category tab
	tab    int
	width  int
	height int
	status string
	errMsg string
}

func newModel(cats *roster.Categories, reg *hotkeys.Registry, ctrl *playback.Controller) model {
	names := cats.Names()
	pages := make([][]trigger, len(names))
	for i, name := range names {
		bucket := cats.Tracks(name)
		if len(bucket) > gridRows*gridCols {
			bucket = bucket[:gridRows*gridCols]
		}
		for _, t := range bucket {
			pages[i] = append(pages[i], trigger{
				label:  t.ButtonText(),
				path:   t.Filepath,
				action: hotkeys.PlaySpecific{Track: t},
			})
		}
	}

	return model{
		cats:     cats,
		catNames: names,
		reg:      reg,
		ctrl:     ctrl,
		pages:    pages,
		status:   "ready",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		token := hotkeys.Normalize(msg.String())
		switch token {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right":
			m.tab = (m.tab + 1) % len(m.catNames)
			return m, nil
		case "shift+tab", "left":
			m.tab = (m.tab + len(m.catNames) - 1) % len(m.catNames)
			return m, nil
		case "r":
			m = m.dispatch(hotkeys.PlayRandom{Category: m.catNames[m.tab]})
			return m, nil
		default:
			if action, ok := m.reg.Resolve(token); ok {
				m = m.dispatch(action)
			}
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if action, ok := m.hitTest(msg.X, msg.Y); ok {
				m = m.dispatch(action)
			}
		}
		return m, nil
	}

	return m, nil
}

// dispatch executes a bound action and records the outcome for the status
// line. Playback errors never terminate the program.
func (m model) dispatch(action hotkeys.Action) model {
	switch a := action.(type) {
	case hotkeys.PlaySpecific:
		return m.report("playing "+a.Track.Title, m.ctrl.PlayTrack(a.Track))
	case hotkeys.PlayRandom:
		return m.report("random from "+a.Category, m.ctrl.PlayRandomIn(m.cats, a.Category))
	case hotkeys.Stop:
		return m.report("stopped", m.ctrl.Stop())
	}
	return m
}

func (m model) report(what string, err error) model {
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.errMsg = ""
	m.status = what
	return m
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	playingPath, _ := m.ctrl.Status()
	page := m.pages[m.tab]
	for row := 0; row < gridRows; row++ {
		cells := make([]string, 0, gridCols)
		for col := 0; col < gridCols; col++ {
			idx := row*gridCols + col
			if idx < len(page) {
				style := cellStyle
				if page[idx].path == playingPath && playingPath != "" {
					style = playingStyle
				}
				cells = append(cells, renderCell(page[idx].label, style))
			} else {
				cells = append(cells, renderCell("", emptyCellStyle))
			}
		}
		b.WriteString(joinCells(cells))
		b.WriteString("\n\n")
	}

	bottoms := make([]string, 0, 3)
	for _, t := range m.bottomTriggers() {
		bottoms = append(bottoms, wideStyle.Width(wideWidth()).Height(cellLines).Render(t.label))
	}
	b.WriteString(joinCells(bottoms))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/←/→ switch category · hotkeys trigger samples · r random in tab · esc quit"))

	return b.String()
}

func (m model) renderTabs() string {
	tabs := make([]string, 0, len(m.catNames))
	for i, name := range m.catNames {
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) renderStatus() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	line := m.status
	if path, playing := m.ctrl.Status(); playing {
		line += "  [" + path + "]"
	}
	return statusStyle.Render(line)
}

// bottomTriggers returns the wide bottom-row triggers for the active tab.
func (m model) bottomTriggers() []trigger {
	active := m.catNames[m.tab]
	return []trigger{
		{label: "Random Music\n(enter)", action: hotkeys.PlayRandom{Category: roster.AllCategory}},
		{label: "Random " + active + "\n(r)", action: hotkeys.PlayRandom{Category: active}},
		{label: "Stop Music\n(space)", action: hotkeys.Stop{}},
	}
}

// hitTest maps a terminal cell coordinate to the trigger rendered there.
func (m model) hitTest(x, y int) (hotkeys.Action, bool) {
	stride := cellWidth + cellGap

	gridBottom := gridTop + gridRows*(cellLines+1)
	if y >= gridTop && y < gridBottom {
		rel := y - gridTop
		if rel%(cellLines+1) >= cellLines {
			return nil, false // gap row between cells
		}
		if x%stride >= cellWidth {
			return nil, false // gap column between cells
		}
		col := x / stride
		if col >= gridCols {
			return nil, false
		}
		idx := (rel/(cellLines+1))*gridCols + col
		page := m.pages[m.tab]
		if idx >= len(page) {
			return nil, false
		}
		return page[idx].action, true
	}

	if y >= gridBottom && y < gridBottom+cellLines {
		wideStride := wideWidth() + cellGap
		if x%wideStride >= wideWidth() {
			return nil, false
		}
		zone := x / wideStride
		bottoms := m.bottomTriggers()
		if zone < 0 || zone >= len(bottoms) {
			return nil, false
		}
		return bottoms[zone].action, true
	}

	return nil, false
}

// wideWidth is the width of each bottom-row trigger: three buttons with two
// gaps spanning the same width as the grid.
func wideWidth() int {
	gridWidth := gridCols*(cellWidth+cellGap) - cellGap
	return (gridWidth - 2*cellGap) / 3
}

func renderCell(label string, style lipgloss.Style) string {
	lines := strings.Split(label, "\n")
	for len(lines) < cellLines {
		lines = append(lines, "")
	}
	lines = lines[:cellLines]
	for i, line := range lines {
		lines[i] = runewidth.Truncate(line, cellWidth, "…")
	}
	return style.Width(cellWidth).Height(cellLines).Render(strings.Join(lines, "\n"))
}

func joinCells(cells []string) string {
	gap := strings.Repeat(" ", cellGap)
	joined := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			joined = append(joined, gap)
		}
		joined = append(joined, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}
