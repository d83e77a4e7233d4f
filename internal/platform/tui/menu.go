package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clawful/internal/core"
	"github.com/vovakirdan/clawful/internal/multiplayer"
	"github.com/vovakirdan/clawful/internal/registry"
	"github.com/vovakirdan/clawful/internal/storage"
)

// modeEntry is one line of the mode picker.
type modeEntry struct {
	id    string
	title string
	mode  multiplayer.MatchMode
	best  int
}

func (e modeEntry) label() string {
	switch {
	case e.mode == multiplayer.MatchModeLocalDuel:
		return e.title + " (2P)"
	case e.best > 0:
		return fmt.Sprintf("%s (best %d)", e.title, e.best)
	}
	return e.title
}

// menuExit says how the picker was left.
type menuExit int

const (
	menuOpen menuExit = iota
	menuPicked
	menuScores
	menuQuit
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 3)
)

// modeHints describes each mode under the list.
var modeHints = map[string]string{
	"clawful":       "Only bombs score. Build big groups, then blow them up.",
	"clawful_chain": "Groups of four pop on landing. Line up chains.",
	"clawful_duel":  "P1: WASD + Space   P2: Arrows + Enter. One shared pile.",
}

// MenuModel picks a clawful mode or opens the scoreboard.
type MenuModel struct {
	entries []modeEntry
	cursor  int
	cfg     core.RuntimeConfig
	keys    *KeyMapper
	exit    menuExit
}

// NewMenuModel lists the registered modes with their best solo scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var entries []modeEntry
	for _, g := range registry.List() {
		e := modeEntry{id: g.ID, title: g.Title, mode: multiplayer.MatchModeSolo}
		if g.Multi {
			e.mode = multiplayer.MatchModeLocalDuel
		} else if store != nil {
			e.best, _ = store.HighScore(g.ID)
		}
		entries = append(entries, e)
	}
	return MenuModel{entries: entries, cfg: cfg, keys: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.ScreenW, m.cfg.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(0, m.cursor-1)
		case MenuActionDown:
			m.cursor = min(len(m.entries)-1, m.cursor+1)
		case MenuActionSelect:
			if len(m.entries) > 0 {
				m.exit = menuPicked
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.exit = menuScores
			return m, tea.Quit
		case MenuActionQuit:
			m.exit = menuQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.exit == menuQuit {
		return ""
	}

	lines := make([]string, 0, len(m.entries)+4)
	lines = append(lines, menuTitleStyle.Render("C L A W F U L"), "", "Select a mode", "")
	for i, e := range m.entries {
		if i == m.cursor {
			lines = append(lines, menuPickStyle.Render("> "+e.label()))
		} else {
			lines = append(lines, "  "+e.label())
		}
	}
	card := menuCardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range strings.Split(card, "\n") {
		b.WriteString(centerText(l, m.cfg.ScreenW))
		b.WriteString("\n")
	}
	if len(m.entries) > 0 {
		if hint, ok := modeHints[m.entries[m.cursor].id]; ok {
			b.WriteString("\n")
			b.WriteString(centerText(menuHintStyle.Render(hint), m.cfg.ScreenW))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("up/down move   enter play   tab scores   q quit"), m.cfg.ScreenW))
	b.WriteString("\n")
	return b.String()
}

// Result reports what the user chose.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{Config: m.cfg}
	switch m.exit {
	case menuPicked:
		e := m.entries[m.cursor]
		r.GameID, r.Title, r.Mode = e.id, e.title, e.mode
	case menuScores:
		r.WantsScoreboard = true
	default:
		r.Quit = true
	}
	return r
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is the outcome of one trip through the mode picker. Config
// carries any resize seen while the menu was open.
type MenuResult struct {
	GameID          string
	Title           string
	Mode            multiplayer.MatchMode
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the mode picker until the user picks, quits or asks for
// the scoreboard.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
