package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/clawful/internal/config"
	"github.com/vovakirdan/clawful/internal/core"
)

var difficultyPresets = []struct {
	preset config.DifficultyPreset
	name   string
	blurb  string
}{
	{config.DifficultyEasy, "Easy", "bigger pile, more bombs"},
	{config.DifficultyNormal, "Normal", "speeds up as you score"},
	{config.DifficultyHard, "Hard", "small pile, few bombs"},
	{config.DifficultyFixed, "Fixed", "no progression"},
}

// DifficultyModel asks for a preset before a game starts. Normal is
// preselected.
type DifficultyModel struct {
	title  string
	cursor int
	width  int
	keys   *KeyMapper
	exit   menuExit
	back   bool
}

// NewDifficultyModel builds the picker shown before title starts.
func NewDifficultyModel(title string, width, _ int) DifficultyModel {
	return DifficultyModel{title: title, cursor: 1, width: width, keys: NewKeyMapper()}
}

// Init implements tea.Model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(0, m.cursor-1)
		case MenuActionDown:
			m.cursor = min(len(difficultyPresets)-1, m.cursor+1)
		case MenuActionSelect:
			m.exit = menuPicked
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			m.exit = menuQuit
			return m, tea.Quit
		case MenuActionQuit:
			m.exit = menuQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m DifficultyModel) View() string {
	if m.exit != menuOpen {
		return ""
	}

	lines := []string{menuTitleStyle.Render(strings.ToUpper(m.title)), "", "Difficulty", ""}
	for i, d := range difficultyPresets {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(9).Render(d.name),
			menuHintStyle.Render(d.blurb))
		if i == m.cursor {
			row = menuPickStyle.Render("> ") + row
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	card := menuCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	var b strings.Builder
	b.WriteString("\n")
	for _, l := range strings.Split(card, "\n") {
		b.WriteString(centerText(l, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("enter play   esc back   q quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil when the picker was left
// without one.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	if m.exit != menuPicked {
		return nil
	}
	p := difficultyPresets[m.cursor].preset
	return &p
}

// IsQuitting reports a quit, as opposed to backing out to the menu.
func (m DifficultyModel) IsQuitting() bool {
	return m.exit == menuQuit && !m.back
}

// RunDifficultySelector shows the picker. A nil preset with quit false
// means the user went back to the menu.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (preset *config.DifficultyPreset, quit bool, err error) {
	final, err := tea.NewProgram(NewDifficultyModel(title, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, false, err
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return nil, false, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
