// Package tui provides the Bubble Tea front end for clawful: menus, the
// scoreboard and the fixed-tick game loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clawful/internal/core"
)

// TickMsg advances the game by one step.
type TickMsg time.Time

func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
