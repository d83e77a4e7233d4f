package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clawful/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeySolo(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionDrop, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapDuelKeySplitsKeyboard(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		player core.PlayerID
		want   core.Action
	}{
		{"p1 left", runeKey('a'), core.Player1, core.ActionLeft},
		{"p1 pick", runeKey('w'), core.Player1, core.ActionUp},
		{"p1 drop", tea.KeyMsg{Type: tea.KeySpace}, core.Player1, core.ActionDrop},
		{"p2 right", tea.KeyMsg{Type: tea.KeyRight}, core.Player2, core.ActionRight},
		{"p2 pick", tea.KeyMsg{Type: tea.KeyDown}, core.Player2, core.ActionDown},
		{"p2 drop", tea.KeyMsg{Type: tea.KeyEnter}, core.Player2, core.ActionDrop},
		{"shared pause", runeKey('p'), core.Player1, core.ActionPause},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, got, _ := km.MapDuelKey(tt.msg)
			if player != tt.player || got != tt.want {
				t.Errorf("MapDuelKey(%q) = %v %v, want %v %v", tt.msg.String(), player, got, tt.player, tt.want)
			}
		})
	}
}

func TestMapKeyToMultiFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewMultiInputFrame()

	km.MapKeyToMultiFrame(runeKey('d'), &frame)
	km.MapKeyToMultiFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)

	if !frame.Player1().Has(core.ActionRight) || frame.Player1().Has(core.ActionDrop) {
		t.Errorf("player 1 frame = %v", frame.Player1().Actions)
	}
	if !frame.Player2().Has(core.ActionDrop) || frame.Player2().Has(core.ActionRight) {
		t.Errorf("player 2 frame = %v", frame.Player2().Actions)
	}
	if !km.MapKeyToMultiFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
