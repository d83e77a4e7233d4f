package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clawful/internal/core"
)

// seatAction is an action bound to one duel seat.
type seatAction struct {
	player core.PlayerID
	action core.Action
}

// Keys that mean the same thing in every game screen.
var sharedKeys = map[string]core.Action{
	"b":   core.ActionBack,
	"esc": core.ActionBack,
	"p":   core.ActionPause,
	"r":   core.ActionRestart,
}

// Solo play: arrows and WASD both steer the claw.
var soloKeys = map[string]core.Action{
	"w":     core.ActionUp,
	"up":    core.ActionUp,
	"s":     core.ActionDown,
	"down":  core.ActionDown,
	"a":     core.ActionLeft,
	"left":  core.ActionLeft,
	"d":     core.ActionRight,
	"right": core.ActionRight,
	" ":     core.ActionDrop,
	"enter": core.ActionConfirm,
}

// Duel play: player 1 on WASD and space, player 2 on the arrows and enter.
var duelKeys = map[string]seatAction{
	"w": {core.Player1, core.ActionUp},
	"s": {core.Player1, core.ActionDown},
	"a": {core.Player1, core.ActionLeft},
	"d": {core.Player1, core.ActionRight},
	" ": {core.Player1, core.ActionDrop},

	"up":    {core.Player2, core.ActionUp},
	"down":  {core.Player2, core.ActionDown},
	"left":  {core.Player2, core.ActionLeft},
	"right": {core.Player2, core.ActionRight},
	"enter": {core.Player2, core.ActionDrop},
}

func isQuitKey(key string) bool {
	return key == "q" || key == "ctrl+c"
}

// KeyMapper turns Bubble Tea key messages into game and menu actions.
type KeyMapper struct{}

// NewKeyMapper returns the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey maps a key for a solo game. isQuit is set for q and ctrl+c.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if isQuitKey(key) {
		return core.ActionQuit, true
	}
	if a, ok := soloKeys[key]; ok {
		return a, false
	}
	return sharedKeys[key], false
}

// MapDuelKey maps a key to the duel seat that owns it. Shared keys are
// reported for player 1.
func (km *KeyMapper) MapDuelKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()
	if isQuitKey(key) {
		return core.Player1, core.ActionQuit, true
	}
	if sa, ok := duelKeys[key]; ok {
		return sa.player, sa.action, false
	}
	return core.Player1, sharedKeys[key], false
}

// MapKeyToFrame sets the solo action of msg in frame and reports a quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return quit
}

// MapKeyToMultiFrame sets the action of msg in the owning player's frame
// and reports a quit.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, quit := km.MapDuelKey(msg)
	if action != core.ActionNone {
		in := frame.Player(player)
		in.Set(action)
		frame.SetPlayer(player, in)
	}
	return quit
}

// MenuAction is what a key does on a menu screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuKeys = map[string]MenuAction{
	"q":      MenuActionQuit,
	"ctrl+c": MenuActionQuit,
	"w":      MenuActionUp,
	"up":     MenuActionUp,
	"k":      MenuActionUp,
	"s":      MenuActionDown,
	"down":   MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
	"tab":    MenuActionScoreboard,
}

// MapKeyToMenuAction maps a key on a menu screen.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}
