package core

import "strings"

// Action is what a key press means to a game.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // previous pile slot
	ActionDown           // next pile slot
	ActionLeft           // claw left
	ActionRight          // claw right
	ActionDrop           // release the held piece
	ActionConfirm        // menu confirm
	ActionBack           // back to the menu
	ActionRestart        // new game after game over
	ActionQuit           // leave the session
	ActionPause          // toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Drop",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// PlayerID is a seat in a local match, 1 or 2.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

func (p PlayerID) String() string {
	if p == Player1 || p == Player2 {
		return "P" + string(rune('0'+p))
	}
	return "P?"
}

// ActionSet is a set of actions.
type ActionSet uint16

func (s ActionSet) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if s&(1<<a) != 0 {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, " ") + "}"
}

// InputFrame holds the actions one player triggered during a tick. The
// zero value is an empty frame.
type InputFrame struct {
	Actions ActionSet
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered.
func (f *InputFrame) Set(a Action) {
	f.Actions |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = 0
}

// MultiInputFrame is one tick of input from both seats of a local duel.
type MultiInputFrame struct {
	seats [2]InputFrame
}

// NewMultiInputFrame returns an empty frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{}
}

func seatIndex(id PlayerID) (int, bool) {
	i := int(id) - 1
	return i, i >= 0 && i < 2
}

// Player returns the frame of seat id; unknown seats are empty.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if i, ok := seatIndex(id); ok {
		return m.seats[i]
	}
	return InputFrame{}
}

// SetPlayer replaces the frame of seat id.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if i, ok := seatIndex(id); ok {
		m.seats[i] = frame
	}
}

func (m MultiInputFrame) Player1() InputFrame { return m.seats[0] }
func (m MultiInputFrame) Player2() InputFrame { return m.seats[1] }

// Clear empties both seats.
func (m *MultiInputFrame) Clear() {
	m.seats = [2]InputFrame{}
}
