package clawful

import (
	"math/rand"

	"github.com/vovakirdan/clawful/internal/core"
)

// Autoplayer produces inputs for a headless seat. It picks a random pile
// slot and column, walks the claw there one step per tick and drops.
type Autoplayer struct {
	rng     *rand.Rand
	planned bool
	col     int
	slot    int
}

// NewAutoplayer creates an autoplayer with its own random source.
func NewAutoplayer(seed int64) *Autoplayer {
	return &Autoplayer{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the input for the coming tick.
func (a *Autoplayer) Next(s Seat) core.InputFrame {
	in := core.NewInputFrame()
	if !s.Ready || s.PileLen == 0 || s.Columns == 0 {
		return in
	}
	if !a.planned {
		a.col = a.rng.Intn(s.Columns)
		a.slot = a.rng.Intn(s.PileLen)
		a.planned = true
	}
	target := min(a.slot, s.PileLen-1)

	switch {
	case s.Column < a.col:
		in.Set(core.ActionRight)
	case s.Column > a.col:
		in.Set(core.ActionLeft)
	}
	switch {
	case s.Slot < target:
		in.Set(core.ActionDown)
	case s.Slot > target:
		in.Set(core.ActionUp)
	}
	if s.Column == a.col && s.Slot == target {
		in.Set(core.ActionDrop)
		a.planned = false
	}
	return in
}
