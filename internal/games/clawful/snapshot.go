package clawful

// Game states reported in snapshots.
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// PlayerSnapshot is the state of one seat.
type PlayerSnapshot struct {
	Score    int
	Column   int
	Slot     int
	Drops    int
	MaxChain int
	Falling  int    // pieces in flight, including the released one
	Board    string // grid rendering, top row first
	Out      bool
}

// Snapshot contains the complete observable state of a match for
// determinism tests and the simulator.
type Snapshot struct {
	Tick    uint64
	State   string
	Reason  string
	Pile    string // piece labels in pile order
	Players []PlayerSnapshot
}

func (m *machine) snapshot() Snapshot {
	state := StatePlaying
	switch {
	case m.over:
		state = StateGameOver
	case m.paused:
		state = StatePaused
	}

	pile := ""
	for _, p := range m.hopper.Pile.Pieces() {
		pile += string(p.Color.Char()) + p.Label() + " "
	}

	snap := Snapshot{
		Tick:   m.tick,
		State:  state,
		Reason: m.reason,
		Pile:   pile,
	}
	for _, p := range m.players {
		falling := len(p.falls)
		if p.drop != nil {
			falling++
		}
		snap.Players = append(snap.Players, PlayerSnapshot{
			Score:    p.board.Score(),
			Column:   p.col,
			Slot:     p.slot,
			Drops:    p.drops,
			MaxChain: p.board.Stats().MaxChain,
			Falling:  falling,
			Board:    p.board.Grid().String(),
			Out:      p.out,
		})
	}
	return snap
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return g.m.snapshot()
}

// Snapshot returns the current match state.
func (d *Duel) Snapshot() Snapshot {
	return d.m.snapshot()
}

// Hash computes a simple hash of the snapshot for quick comparison.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = hashString(h, snap.State)
	h = hashString(h, snap.Reason)
	h = hashString(h, snap.Pile)
	for _, p := range snap.Players {
		for _, v := range []int{p.Score, p.Column, p.Slot, p.Drops, p.MaxChain, p.Falling} {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
		h = hashString(h, p.Board)
		if p.Out {
			h = h*31 + 1
		}
	}
	return h
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
