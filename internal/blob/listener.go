package blob

// Score describes one completed group scoring.
type Score struct {
	Origin      Coord // coordinate the scoring started from
	Sum         int   // additive points before multipliers
	Multipliers int   // multiplier cells visited
	Total       int   // Sum << Multipliers
	Size        int   // cells destroyed
}

// Fall describes a cell that lost support and left the static grid.
type Fall struct {
	From  Coord
	To    int // row the cell comes to rest on
	Piece Piece
}

// Target returns the resting coordinate of the fall.
func (f Fall) Target() Coord {
	return Coord{Col: f.From.Col, Row: f.To}
}

// Listener receives the engine's outbound events. Calls happen synchronously
// from inside grid operations; implementations must not mutate the grid.
type Listener interface {
	// Scored fires once per group whose total is nonzero.
	Scored(s Score)
	// CellDestroyRequested fires for every removed cell, scored or not.
	CellDestroyRequested(at Coord)
	// CellShouldFall fires once per cell that lost support.
	CellShouldFall(f Fall)
	// CellLanded confirms that a falling cell reattached at a coordinate.
	CellLanded(at Coord)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) Scored(Score) {}
func (NopListener) CellDestroyRequested(Coord) {}
func (NopListener) CellShouldFall(Fall) {}
func (NopListener) CellLanded(Coord) {}

// Recorder stores every event it receives, in order.
type Recorder struct {
	Scores    []Score
	Destroyed []Coord
	Falls     []Fall
	Landed    []Coord
}

func (r *Recorder) Scored(s Score) { r.Scores = append(r.Scores, s) }
func (r *Recorder) CellDestroyRequested(at Coord) { r.Destroyed = append(r.Destroyed, at) }
func (r *Recorder) CellShouldFall(f Fall) { r.Falls = append(r.Falls, f) }
func (r *Recorder) CellLanded(at Coord) { r.Landed = append(r.Landed, at) }

// Totals returns the totals of all recorded scores.
func (r *Recorder) Totals() []int {
	out := make([]int, len(r.Scores))
	for i, s := range r.Scores {
		out[i] = s.Total
	}
	return out
}
