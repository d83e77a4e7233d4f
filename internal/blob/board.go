package blob

import (
	"fmt"
	"sort"
)

// BoardOptions configures a Board.
type BoardOptions struct {
	Columns int
	Rows    int
	Ceiling int

	// AutoScoreMinGroup scores a matcher's group as soon as it lands (or
	// re-lands after a cascade) once it reaches this many cells. Zero leaves
	// scoring to explicit RequestScore and power pieces.
	AutoScoreMinGroup int

	// ActivateOnLanding triggers area-effect pieces as soon as they land.
	ActivateOnLanding bool
}

// DefaultBoardOptions returns a 6-column board with a ceiling of 8 and one
// overflow row.
func DefaultBoardOptions() BoardOptions {
	return BoardOptions{
		Columns:           6,
		Rows:              9,
		Ceiling:           8,
		ActivateOnLanding: true,
	}
}

// Validate checks the options for usable dimensions.
func (o BoardOptions) Validate() error {
	switch {
	case o.Columns <= 0:
		return fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidOptions, o.Columns)
	case o.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidOptions, o.Rows)
	case o.Ceiling <= 0 || o.Ceiling > o.Rows:
		return fmt.Errorf("%w: ceiling %d outside 1..%d", ErrInvalidOptions, o.Ceiling, o.Rows)
	case o.AutoScoreMinGroup < 0:
		return fmt.Errorf("%w: negative auto-score group size", ErrInvalidOptions)
	}
	return nil
}

// Stats accumulates what happened on a board.
type Stats struct {
	Score          int
	Landed         int
	GroupsScored   int
	CellsDestroyed int
	LargestGroup   int
	Falls          int
	MaxChain       int
}

// Board is the per-player entry point: collaborators report landings and
// activations, the board drives the grid and keeps falls in flight until
// they land again.
type Board struct {
	opts     BoardOptions
	grid     *Grid
	listener Listener

	pending    map[Coord]Fall
	wave       []Coord // cells re-landed during the current cascade
	chain      int
	overflowed bool
	stats      Stats
}

// NewBoard creates a board. The listener may be nil.
func NewBoard(opts BoardOptions, l Listener) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		l = NopListener{}
	}
	b := &Board{
		opts:     opts,
		listener: l,
		pending:  make(map[Coord]Fall),
	}
	b.grid = NewGrid(opts.Columns, opts.Rows, opts.Ceiling, boardEvents{b})
	return b, nil
}

// Grid exposes the underlying grid for read-only queries.
func (b *Board) Grid() *Grid { return b.grid }

// Options returns the board configuration.
func (b *Board) Options() BoardOptions { return b.opts }

// Stats returns the accumulated statistics.
func (b *Board) Stats() Stats { return b.stats }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.stats.Score }

// Overflowed reports whether anything has landed at or above the ceiling.
func (b *Board) Overflowed() bool { return b.overflowed }

// Busy reports whether falls are still in flight.
func (b *Board) Busy() bool { return len(b.pending) > 0 }

// Chain returns the length of the current scoring chain.
func (b *Board) Chain() int { return b.chain }

// LandingRow returns the row a piece dropped into col comes to rest on.
func (b *Board) LandingRow(col int) int {
	return b.grid.ColumnHeight(col)
}

// Pending returns the falls in flight, by column then row.
func (b *Board) Pending() []Fall {
	out := make([]Fall, 0, len(b.pending))
	for _, f := range b.pending {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From.Col != out[j].From.Col {
			return out[i].From.Col < out[j].From.Col
		}
		return out[i].From.Row < out[j].From.Row
	})
	return out
}

// NotifyPieceLanded attaches a piece that came to rest at c. It is rejected
// while a previous destruction is still cascading.
func (b *Board) NotifyPieceLanded(c Coord, p Piece) error {
	if b.Busy() {
		return fmt.Errorf("land %v: %w", c, ErrBatchPending)
	}
	if err := b.grid.Attach(c, p); err != nil {
		return err
	}
	b.stats.Landed++
	b.chain = 0
	if c.Row >= b.opts.Ceiling {
		b.overflowed = true
		return nil
	}

	switch {
	case p.IsAreaEffect() && b.opts.ActivateOnLanding:
		_, err := b.NotifyPowerActivated(c, p.Kind)
		return err
	case p.IsMatcher():
		b.autoScore([]Coord{c})
	}
	return nil
}

// NotifyPowerActivated scores every offset of kind around c independently,
// then destroys the power piece at c. It returns the sum of the results.
func (b *Board) NotifyPowerActivated(c Coord, kind PieceKind) (int, error) {
	if kind.Tag != KindAreaEffect {
		return 0, fmt.Errorf("activate %v: %w", c, ErrNotAreaEffect)
	}
	if !b.grid.InBounds(c) {
		return 0, fmt.Errorf("activate %v: %w", c, ErrOutOfBounds)
	}
	if b.Busy() {
		return 0, fmt.Errorf("activate %v: %w", c, ErrBatchPending)
	}
	if cell, ok := b.grid.CellAt(c); ok && !cell.IsAreaEffect() {
		return 0, fmt.Errorf("activate %v holding %v: %w", c, cell.Kind.Tag, ErrNotAreaEffect)
	}

	targets := make([]Coord, len(kind.Offsets))
	for i, off := range kind.Offsets {
		targets[i] = c.Add(off)
	}

	b.chain = 0
	b.grid.beginBatch()
	results := b.grid.ScoreAreaEffect(targets)
	if err := b.grid.DestroyAt(c); err != nil {
		b.grid.endBatch()
		return 0, err
	}
	b.grid.endBatch()

	total := 0
	for _, r := range results {
		total += r
	}
	if total != 0 {
		b.bumpChain()
	}
	return total, nil
}

// RequestScore scores the group touching c.
func (b *Board) RequestScore(c Coord) (int, error) {
	if b.Busy() {
		return 0, fmt.Errorf("score %v: %w", c, ErrBatchPending)
	}
	total, err := b.grid.ScoreGroupAt(c)
	if err != nil {
		return 0, err
	}
	if total != 0 {
		b.chain = 0
		b.bumpChain()
	}
	return total, nil
}

// NotifyCellLanded reattaches the cell that started falling from `from` at
// its resting coordinate. When the last pending fall lands, groups touched by
// the cascade are auto-scored, which may start the next link of a chain.
func (b *Board) NotifyCellLanded(from, at Coord) error {
	f, ok := b.pending[from]
	if !ok {
		return fmt.Errorf("land %v: %w", from, ErrNotFalling)
	}
	if err := b.grid.OnCellLanded(at, f.Piece); err != nil {
		return err
	}
	delete(b.pending, from)
	if at.Row >= b.opts.Ceiling {
		b.overflowed = true
	}
	b.wave = append(b.wave, at)

	if !b.Busy() {
		wave := b.wave
		b.wave = nil
		b.autoScore(wave)
	}
	return nil
}

// Settle lands every pending fall at its target, repeating while cascades
// keep producing new falls. It returns the number of waves resolved.
func (b *Board) Settle() (int, error) {
	waves := 0
	for b.Busy() {
		for _, f := range b.Pending() {
			if err := b.NotifyCellLanded(f.From, f.Target()); err != nil {
				return waves, err
			}
		}
		waves++
	}
	return waves, nil
}

// autoScore scores the groups of landed matchers that reached the minimum
// size. All of them resolve in one batch.
func (b *Board) autoScore(coords []Coord) {
	if b.opts.AutoScoreMinGroup <= 0 {
		return
	}
	var hits []Coord
	for _, c := range coords {
		cell, ok := b.grid.CellAt(c)
		if !ok || !cell.IsMatcher() || c.Row >= b.opts.Ceiling {
			continue
		}
		if len(b.grid.GroupOf(c)) >= b.opts.AutoScoreMinGroup {
			hits = append(hits, c)
		}
	}
	if len(hits) == 0 {
		return
	}

	b.bumpChain()
	b.grid.beginBatch()
	for _, c := range hits {
		// A hit may already be gone if it shared a group with an earlier one.
		_, _ = b.grid.ScoreGroupAt(c)
	}
	b.grid.endBatch()
}

func (b *Board) bumpChain() {
	b.chain++
	if b.chain > b.stats.MaxChain {
		b.stats.MaxChain = b.chain
	}
}

// boardEvents updates board bookkeeping and forwards to the user listener.
type boardEvents struct{ b *Board }

func (e boardEvents) Scored(s Score) {
	e.b.stats.Score += s.Total
	e.b.stats.GroupsScored++
	if s.Size > e.b.stats.LargestGroup {
		e.b.stats.LargestGroup = s.Size
	}
	e.b.listener.Scored(s)
}

func (e boardEvents) CellDestroyRequested(at Coord) {
	e.b.stats.CellsDestroyed++
	e.b.listener.CellDestroyRequested(at)
}

func (e boardEvents) CellShouldFall(f Fall) {
	e.b.stats.Falls++
	e.b.pending[f.From] = f
	e.b.listener.CellShouldFall(f)
}

func (e boardEvents) CellLanded(at Coord) {
	e.b.listener.CellLanded(at)
}
