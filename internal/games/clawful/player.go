package clawful

import (
	"github.com/vovakirdan/clawful/internal/blob"
	"github.com/vovakirdan/clawful/internal/core"
)

// falling is a piece on its way down: either released by the claw or part
// of a cascade reported by the board.
type falling struct {
	from  blob.Coord
	to    int
	piece blob.Piece
	y     float64 // current row, fractional while moving
}

// player owns one board and its claw.
type player struct {
	id    core.PlayerID
	board *blob.Board

	col   int // claw column
	slot  int // selected pile slot
	drop  *falling
	falls []*falling
	drops int

	out    bool
	reason string
}

func newPlayer(id core.PlayerID, opts blob.BoardOptions) (*player, error) {
	board, err := blob.NewBoard(opts, LogListener{Logger: logger, Player: id})
	if err != nil {
		return nil, err
	}
	return &player{
		id:    id,
		board: board,
		col:   opts.Columns / 2,
	}, nil
}

func (p *player) idle() bool {
	return p.drop == nil && len(p.falls) == 0 && !p.board.Busy()
}

func (p *player) finish(reason string) {
	p.out = true
	p.reason = reason
	p.drop = nil
	p.falls = nil
}

func (p *player) handleInput(in core.InputFrame, pile *blob.Pile) {
	cols := p.board.Options().Columns
	if in.Has(core.ActionLeft) {
		p.col = max(0, p.col-1)
	}
	if in.Has(core.ActionRight) {
		p.col = min(cols-1, p.col+1)
	}
	if in.Has(core.ActionUp) {
		p.slot--
	}
	if in.Has(core.ActionDown) {
		p.slot++
	}
	p.clampSlot(pile)

	if in.Has(core.ActionDrop) && p.idle() {
		piece, ok := pile.Take(p.slot)
		if !ok {
			return
		}
		rows := p.board.Options().Rows
		p.drop = &falling{
			from:  blob.C(p.col, rows),
			to:    p.board.LandingRow(p.col),
			piece: piece,
			y:     float64(rows),
		}
		p.drops++
		p.clampSlot(pile)
	}
}

func (p *player) clampSlot(pile *blob.Pile) {
	p.slot = core.Clamp(p.slot, 0, max(0, pile.Len()-1))
}

// advanceDrop moves the released piece and hands it to the board once it
// reaches the top of its column.
func (p *player) advanceDrop(speed float64) {
	if p.drop == nil {
		return
	}
	d := p.drop
	d.to = p.board.LandingRow(d.from.Col)
	d.y -= speed
	if d.y > float64(d.to) {
		return
	}
	p.drop = nil

	at := blob.C(d.from.Col, d.to)
	if at.Row >= p.board.Options().Rows {
		p.finish(ReasonOverflow)
		return
	}
	if err := p.board.NotifyPieceLanded(at, d.piece); err != nil {
		logger.Error("landing rejected", "player", p.id, "at", at, "error", err)
		p.finish(ReasonError)
		return
	}
	if p.board.Overflowed() {
		p.finish(ReasonOverflow)
		return
	}
	p.syncFalls()
}

// advanceFalls animates cascading cells and reports each one to the board
// when it reaches its target row.
func (p *player) advanceFalls(speed float64) {
	if len(p.falls) == 0 {
		return
	}
	still := p.falls[:0]
	landed := false
	for _, f := range p.falls {
		f.y -= speed
		if f.y > float64(f.to) {
			still = append(still, f)
			continue
		}
		if err := p.board.NotifyCellLanded(f.from, blob.C(f.from.Col, f.to)); err != nil {
			logger.Error("cascade landing rejected", "player", p.id, "from", f.from, "error", err)
			p.finish(ReasonError)
			return
		}
		landed = true
	}
	p.falls = still

	if p.board.Overflowed() {
		p.finish(ReasonOverflow)
		return
	}
	if landed {
		p.syncFalls()
	}
}

// syncFalls starts an animation for every board fall not yet tracked.
func (p *player) syncFalls() {
	tracked := make(map[blob.Coord]bool, len(p.falls))
	for _, f := range p.falls {
		tracked[f.from] = true
	}
	for _, f := range p.board.Pending() {
		if tracked[f.From] {
			continue
		}
		p.falls = append(p.falls, &falling{
			from:  f.From,
			to:    f.To,
			piece: f.Piece,
			y:     float64(f.From.Row),
		})
	}
}
