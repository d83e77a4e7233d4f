package clawful

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clawful/internal/blob"
	"github.com/vovakirdan/clawful/internal/core"
)

// LogListener writes every engine event of one board at debug level.
type LogListener struct {
	Logger *log.Logger
	Player core.PlayerID
}

func (l LogListener) Scored(s blob.Score) {
	l.Logger.Debug("scored", "player", l.Player, "origin", s.Origin, "sum", s.Sum,
		"multipliers", s.Multipliers, "total", s.Total, "size", s.Size)
}

func (l LogListener) CellDestroyRequested(at blob.Coord) {
	l.Logger.Debug("destroy", "player", l.Player, "at", at)
}

func (l LogListener) CellShouldFall(f blob.Fall) {
	l.Logger.Debug("fall", "player", l.Player, "from", f.From, "to", f.To, "piece", f.Piece.Label())
}

func (l LogListener) CellLanded(at blob.Coord) {
	l.Logger.Debug("landed", "player", l.Player, "at", at)
}
