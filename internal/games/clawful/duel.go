package clawful

import (
	"github.com/vovakirdan/clawful/internal/config"
	"github.com/vovakirdan/clawful/internal/core"
	"github.com/vovakirdan/clawful/internal/multiplayer"
)

// Duel is the local two-player mode: two boards fed from one shared pile.
// The match ends when both players are out or the pile is stuck; the
// higher score wins.
type Duel struct {
	fixed *config.ClawfulConfig
	m     *machine
}

// NewDuel creates a duel that loads its configuration on Reset.
func NewDuel() *Duel {
	return &Duel{}
}

// NewDuelWithConfig creates a duel that always uses cfg.
func NewDuelWithConfig(cfg config.ClawfulConfig) *Duel {
	return &Duel{fixed: &cfg}
}

func (d *Duel) ID() string    { return IDDuel }
func (d *Duel) Title() string { return "Clawful Duel" }

// Reset starts a new match.
func (d *Duel) Reset(runtime core.RuntimeConfig) {
	cfg := loadConfigOr(d.fixed)
	d.m = newMachine(cfg, runtime.Seed, 0, 2)
}

func loadConfigOr(fixed *config.ClawfulConfig) config.ClawfulConfig {
	if fixed != nil {
		return *fixed
	}
	return loadConfig()
}

// Step drives player one only; the platform uses StepMulti for duels.
func (d *Duel) Step(in core.InputFrame) core.StepResult {
	frame := core.NewMultiInputFrame()
	frame.SetPlayer(core.Player1, in)
	return d.StepMulti(frame)
}

// StepMulti advances the match using input from both players.
func (d *Duel) StepMulti(in core.MultiInputFrame) core.StepResult {
	d.m.step([]core.InputFrame{in.Player1(), in.Player2()})
	return core.StepResult{State: d.State()}
}

// Scores returns the current score of each player.
func (d *Duel) Scores() (p1, p2 int) {
	return d.m.players[0].board.Score(), d.m.players[1].board.Score()
}

// State reports the leading score.
func (d *Duel) State() core.GameState {
	return core.GameState{
		Score:    d.m.bestScore(),
		GameOver: d.m.over,
		Paused:   d.m.paused,
		Reason:   d.m.reason,
	}
}

// Winner returns the leading player, or 0 while tied.
func (d *Duel) Winner() core.PlayerID {
	return multiplayer.Decide(d.Scores())
}

// EndReason maps the end of the match to a persisted reason.
func (d *Duel) EndReason() multiplayer.MatchEndReason {
	switch d.m.reason {
	case ReasonOverflow:
		return multiplayer.MatchEndReasonOverflow
	case ReasonNoMoves:
		return multiplayer.MatchEndReasonNoMoves
	case "":
		return multiplayer.MatchEndReasonQuit
	default:
		return multiplayer.MatchEndReasonCompleted
	}
}

// Seat describes one player's claw for an autoplayer.
func (d *Duel) Seat(id core.PlayerID) Seat {
	return d.m.seat(int(id) - 1)
}

// Render draws both boards around the shared pile.
func (d *Duel) Render(dst *core.Screen) {
	dst.Clear()
	p1, p2 := d.m.players[0], d.m.players[1]
	bw, bh := boardSize(p1.board)
	pileX := bw + 3
	p2X := pileX + pileWidth + 2
	if dst.Width() < p2X+bw+1 || dst.Height() < bh+2 {
		drawTooSmall(dst)
		return
	}

	drawBoard(dst, 1, 0, p1, "P1", core.ColorYellow)
	drawBoard(dst, p2X, 0, p2, "P2", core.ColorCyan)
	drawPile(dst, pileX, 1, d.m.hopper.Pile, d.m.players)

	hudY := pileY(d.m.hopper.Pile) + 2
	dst.DrawTextWithColor(pileX, hudY, d.Title(), core.ColorBrightYellow)
	dst.DrawText(pileX, hudY+1, formatLine("Level", d.m.level()))

	dst.DrawTextWithColor(1, dst.Height()-2, "P1: A/D move  W/S pick  SPACE drop", core.ColorYellow)
	dst.DrawTextWithColor(1, dst.Height()-1, "P2: ←/→ move  ↑/↓ pick  ENTER drop   P pause  Q quit", core.ColorCyan)

	if d.m.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if d.m.over {
		s1, s2 := d.Scores()
		drawCenteredMessage(dst, multiplayer.Outcome(d.Winner()),
			formatLine("P1", s1)+"  "+formatLine("P2", s2)+"  |  Press R to restart")
	}
}
