// Package clawful implements the claw machine game. The player steers a claw
// over the board, picks a piece from the pile and drops it into a column.
// Balls of one color connect into groups; a bomb scores the groups to its
// left, right and below. In chain mode large groups score as soon as they
// form and the cascade that follows can set off further groups.
package clawful

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clawful/internal/blob"
	"github.com/vovakirdan/clawful/internal/config"
	"github.com/vovakirdan/clawful/internal/core"
	"github.com/vovakirdan/clawful/internal/registry"
)

// Registry ids.
const (
	IDClassic = "clawful"
	IDChain   = "clawful_chain"
	IDDuel    = "clawful_duel"
)

// End reasons reported in core.GameState.Reason.
const (
	ReasonOverflow = "overflow"
	ReasonNoMoves  = "no moves"
	ReasonError    = "error"
)

// Mode selects the scoring rules.
type Mode int

const (
	ModeClassic Mode = iota // Only bombs score
	ModeChain               // Groups of chain_min_group score on landing
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game and engine events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// loadConfig resolves the configuration from the CLI settings.
func loadConfig() config.ClawfulConfig {
	cfg, err := config.LoadClawful(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "path", configPath, "error", err)
		cfg = config.DefaultClawfulConfig()
	}
	if difficultyPreset != "" {
		config.ApplyClawfulPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game is the single-player game in classic or chain mode.
type Game struct {
	mode    Mode
	fixed   *config.ClawfulConfig
	runtime core.RuntimeConfig
	m       *machine
}

// New creates a game that loads its configuration on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(mode Mode, cfg config.ClawfulConfig) *Game {
	return &Game{mode: mode, fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeChain {
		return IDChain
	}
	return IDClassic
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeChain {
		return "Clawful Chain"
	}
	return "Clawful"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg := loadConfigOr(g.fixed)
	minGroup := 0
	if g.mode == ModeChain {
		minGroup = cfg.Scoring.ChainMinGroup
	}
	g.m = newMachine(cfg, runtime.Seed, minGroup, 1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.m.step([]core.InputFrame{in})
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.m.players[0].board.Score(),
		GameOver: g.m.over,
		Paused:   g.m.paused,
		Reason:   g.m.reason,
	}
}

// Stats returns the board statistics of the player.
func (g *Game) Stats() blob.Stats {
	return g.m.players[0].board.Stats()
}

// Drops returns how many pieces the player has released.
func (g *Game) Drops() int {
	return g.m.players[0].drops
}

// Seat describes the claw for an autoplayer.
func (g *Game) Seat() Seat {
	return g.m.seat(0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	p := g.m.players[0]
	bw, bh := boardSize(p.board)
	pileX := bw + 4
	if dst.Width() < pileX+pileWidth || dst.Height() < bh+2 {
		drawTooSmall(dst)
		return
	}

	drawBoard(dst, 1, 0, p, "", core.ColorYellow)
	drawPile(dst, pileX, 1, g.m.hopper.Pile, g.m.players)

	hudY := pileY(g.m.hopper.Pile) + 2
	stats := p.board.Stats()
	dst.DrawTextWithColor(pileX, hudY, g.Title(), core.ColorBrightYellow)
	dst.DrawText(pileX, hudY+1, formatLine("Score", stats.Score))
	dst.DrawText(pileX, hudY+2, formatLine("Best chain", stats.MaxChain))
	dst.DrawText(pileX, hudY+3, formatLine("Drops", p.drops))
	dst.DrawText(pileX, hudY+4, formatLine("Level", g.m.level()))

	dst.DrawTextWithColor(1, dst.Height()-1, "←/→ move  ↑/↓ pick  SPACE drop  P pause  Q quit", core.ColorGray)

	if g.m.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.m.over {
		drawCenteredMessage(dst, "GAME OVER ("+g.m.reason+")", formatLine("Score", stats.Score)+"  |  Press R to restart")
	}
}

// Register the game modes with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(IDChain, func() registry.Game {
		return New(ModeChain)
	})
	registry.Register(IDDuel, func() registry.Game {
		return NewDuel()
	})
}
