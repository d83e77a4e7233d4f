package clawful

import (
	"github.com/vovakirdan/clawful/internal/blob"
	"github.com/vovakirdan/clawful/internal/config"
	"github.com/vovakirdan/clawful/internal/core"
)

// machine is the cabinet shared by all players of a match: one pile fed by
// one spawner per player under a single scheduler, and one board per player.
type machine struct {
	cfg        config.ClawfulConfig
	difficulty *config.DifficultyManager
	hopper     *blob.Hopper
	players    []*player

	tick   uint64
	paused bool
	over   bool
	reason string
}

func newMachine(cfg config.ClawfulConfig, seed int64, minGroup, seats int) *machine {
	if seed == 0 {
		seed = blob.DefaultSeed
	}

	spawnOpts, err := cfg.SpawnOptions()
	if err != nil {
		logger.Warn("invalid pile config, using defaults", "error", err)
		spawnOpts = blob.DefaultSpawnOptions()
	}

	m := &machine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}

	spawners := make([]*blob.Spawner, seats)
	for i := range spawners {
		spawners[i] = blob.NewSpawner(seed+int64(i), spawnOpts)
	}
	pile := blob.NewPile(cfg.Pile.Capacity)
	m.hopper = blob.NewHopper(pile, blob.NewSpawnScheduler(cfg.Pile.SpawnInterval), spawners...)
	m.hopper.Fill(cfg.Pile.Prefill)

	opts := cfg.BoardOptions(minGroup)
	for i := 0; i < seats; i++ {
		id := core.PlayerID(i + 1)
		p, err := newPlayer(id, opts)
		if err != nil {
			// Validated configs never get here; fall back so the game still runs.
			logger.Error("invalid board config, using defaults", "error", err)
			def := blob.DefaultBoardOptions()
			def.AutoScoreMinGroup = minGroup
			p, _ = newPlayer(id, def)
		}
		m.players = append(m.players, p)
	}

	logger.Info("match started", "seats", seats, "seed", seed, "min_group", minGroup,
		"columns", opts.Columns, "ceiling", opts.Ceiling, "pile", cfg.Pile.Capacity)
	return m
}

// step advances the match by one tick. inputs[i] belongs to players[i].
func (m *machine) step(inputs []core.InputFrame) {
	if m.over {
		return
	}

	for _, in := range inputs {
		if in.Has(core.ActionPause) {
			m.paused = !m.paused
			break
		}
	}
	if m.paused {
		return
	}

	m.tick++
	m.applyDifficulty()
	m.hopper.Step()

	fall := m.difficulty.Speed(m.cfg.Physics.FallSpeed, m.bestScore(), int(m.tick))
	drop := m.difficulty.Speed(m.cfg.Physics.DropSpeed, m.bestScore(), int(m.tick))
	for i, p := range m.players {
		if p.out {
			continue
		}
		var in core.InputFrame
		if i < len(inputs) {
			in = inputs[i]
		}
		p.handleInput(in, m.hopper.Pile)
		p.advanceDrop(drop)
		p.advanceFalls(fall)
	}

	m.checkEnd()
}

func (m *machine) applyDifficulty() {
	score := m.bestScore()
	ticks := int(m.tick)
	m.hopper.Scheduler.SetInterval(m.difficulty.SpawnInterval(m.cfg.Pile.SpawnInterval, score, ticks))
	chance := m.difficulty.BombChance(m.cfg.Pile.BombChance, score, ticks)
	for _, s := range m.hopper.Spawners() {
		s.SetBombChance(chance)
	}
}

// checkEnd ends the match when every player is out, or when every player
// is idle and the pile is full without a bomb to clear the way.
func (m *machine) checkEnd() {
	active := 0
	idle := true
	for _, p := range m.players {
		if p.out {
			continue
		}
		active++
		if !p.idle() {
			idle = false
		}
	}

	switch {
	case active == 0:
		m.end(m.players[0].reason)
	case idle && m.hopper.Pile.Stuck():
		for _, p := range m.players {
			if !p.out {
				p.finish(ReasonNoMoves)
			}
		}
		m.end(ReasonNoMoves)
	}
}

func (m *machine) end(reason string) {
	m.over = true
	m.reason = reason
	for _, p := range m.players {
		s := p.board.Stats()
		logger.Info("game over", "player", p.id, "reason", p.reason, "score", s.Score,
			"drops", p.drops, "max_chain", s.MaxChain, "ticks", m.tick)
	}
}

func (m *machine) bestScore() int {
	best := 0
	for _, p := range m.players {
		best = max(best, p.board.Score())
	}
	return best
}

// level is the difficulty shown in the HUD, 1 to 10.
func (m *machine) level() int {
	return int(m.difficulty.Level(m.bestScore(), int(m.tick))*9) + 1
}

// Seat is what an autoplayer needs to know about one claw.
type Seat struct {
	Column  int
	Slot    int
	Columns int
	PileLen int
	Ready   bool // a drop would be accepted now
}

func (m *machine) seat(i int) Seat {
	p := m.players[i]
	return Seat{
		Column:  p.col,
		Slot:    p.slot,
		Columns: p.board.Options().Columns,
		PileLen: m.hopper.Pile.Len(),
		Ready:   !m.over && !m.paused && !p.out && p.idle(),
	}
}
