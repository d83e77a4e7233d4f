// Package sim plays many headless games with the autoplayer and reports
// score statistics. Each worker goroutine owns the games it plays.
package sim

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/clawful/internal/blob"
	"github.com/vovakirdan/clawful/internal/config"
	"github.com/vovakirdan/clawful/internal/core"
	"github.com/vovakirdan/clawful/internal/games/clawful"
)

// ReasonTimeout marks a game stopped after MaxTicks.
const ReasonTimeout = "timeout"

// DefaultMaxTicks is about half an hour of play at 60 ticks per second.
const DefaultMaxTicks = 60 * 60 * 30

// Options configures a simulation run.
type Options struct {
	Games    int
	Workers  int
	Seed     int64 // seed of game 0; game i uses Seed+i
	Mode     clawful.Mode
	MaxTicks int
	Progress bool // draw a progress bar on stderr
	Config   config.ClawfulConfig
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed         int64  `json:"seed"`
	Score        int    `json:"score"`
	Drops        int    `json:"drops"`
	Groups       int    `json:"groups"`
	MaxChain     int    `json:"max_chain"`
	LargestGroup int    `json:"largest_group"`
	Ticks        int    `json:"ticks"`
	Reason       string `json:"reason"`
}

func (o *Options) validate() error {
	if o.Games < 1 {
		return errors.New("sim: games must be > 0")
	}
	if o.Workers < 1 {
		return errors.New("sim: workers must be > 0")
	}
	if o.MaxTicks <= 0 {
		o.MaxTicks = DefaultMaxTicks
	}
	if o.Seed == 0 {
		o.Seed = blob.DefaultSeed
	}
	return o.Config.Validate()
}

// Run plays opts.Games games across opts.Workers goroutines. Results are
// ordered by game index, so a run is reproducible for a given seed.
func Run(opts Options) (*Report, time.Duration, error) {
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}
	workers := min(opts.Workers, opts.Games)
	results := make([]GameResult, opts.Games)
	jobs := make(chan int, opts.Games)
	for i := 0; i < opts.Games; i++ {
		jobs <- i
	}
	close(jobs)

	bar := pb.New(opts.Games)
	if !opts.Progress {
		bar.SetWriter(io.Discard)
	}
	bar.Start()

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = PlayOne(opts.Config, opts.Mode, opts.Seed+int64(i), opts.MaxTicks)
				bar.Increment()
			}
		}()
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	return NewReport(modeName(opts.Mode), results), used, nil
}

// PlayOne plays a single game to its end or to maxTicks.
func PlayOne(cfg config.ClawfulConfig, mode clawful.Mode, seed int64, maxTicks int) GameResult {
	g := clawful.NewWithConfig(mode, cfg)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	auto := clawful.NewAutoplayer(seed)

	ticks := 0
	for ; ticks < maxTicks && !g.State().GameOver; ticks++ {
		g.Step(auto.Next(g.Seat()))
	}

	st := g.State()
	stats := g.Stats()
	reason := st.Reason
	if !st.GameOver {
		reason = ReasonTimeout
	}
	return GameResult{
		Seed:         seed,
		Score:        st.Score,
		Drops:        g.Drops(),
		Groups:       stats.GroupsScored,
		MaxChain:     stats.MaxChain,
		LargestGroup: stats.LargestGroup,
		Ticks:        ticks,
		Reason:       reason,
	}
}

func modeName(m clawful.Mode) string {
	if m == clawful.ModeChain {
		return clawful.IDChain
	}
	return clawful.IDClassic
}
