package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/clawful/internal/config"
	"github.com/vovakirdan/clawful/internal/games/clawful"
	"github.com/vovakirdan/clawful/internal/sim"
)

var (
	flagSimGames    int
	flagSimWorkers  int
	flagSimMode     string
	flagSimMaxTicks int
	flagSimOut      string
	flagSimReport   string
	flagSimQuiet    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate headless games and report statistics",
	Long: `Play many games with a random autoplayer and summarize the scores.
Game i uses seed --seed + i, so a run is reproducible.

Examples:
  clawful sim --games 1000
  clawful sim --mode chain --workers 8 --out runs/chain.json.zst
  clawful sim --report runs/chain.json.zst`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", runtime.NumCPU(), "Parallel workers")
	simCmd.Flags().StringVar(&flagSimMode, "mode", "classic", "Scoring mode: classic or chain")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", sim.DefaultMaxTicks, "Stop a game after this many ticks")
	simCmd.Flags().StringVar(&flagSimOut, "out", "", "Write the report as zstd-compressed JSON")
	simCmd.Flags().StringVar(&flagSimReport, "report", "", "Print a report saved with --out instead of simulating")
	simCmd.Flags().BoolVarP(&flagSimQuiet, "quiet", "q", false, "Hide the progress bar")
}

func runSim(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagSimReport != "" {
		report, err := sim.Load(flagSimReport)
		if err != nil {
			return err
		}
		return report.WriteTable(out)
	}

	var mode clawful.Mode
	switch flagSimMode {
	case "classic", clawful.IDClassic:
		mode = clawful.ModeClassic
	case "chain", clawful.IDChain:
		mode = clawful.ModeChain
	default:
		return fmt.Errorf("unknown mode %q (use classic or chain)", flagSimMode)
	}

	cfg, err := config.LoadClawful(flagConfig)
	if err != nil {
		return err
	}
	if preset, _ := config.ParsePreset(flagDifficulty); flagDifficulty != "" {
		config.ApplyClawfulPreset(&cfg, preset)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "[WORKERS:%d] [MODE:%s] [GAMES:%d]\n", flagSimWorkers, flagSimMode, flagSimGames)

	report, used, err := sim.Run(sim.Options{
		Games:    flagSimGames,
		Workers:  flagSimWorkers,
		Seed:     flagSeed,
		Mode:     mode,
		MaxTicks: flagSimMaxTicks,
		Progress: !flagSimQuiet,
		Config:   cfg,
	})
	if err != nil {
		return err
	}
	logger.Debug("simulation finished", "games", flagSimGames, "used", used)

	secs := used.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}
	p.Fprintf(out, "used: %.2f seconds\ngps : %d games/sec\n", secs, int(float64(flagSimGames)/secs))
	if err := report.WriteTable(out); err != nil {
		return err
	}

	if flagSimOut != "" {
		if err := sim.Save(flagSimOut, report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", flagSimOut)
	}
	return nil
}
