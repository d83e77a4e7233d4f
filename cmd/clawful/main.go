// clawful is a claw machine puzzle game for the terminal. Steer the claw,
// pick a piece from the pile and drop it on the board: same-colored balls
// connect into groups and bombs score the groups next to them.
//
// Usage:
//
//	clawful list              - List game modes
//	clawful play <mode>       - Play a mode
//	clawful menu              - Pick modes interactively
//	clawful scores <mode>     - Show high scores for a mode
//	clawful duels             - Show recent duel results
//	clawful sim               - Simulate many headless games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.clawful/scores.db)
//	--config <path>       - Custom clawful.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--verbose             - Log debug events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/clawful/internal/config"
	"github.com/vovakirdan/clawful/internal/games/clawful"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

// logger reports CLI warnings on stderr; setupLogging may redirect it.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "clawful",
})

var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clawful",
	Short: "Clawful - a claw machine puzzle game for your terminal",
	Long: `Clawful drops colored balls, multipliers and bombs from a claw.
Balls of one color connect into groups. A bomb scores every group
to its left, right and below, then disappears.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  duels    - View recent duel results
  sim      - Simulate headless games and report statistics

Examples:
  clawful list
  clawful play clawful
  clawful play clawful_chain --difficulty hard
  clawful menu
  clawful sim --games 1000 --workers 8 --out runs/chain.json.zst`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if err := setupLogging(); err != nil {
			return err
		}
		clawful.SetLogger(gameLogger())
		clawful.SetConfigPath(flagConfig)
		clawful.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.clawful/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom clawful.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(duelsCmd)
	rootCmd.AddCommand(simCmd)
}

// setupLogging applies --log-file and --verbose to the CLI logger.
func setupLogging() error {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
	}
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// gameLogger is the logger handed to the game. While the TUI owns the
// terminal, game events only go to a log file.
func gameLogger() *log.Logger {
	if logFile == nil {
		return log.New(io.Discard)
	}
	return logger.WithPrefix("clawful/game")
}
