package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clawful/internal/games/clawful"
	"github.com/vovakirdan/clawful/internal/platform/tui"
	"github.com/vovakirdan/clawful/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start clawful with a mode picker menu",
	Long: `Start clawful in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores and duel history
  Q            - Quit

Examples:
  clawful menu
  clawful menu --fps 30
  clawful menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		// Without --difficulty, ask before every game
		if flagDifficulty == "" {
			preset, quit, selErr := tui.RunDifficultySelector(menuResult.Title, cfg)
			if selErr != nil {
				logger.Error("difficulty selector failed", "error", selErr)
				continue
			}
			if quit {
				break
			}
			if preset == nil {
				continue // Back to menu
			}
			clawful.SetDifficultyPreset(string(*preset))
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// A fixed --seed replays the same game; otherwise every game differs
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
