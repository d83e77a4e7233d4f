package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/clawful/internal/core"
	"github.com/vovakirdan/clawful/internal/platform/tui"
	"github.com/vovakirdan/clawful/internal/registry"
	"github.com/vovakirdan/clawful/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls (solo):
  Left/Right, A/D  - Move the claw
  Up/Down, W/S     - Pick a piece from the pile
  Space            - Drop
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.clawful/screenshots

Controls (duel):
  Player 1: A/D move, W/S pick, Space drop
  Player 2: Left/Right move, Up/Down pick, Enter drop

Difficulty options:
  easy   - Start at lowest difficulty, larger pile, more bombs
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, smaller pile, fewer bombs
  fixed  - No progression, stays at config's initial level

Examples:
  clawful play clawful
  clawful play clawful_chain --difficulty easy
  clawful play clawful_duel
  clawful play clawful --config ./my-clawful.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// terminalConfig builds the runtime config from the terminal size and
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'clawful list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
