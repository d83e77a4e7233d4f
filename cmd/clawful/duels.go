package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clawful/internal/multiplayer"
	"github.com/vovakirdan/clawful/internal/storage"
)

var (
	flagDuelLimit int
	flagDuelID    string
)

var duelsCmd = &cobra.Command{
	Use:   "duels",
	Short: "Show recent duel results",
	Long: `Display the most recent local duels, newest first.

Examples:
  clawful duels
  clawful duels --limit 50
  clawful duels --id duel-1700000000000000000`,
	Args: cobra.NoArgs,
	Run:  runDuels,
}

func init() {
	duelsCmd.Flags().IntVar(&flagDuelLimit, "limit", 10, "Number of duels to show")
	duelsCmd.Flags().StringVar(&flagDuelID, "id", "", "Show a single duel by match id")
}

func runDuels(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var duels []storage.DuelResult
	if flagDuelID != "" {
		d, err := store.DuelByID(flagDuelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving duel: %v\n", err)
			return
		}
		if d == nil {
			fmt.Printf("No duel with id %q.\n", flagDuelID)
			return
		}
		duels = append(duels, *d)
	} else {
		duels, err = store.RecentDuels(flagDuelLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving duels: %v\n", err)
			return
		}
	}

	if len(duels) == 0 {
		fmt.Println("No duels recorded yet.")
		fmt.Println()
		fmt.Println("Play 'clawful play clawful_duel' with a friend!")
		return
	}

	t := newTextTable("Date", "P1", "P2", "Result", "End", "Time")
	for _, d := range duels {
		t.add(d.CreatedAt.Format("2006-01-02 15:04"), d.Score1, d.Score2,
			multiplayer.Outcome(multiplayer.PlayerID(d.Winner)),
			d.EndReason, time.Duration(d.Duration)*time.Second)
	}
	t.write(os.Stdout)
}
