package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/clawful/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows a list of all game modes registered in clawful.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	t := newTextTable("ID", "Players", "Title")
	for _, g := range games {
		players := 1
		if g.Multi {
			players = 2
		}
		t.add(g.ID, players, g.Title)
	}
	t.write(os.Stdout)

	fmt.Println()
	fmt.Println("Run 'clawful play <id>' to play a mode.")
}
