package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games with their best score",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return nil
	}

	// Missing database just means nothing has been played yet
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	header := lipgloss.NewStyle().Bold(true)
	fmt.Println(header.Render(fmt.Sprintf("  %-*s  %-24s  %6s  %6s", idWidth, "ID", "Title", "Best", "Rounds")))
	for _, g := range games {
		best, rounds := "-", "0"
		if st, ok := stats[g.ID]; ok {
			best = fmt.Sprint(st.HighScore)
			rounds = fmt.Sprint(st.GamesCount)
		}
		fmt.Printf("  %-*s  %-24s  %6s  %6s\n", idWidth, g.ID, g.Title, best, rounds)
	}

	fmt.Println()
	fmt.Println("Run 'creeps play' to start a round.")
	return nil
}
