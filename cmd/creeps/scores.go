package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores with the difficulty each round was played on.

Examples:
  creeps scores
  creeps scores --limit 25
  creeps scores --limit 0     # every recorded round
  creeps scores --clear`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeGameIDs,
	RunE:              runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show, 0 for all")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the game")
}

func completeGameIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return registry.IDs(), cobra.ShellCompDirectiveNoFileComp
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "creeps"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'creeps list' to see available games", gameID)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit <= 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'creeps play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		level := entry.Difficulty
		if level == "" {
			level = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, level, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
