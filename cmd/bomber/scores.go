package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/games/bomberman"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresStats       bool
	flagScoresClear       bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs. With --user only that player's runs are shown.

Examples:
  bomber scores
  bomber scores --limit 20
  bomber scores --user alice
  bomber scores --stats
  bomber scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores and profiles in the terminal UI")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store := mustOpenStore()
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(bomberman.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return

	case flagScoresInteractive:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, flagUser, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return

	case flagScoresStats:
		printStats(store)
		return
	}

	var (
		scores []storage.ScoreEntry
		err    error
	)
	if flagUser != "" {
		scores, err = store.UserScores(bomberman.ID, flagUser, flagScoresLimit)
	} else {
		scores, err = store.TopScores(bomberman.ID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	if flagUser != "" {
		fmt.Printf("High Scores - %s\n", flagUser)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bomber play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		name := entry.Username
		if name == "" {
			name = "-"
		}
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %-5d  %s\n", i+1, name, entry.Score, entry.LevelReached, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(bomberman.ID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetGameStats(bomberman.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Statistics")
	fmt.Println()
	if stats.GamesCount == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}
	fmt.Printf("  Runs:        %d\n", stats.GamesCount)
	fmt.Printf("  Best score:  %d\n", stats.HighScore)
	fmt.Printf("  Average:     %.0f\n", stats.AvgScore)
	fmt.Printf("  Total:       %d\n", stats.TotalScore)
	fmt.Printf("  Best level:  %d\n", stats.BestLevel)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}
