package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tri-hunt/internal/game"
	"github.com/vovakirdan/tri-hunt/internal/platform/tui"
	"github.com/vovakirdan/tri-hunt/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagPlayer      string
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best stored results and overall statistics.

Examples:
  trihunt scores
  trihunt scores --limit 5
  trihunt scores --recent
  trihunt scores --player alice
  trihunt scores -i
  trihunt scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent games instead of the best")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show results of this player")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title := "High Scores"
	var results []storage.Result
	switch {
	case flagPlayer != "":
		title = "Results - " + flagPlayer
		results, err = store.PlayerResults(flagPlayer, flagLimit)
	case flagRecent:
		title = "Recent Games"
		results, err = store.RecentResults(flagLimit)
	default:
		results, err = store.TopResults(flagLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Triangle Hunt\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'trihunt play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Result", "Got", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "----", "------", "------", "---", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-12s  %-8s  %-5s  %-6d  %s\n",
			i+1,
			r.Player,
			resultLabel(r.Outcome),
			fmt.Sprintf("%d/%d", r.Collected, r.Total),
			r.Score,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Show totals
	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Wins: %d (%.0f%%)   Avg collected: %.1f\n",
		stats.BestScore, stats.GamesPlayed, stats.Wins, stats.WinRate()*100, stats.AvgCollected)
}

func resultLabel(o game.Outcome) string {
	switch o {
	case game.Won:
		return "won"
	case game.LostToObstacle:
		return "star"
	case game.LostToTimeout:
		return "timeout"
	default:
		return o.String()
	}
}
