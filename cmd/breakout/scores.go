package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagStats       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs from the history database.

Without --difficulty every run is listed.

Examples:
  breakout scores
  breakout scores --difficulty hard
  breakout scores --recent --limit 5
  breakout scores --stats
  breakout scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show totals per difficulty")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to list")
}

func runScores(_ *cobra.Command, _ []string) (err error) {
	difficulty := flagDifficulty
	if difficulty != "" {
		if _, err := config.ParseDifficulty(difficulty); err != nil {
			return err
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer closeWith(&err, store.Close)

	switch {
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, difficulty, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
	case flagStats:
		return printStats(store)
	case flagRecent:
		runs, err := store.RecentRuns(flagLimit)
		if err != nil {
			return fmt.Errorf("retrieving runs: %w", err)
		}
		fmt.Println("Recent Runs")
		fmt.Println()
		printRuns(runs)
	default:
		runs, err := store.TopRuns(difficulty, flagLimit)
		if err != nil {
			return fmt.Errorf("retrieving runs: %w", err)
		}
		title := "all difficulties"
		if difficulty != "" {
			title = difficulty
		}
		fmt.Printf("High Scores - %s\n", title)
		fmt.Println()
		printRuns(runs)

		if len(runs) > 0 {
			if best, err := store.HighScore(difficulty); err == nil {
				fmt.Println()
				fmt.Printf("Best: %d\n", best)
			}
		}
	}
	return nil
}

func printRuns(runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %-9s  %-6s  %-8s  %s\n", "Rank", "Score", "Outcome", "Level", "Bricks", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %-9s  %-6s  %-8s  %s\n", "----", "-----", "-------", "-----", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-10s  %-9s  %-6d  %-8s  %s\n",
			i+1, r.Score, r.Outcome, r.Difficulty, r.BricksDestroyed,
			r.Duration.Round(time.Second), r.EndedAt.Local().Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-9s  %-5s  %-5s  %-5s  %-7s  %-10s  %s\n", "Level", "Runs", "Wins", "Best", "Avg", "Played", "Last")
	for _, name := range names {
		s := stats[name]
		fmt.Printf("  %-9s  %-5d  %-5d  %-5d  %-7.1f  %-10s  %s\n",
			s.Difficulty, s.Runs, s.Wins, s.HighScore, s.AvgScore,
			s.PlayTime.Round(time.Second), s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
