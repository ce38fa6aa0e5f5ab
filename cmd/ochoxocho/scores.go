package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draney98/ochoXocho/internal/platform/tui"
	"github.com/draney98/ochoXocho/internal/registry"
	"github.com/draney98/ochoXocho/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top high scores for a variant, or for every variant when
none is given.

Examples:
  ochoxocho scores
  ochoxocho scores ochoxocho_classic --limit 20
  ochoxocho scores --interactive
  ochoxocho scores ochoxocho --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the variant")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	var ids []string
	if len(args) > 0 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'ochoxocho list' to see available variants.")
			os.Exit(1)
		}
		ids = []string{args[0]}
	} else {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	if flagClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(ids[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", ids[0])

	case flagInteractive:
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

	default:
		for i, id := range ids {
			if i > 0 {
				fmt.Println()
			}
			if err := printScores(store, id); err != nil {
				fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
				return
			}
		}
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'ochoxocho play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Lines", "Shapes", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-6d  %s\n",
			i+1, e.Score, e.Level, e.Lines, e.Shapes, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f  Lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}
