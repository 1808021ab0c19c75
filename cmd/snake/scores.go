package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the best runs for a variant",
	Long: `Display the best runs and overall stats for the given variant.

Examples:
  snake scores snake
  snake scores snake_walls --limit 20
  snake scores snake --interactive
  snake scores snake_walls --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see variants)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearScores(cmd.OutOrStdout(), store, gameID)
	}

	if flagInteractive {
		quietLogs()
		defer restoreLogs()
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return printScores(cmd.OutOrStdout(), store, gameID, game.Title(), flagLimit)
}

func printScores(out io.Writer, store *storage.Store, gameID, title string, limit int) error {
	runs, err := store.TopRuns(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Best runs - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'snake play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Length", "End", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "------", "---", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-12s  %s\n",
			i+1, r.Score, r.Length, r.EndReason, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Average: %.1f  Longest: %d\n",
		stats.RunsCount, stats.HighScore, stats.AvgScore, stats.MaxLength)
	fmt.Fprintf(out, "Wall deaths: %d  Self bites: %d\n", stats.WallDeaths, stats.SelfDeaths)
	return nil
}

func clearScores(out io.Writer, store *storage.Store, gameID string) error {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearRuns(gameID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared %d runs for %s.\n", stats.RunsCount, gameID)
	return nil
}
