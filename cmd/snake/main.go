// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Pick a variant from the menu
//	snake play [variant]     - Play a variant directly (default: snake)
//	snake list               - List available variants
//	snake scores <variant>   - Show the best runs for a variant
//	snake sim --moves RRUL   - Run the simulation headless and print the board
//
// Global flags:
//
//	--fps <rate>          - Frame rate of the terminal loop (default: 60)
//	--seed <value>        - RNG seed for reproducible food placement
//	--db <path>           - Run history database (default: ~/.tui-snake/runs.db)
//	--config <path>       - Custom snake.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--record <path>       - Best score file (default: XDG data dir)
//	--log-file <path>     - Write logs to a file while the game is on screen
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagRecord     string
	flagLogFile    string
)

var (
	logger  *log.Logger
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal",
	Long: `A terminal snake game.

Available commands:
  play     - Play a variant directly
  list     - Show all variants
  scores   - View the best runs
  sim      - Run the simulation without a terminal UI

Examples:
  snake
  snake play snake_walls --difficulty hard
  snake scores snake --interactive
  snake sim --moves RRUUL --seed 7`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tui-snake/runs.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagRecord, "record", "", "Path to best score file (default: XDG data dir)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setupLogging installs the process-wide logger. Logs go to --log-file when
// set, otherwise to stderr.
func setupLogging(*cobra.Command, []string) error {
	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	log.SetDefault(logger)
	snake.SetLogger(logger)
	return nil
}

// quietLogs stops stderr logging while the alternate screen is active.
func quietLogs() {
	if logFile == nil {
		logger.SetOutput(io.Discard)
	}
}

// restoreLogs sends logs back to stderr after the terminal UI exits.
func restoreLogs() {
	if logFile == nil {
		logger.SetOutput(os.Stderr)
	}
}
