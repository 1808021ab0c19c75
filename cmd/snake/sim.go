package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake/ctrl"
)

var (
	flagMoves string
	flagTicks int
	flagWalls bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless and print the board after every tick",
	Long: `Drive the snake without a terminal UI.

Each character of --moves is applied before one tick:
  U/D/L/R  - Turn up, down, left or right
  .        - Keep going

The board is printed as a matrix (0 empty, 1 snake, 7 food) with y = 0
on the first line.

Examples:
  snake sim --moves RRRUUL
  snake sim --moves ... --ticks 20 --walls --seed 3`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Turns to apply, one per tick (U, D, L, R or .)")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks (default: number of moves)")
	simCmd.Flags().BoolVar(&flagWalls, "walls", false, "Walls end the run instead of wrapping")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := ctrl.Options{
		DimensionX:             uint16(cfg.Board.Width),
		DimensionY:             uint16(cfg.Board.Height),
		InitialSnakeSize:       uint16(cfg.Board.InitialSnakeSize),
		WalkingThroughTheWalls: cfg.Rules.WalkThroughWalls && !flagWalls,
		FailOnRevert:           cfg.Rules.FailOnRevert,
		AutoGenFood:            cfg.Rules.AutoGenFood,
		Rand:                   rand.New(rand.NewSource(seed)),
	}

	ticks := flagTicks
	if ticks == 0 {
		ticks = len(flagMoves)
	}
	return simulate(cmd.OutOrStdout(), opts, flagMoves, ticks)
}

// parseMoves converts a move string to one optional turn per tick.
func parseMoves(moves string) ([]*ctrl.Direction, error) {
	turns := make([]*ctrl.Direction, len(moves))
	for i, r := range strings.ToUpper(moves) {
		var d ctrl.Direction
		switch r {
		case 'U':
			d = ctrl.Top
		case 'D':
			d = ctrl.Bottom
		case 'L':
			d = ctrl.Left
		case 'R':
			d = ctrl.Right
		case '.':
			continue
		default:
			return nil, fmt.Errorf("invalid move %q at position %d", r, i+1)
		}
		turns[i] = &d
	}
	return turns, nil
}

// simulate runs ticks moves and prints the matrix after each one. A wall hit
// or self collision ends the simulation normally; other errors are returned.
func simulate(out io.Writer, opts ctrl.Options, moves string, ticks int) error {
	turns, err := parseMoves(moves)
	if err != nil {
		return err
	}

	c, err := ctrl.New(opts)
	if err != nil {
		return fmt.Errorf("cannot create board: %w", err)
	}

	fmt.Fprintf(out, "start (%dx%d):\n%s\n", opts.DimensionX, opts.DimensionY, c.Matrix())

	score := 0
	for tick := 1; tick <= ticks; tick++ {
		if tick <= len(turns) && turns[tick-1] != nil {
			if err := c.DirectionTo(*turns[tick-1]); err != nil {
				fmt.Fprintf(out, "tick %d: game over: %v\n", tick, err)
				break
			}
		}

		ate, err := c.NextTick()
		if err != nil {
			if !ctrl.IsGameOver(err) {
				return err
			}
			fmt.Fprintf(out, "tick %d: game over: %v\n", tick, err)
			break
		}

		header := fmt.Sprintf("tick %d %s", tick, c.CurrentDirection())
		if ate {
			score++
			header += " ate"
		}
		fmt.Fprintf(out, "%s:\n%s\n", header, c.Matrix())
	}

	fmt.Fprintf(out, "score %d, length %d\n", score, c.Len())
	return nil
}
