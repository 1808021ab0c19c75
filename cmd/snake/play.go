package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/record"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a snake variant",
	Long: `Start playing the given variant (default: snake).

Variants:
  snake        - Walls wrap around to the opposite side
  snake_walls  - Hitting a wall ends the run

Controls:
  Arrows/WASD/HJKL  - Turn
  Space/P           - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start, speeds up with score
  normal - Config start speed, speeds up with score
  hard   - Faster start and a lower speed floor
  fixed  - Speed only changes by eating

Examples:
  snake play
  snake play snake_walls
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := snake.IDWrap
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see variants)", gameID)
	}

	if err := configureGames(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	quietLogs()
	defer restoreLogs()

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// configureGames passes CLI settings to the snake package before any game
// is created.
func configureGames() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)

	path := flagRecord
	if path == "" {
		p, err := record.DefaultPath()
		if err != nil {
			logger.Warn("best score will not be saved", "error", err)
		}
		path = p
	}
	snake.SetRecord(record.Load(path))
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run history. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
