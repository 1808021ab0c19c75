package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// runMenu loops between the variant menu, the run history and games until
// the user quits.
func runMenu(_ *cobra.Command, _ []string) error {
	if err := configureGames(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	quietLogs()
	defer restoreLogs()

	cfg := runtimeConfig()
	lastGame := ""
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, lastGame, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			return err
		}
		lastGame = res.GameID

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
