package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-creeps/internal/audio"
	"github.com/vovakirdan/dodge-creeps/internal/games/creeps"
	"github.com/vovakirdan/dodge-creeps/internal/platform/tui"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, press Enter to play. After a round,
press Esc to come back to the menu. Tab opens the high score table.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select game
  Tab             - High scores
  Q               - Quit

Examples:
  creeps menu
  creeps menu --fps 30
  creeps menu --db ./scores.db --sound`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	sound := audio.Open(flagSound, logger)
	defer sound.Close()
	creeps.SetSound(sound)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	difficulty := flagDifficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return err
		}

		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, menuResult.GameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, difficulty)
		if err != nil {
			logger.Error("game failed", "error", err)
			continue
		}
		if !backToMenu {
			return nil
		}
	}
}
