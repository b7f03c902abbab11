package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-creeps/internal/audio"
	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/games/creeps"
	"github.com/vovakirdan/dodge-creeps/internal/platform/tui"
	"github.com/vovakirdan/dodge-creeps/internal/registry"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start Dodge the Creeps right away.

Controls:
  Arrows/WASD/HJKL - Move
  Enter/Space      - Press Start
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (after game over or while paused)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Spawn interval starts at base, shortens as you score
  normal - Starts 30% of the way to the fastest spawn rate
  hard   - Starts 70% of the way to the fastest spawn rate
  fixed  - No progression

Examples:
  creeps play
  creeps play --difficulty hard
  creeps play --config ./my-creeps.yaml --sound`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg = cfg.Sized(w, h)
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil and logs a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	game, err := registry.Create("creeps")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	sound := audio.Open(flagSound, logger)
	defer sound.Close()
	creeps.SetSound(sound)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig(), flagDifficulty); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
