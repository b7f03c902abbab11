// creeps runs Dodge the Creeps in the terminal.
//
// Usage:
//
//	creeps play              - Play a round right away
//	creeps menu              - Start menu with difficulty selector and scores
//	creeps serve             - Start SSH server for remote play
//	creeps scores            - Show high scores
//	creeps list              - List registered games
//	creeps config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--sound               - Play music and effects on the local speaker
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/games/creeps"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "creeps",
	Short: "Dodge the Creeps - survive the swarm in your terminal",
	Long: `Dodge the Creeps: steer your hero around the screen while creeps
stream in from every edge. Each second survived scores a point.

Available commands:
  play     - Play a round right away
  menu     - Interactive menu with difficulty selector
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games
  config   - Print the default configuration

Examples:
  creeps play
  creeps play --difficulty hard --sound
  creeps menu
  creeps serve --ssh :2222
  creeps config > ~/.arcade/configs/creeps.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		creeps.SetConfigPath(flagConfig)
		creeps.SetDifficultyPreset(flagDifficulty)
		// config reports problems itself and prints the defaults to fix them
		if cmd.Name() == configCmd.Name() {
			return nil
		}
		return checkConfig(flagConfig)
	},
}

// checkConfig fails when the active config file does not load or validate,
// before any command takes over the terminal or opens a listener.
func checkConfig(path string) error {
	if _, err := config.LoadCreeps(path); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play music and sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "creeps",
	})
}
