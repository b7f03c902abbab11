package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-creeps/internal/config"
)

var flagCheckConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.arcade/configs/creeps.yaml or ./configs/creeps.yaml and edit
the keys you want to change; missing keys keep their defaults.

With --check, loads the active configuration (honouring --config) and
reports whether it is valid instead.

Examples:
  creeps config > ~/.arcade/configs/creeps.yaml
  creeps config --check --config ./my-creeps.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheckConfig, "check", false, "Validate the active config instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheckConfig {
		if _, err := config.LoadCreeps(flagConfig); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		fmt.Println("config ok")
		return nil
	}

	_, err := os.Stdout.Write(config.GetDefaultYAML("creeps"))
	return err
}
