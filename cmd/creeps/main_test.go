package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-creeps/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creeps.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckConfigRejectsNoVariants(t *testing.T) {
	err := checkConfig(writeConfig(t, "mob:\n  variants: []\n"))
	if !errors.Is(err, config.ErrNoMobVariants) {
		t.Errorf("checkConfig() = %v, want ErrNoMobVariants", err)
	}
}

func TestCheckConfigAcceptsPartialFile(t *testing.T) {
	if err := checkConfig(writeConfig(t, "player:\n  speed: 300\n")); err != nil {
		t.Errorf("checkConfig() = %v", err)
	}
}

func TestPreRunFailsFastExceptConfig(t *testing.T) {
	old := flagConfig
	flagConfig = writeConfig(t, "mob:\n  variants: []\n")
	t.Cleanup(func() { flagConfig = old })

	for _, cmd := range []*cobra.Command{playCmd, menuCmd, serveCmd, scoresCmd, listCmd} {
		if err := rootCmd.PersistentPreRunE(cmd, nil); err == nil {
			t.Errorf("%s should refuse a broken config", cmd.Name())
		}
	}
	if err := rootCmd.PersistentPreRunE(configCmd, nil); err != nil {
		t.Errorf("config should run with a broken config, got %v", err)
	}
}
