package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML CreepsConfig
	if err := yaml.Unmarshal(GetDefaultYAML("creeps"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}

	want := DefaultCreepsConfig()
	if fromYAML.Player != want.Player {
		t.Errorf("player = %+v, expected %+v", fromYAML.Player, want.Player)
	}
	if fromYAML.Timers != want.Timers {
		t.Errorf("timers = %+v, expected %+v", fromYAML.Timers, want.Timers)
	}
	if len(fromYAML.Mob.Variants) != len(want.Mob.Variants) {
		t.Errorf("variants = %d, expected %d", len(fromYAML.Mob.Variants), len(want.Mob.Variants))
	}
	if fromYAML.Mob.MinSpeed != 150 || fromYAML.Mob.MaxSpeed != 250 {
		t.Errorf("mob speed range = [%g, %g], expected [150, 250]", fromYAML.Mob.MinSpeed, fromYAML.Mob.MaxSpeed)
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCreepsCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creeps.yaml")
	data := "player:\n  speed: 250\ntimers:\n  mob: 0.25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCreeps(path)
	if err != nil {
		t.Fatalf("LoadCreeps() failed: %v", err)
	}

	if cfg.Player.Speed != 250 {
		t.Errorf("player speed = %g, expected 250", cfg.Player.Speed)
	}
	if cfg.Timers.Mob != 0.25 {
		t.Errorf("mob timer = %g, expected 0.25", cfg.Timers.Mob)
	}
	// Untouched keys keep their defaults
	if cfg.Timers.Score != 1.0 {
		t.Errorf("score timer = %g, expected default 1.0", cfg.Timers.Score)
	}
	if len(cfg.Mob.Variants) != 3 {
		t.Errorf("variants = %d, expected defaults", len(cfg.Mob.Variants))
	}
}

func TestLoadCreepsMissingFile(t *testing.T) {
	_, err := LoadCreeps(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadCreeps() with a missing custom path should fail")
	}
}

func TestLoadCreepsRejectsEmptyVariants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creeps.yaml")
	if err := os.WriteFile(path, []byte("mob:\n  variants: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadCreeps(path)
	if !errors.Is(err, ErrNoMobVariants) {
		t.Errorf("LoadCreeps() error = %v, expected ErrNoMobVariants", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *CreepsConfig)
		wantErr string
	}{
		{"defaults", func(c *CreepsConfig) {}, ""},
		{"zero speed", func(c *CreepsConfig) { c.Player.Speed = 0 }, "player speed"},
		{"inverted speed range", func(c *CreepsConfig) { c.Mob.MinSpeed = 300 }, "mob speed range"},
		{"spread too wide", func(c *CreepsConfig) { c.Mob.SpreadDegrees = 120 }, "spread"},
		{"no frames", func(c *CreepsConfig) { c.Mob.Variants[0].Frames = "" }, "no frames"},
		{"bad color", func(c *CreepsConfig) { c.Mob.Variants[1].Color = "mauve" }, "unknown color"},
		{"zero timer", func(c *CreepsConfig) { c.Timers.StartButton = 0 }, "start_button"},
		{"zero cell", func(c *CreepsConfig) { c.World.CellHeight = 0 }, "cell size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCreepsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyCreepsPreset(t *testing.T) {
	cfg := DefaultCreepsConfig()
	ApplyCreepsPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyCreepsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty")
	}

	before := cfg
	ApplyCreepsPreset(&cfg, "")
	if cfg.Difficulty != before.Difficulty {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
