package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// LoadCreeps loads Dodge the Creeps configuration.
// Search order: customPath -> ~/.arcade/configs/creeps.yaml -> ./configs/creeps.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
// The result is validated; an invalid configuration is an error.
func LoadCreeps(customPath string) (CreepsConfig, error) {
	cfg, err := loadCreeps(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadCreeps(customPath string) (CreepsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCreepsConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeCreeps(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("creeps.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeCreeps(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/creeps.yaml"); err == nil {
		if cfg, err := decodeCreeps(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodeCreeps(defaultCreepsYAML)
	if err != nil {
		return DefaultCreepsConfig(), nil
	}
	return cfg, nil
}

// decodeCreeps overlays YAML data on the hard-coded defaults.
func decodeCreeps(data []byte) (CreepsConfig, error) {
	cfg := DefaultCreepsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultCreepsConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ErrNoMobVariants is returned when the mob template has no animation to pick from.
var ErrNoMobVariants = errors.New("config: mob has no animation variants")

// Validate checks the configuration preconditions the game relies on.
func (c CreepsConfig) Validate() error {
	var errs []error

	if c.World.CellWidth <= 0 || c.World.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: world cell size must be positive, got %gx%g",
			c.World.CellWidth, c.World.CellHeight))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("config: player speed must be positive, got %g", c.Player.Speed))
	}
	if c.Mob.MinSpeed < 0 || c.Mob.MinSpeed > c.Mob.MaxSpeed {
		errs = append(errs, fmt.Errorf("config: invalid mob speed range [%g, %g]", c.Mob.MinSpeed, c.Mob.MaxSpeed))
	}
	if c.Mob.SpreadDegrees < 0 || c.Mob.SpreadDegrees > 90 {
		errs = append(errs, fmt.Errorf("config: mob spread must be within [0, 90] degrees, got %g", c.Mob.SpreadDegrees))
	}

	if len(c.Mob.Variants) == 0 {
		errs = append(errs, ErrNoMobVariants)
	}
	for i, v := range c.Mob.Variants {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("config: mob variant %d has no name", i))
		}
		if v.Frames == "" {
			errs = append(errs, fmt.Errorf("config: mob variant %q has no frames", v.Name))
		}
		if _, ok := core.ParseColor(v.Color); !ok {
			errs = append(errs, fmt.Errorf("config: mob variant %q has unknown color %q", v.Name, v.Color))
		}
	}

	timers := map[string]float64{
		"start":             c.Timers.Start,
		"score":             c.Timers.Score,
		"mob":               c.Timers.Mob,
		"get_ready_message": c.Timers.GetReadyMessage,
		"start_message":     c.Timers.StartMessage,
		"start_button":      c.Timers.StartButton,
	}
	for _, name := range []string{"start", "score", "mob", "get_ready_message", "start_message", "start_button"} {
		if timers[name] <= 0 {
			errs = append(errs, fmt.Errorf("config: timer %s must be positive, got %g", name, timers[name]))
		}
	}

	return errors.Join(errs...)
}

// ApplyCreepsPreset modifies the config based on a difficulty preset.
// Presets only move the difficulty curve; speeds and headings are untouched.
func ApplyCreepsPreset(cfg *CreepsConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
