package config

import (
	_ "embed"
)

//go:embed defaults/creeps.yaml
var defaultCreepsYAML []byte

// DefaultCreepsConfig returns the default Dodge the Creeps configuration.
// It mirrors defaults/creeps.yaml and is used if the embedded file
// cannot be parsed.
func DefaultCreepsConfig() CreepsConfig {
	return CreepsConfig{
		World: CreepsWorld{
			CellWidth:  8,
			CellHeight: 16,
		},
		Player: CreepsPlayer{
			Speed:  400,
			Width:  12,
			Height: 14,
		},
		Mob: CreepsMob{
			MinSpeed:      150,
			MaxSpeed:      250,
			SpreadDegrees: 45,
			Width:         14,
			Height:        10,
			AnimationFPS:  4,
			Variants: []MobVariant{
				{Name: "fly", Frames: "wW", Color: "magenta"},
				{Name: "swim", Frames: "~≈", Color: "cyan"},
				{Name: "walk", Frames: "mM", Color: "bright_red"},
			},
		},
		Timers: CreepsTimers{
			Start:           2.0,
			Score:           1.0,
			Mob:             0.5,
			GetReadyMessage: 2.0,
			StartMessage:    2.0,
			StartButton:     1.0,
		},
		HUD: CreepsHUD{
			Title:       "Dodge the Creeps",
			GetReady:    "Get Ready",
			GameOver:    "Game Over",
			StartButton: "Start",
		},
		Input: CreepsInput{
			HoldTicks: 8,
		},
		Gameplay: CreepsGameplay{
			Autostart: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpawnRateMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "creeps":
		return defaultCreepsYAML
	default:
		return nil
	}
}
