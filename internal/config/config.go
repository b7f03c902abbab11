// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// CreepsConfig contains all configuration for Dodge the Creeps.
type CreepsConfig struct {
	World      CreepsWorld      `yaml:"world"`
	Player     CreepsPlayer     `yaml:"player"`
	Mob        CreepsMob        `yaml:"mob"`
	Timers     CreepsTimers     `yaml:"timers"`
	HUD        CreepsHUD        `yaml:"hud"`
	Input      CreepsInput      `yaml:"input"`
	Gameplay   CreepsGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CreepsWorld maps terminal cells to world units.
type CreepsWorld struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// CreepsPlayer defines the player's movement speed and hitbox.
type CreepsPlayer struct {
	Speed  float64 `yaml:"speed"`  // World units per second
	Width  float64 `yaml:"width"`  // Hitbox width in world units
	Height float64 `yaml:"height"` // Hitbox height in world units
}

// CreepsMob defines the mob template: spawn speed range, heading spread,
// hitbox and the animation variants a mob may be spawned with.
type CreepsMob struct {
	MinSpeed      float64      `yaml:"min_speed"`
	MaxSpeed      float64      `yaml:"max_speed"`
	SpreadDegrees float64      `yaml:"spread_degrees"` // Max heading deviation from the inward normal
	Width         float64      `yaml:"width"`
	Height        float64      `yaml:"height"`
	AnimationFPS  float64      `yaml:"animation_fps"`
	Variants      []MobVariant `yaml:"variants"`
}

// MobVariant is one named animation a mob can play.
type MobVariant struct {
	Name   string `yaml:"name"`
	Frames string `yaml:"frames"` // One rune per animation frame
	Color  string `yaml:"color"`
}

// CreepsTimers holds timer wait times in seconds.
type CreepsTimers struct {
	Start           float64 `yaml:"start"`
	Score           float64 `yaml:"score"`
	Mob             float64 `yaml:"mob"`
	GetReadyMessage float64 `yaml:"get_ready_message"`
	StartMessage    float64 `yaml:"start_message"`
	StartButton     float64 `yaml:"start_button"`
}

// CreepsHUD holds the HUD texts.
type CreepsHUD struct {
	Title       string `yaml:"title"`
	GetReady    string `yaml:"get_ready"`
	GameOver    string `yaml:"game_over"`
	StartButton string `yaml:"start_button"`
}

// CreepsInput tunes how discrete key presses become held directions.
type CreepsInput struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// CreepsGameplay holds round-flow switches.
type CreepsGameplay struct {
	Autostart bool `yaml:"autostart"` // Start a round as soon as the game is reset
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// SpawnRateMultiplier is added to the spawn rate at max difficulty:
	// 1.0 means mobs spawn twice as often at level 1.0.
	SpawnRateMultiplier float64 `yaml:"spawn_rate_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty
// strings return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
