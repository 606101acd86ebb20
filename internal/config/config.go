// Package config provides YAML-based game configuration loading and
// difficulty management for the blockfall platform.
package config

// BlocksConfig contains all configuration for the falling-blocks game.
type BlocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity and lock timing.
type TimingConfig struct {
	// LockDelayMS is the grace window in milliseconds after a piece rests
	// before it merges into the stack.
	LockDelayMS int `yaml:"lock_delay_ms"`
	// GravityMS is the fall interval per level in milliseconds; index 0 is
	// level 1. Levels past the end of the table use the last entry.
	GravityMS []int `yaml:"gravity_ms"`
}

// ScoringConfig defines the point awards.
type ScoringConfig struct {
	// LineClear holds base points for 1..4 simultaneous rows; each award
	// is multiplied by the current level.
	LineClear       []int `yaml:"line_clear"`
	SoftDropPerCell int   `yaml:"soft_drop_per_cell"`
	HardDropPerCell int   `yaml:"hard_drop_per_cell"`
}

// GameplayConfig defines progression and presentation parameters.
type GameplayConfig struct {
	LinesPerLevel int  `yaml:"lines_per_level"`
	MaxLevel      int  `yaml:"max_level"`
	SprintLines   int  `yaml:"sprint_lines"`
	PreviewCount  int  `yaml:"preview_count"`
	GhostPiece    bool `yaml:"ghost_piece"`
}

// DifficultyConfig defines how presets shape the starting game.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`
	StartLevel int  `yaml:"start_level"`
	// GravityScale multiplies every fall interval; below 1.0 is faster.
	GravityScale float64 `yaml:"gravity_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 5
	default:
		return 1
	}
}

// GravityScaleForPreset returns the gravity multiplier for a preset.
func GravityScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
