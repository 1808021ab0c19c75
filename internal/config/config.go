// Package config provides YAML-based snake configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for a snake run.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Rules      RulesConfig      `yaml:"rules"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	InitialSnakeSize int `yaml:"initial_snake_size"`
}

// RulesConfig toggles the simulation rules.
type RulesConfig struct {
	WalkThroughWalls bool `yaml:"walk_through_walls"`
	FailOnRevert     bool `yaml:"fail_on_revert"`
	AutoGenFood      bool `yaml:"auto_gen_food"`
}

// PacingConfig controls how often the snake moves.
type PacingConfig struct {
	StartIntervalMS int     `yaml:"start_interval_ms"`
	MinIntervalMS   int     `yaml:"min_interval_ms"`
	SpeedupFactor   float64 `yaml:"speedup_factor"` // Applied to the interval on every food
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty
}

// MaxDimension bounds both board axes; coordinates are 16-bit.
const MaxDimension = 1 << 15

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Width > MaxDimension:
		return fmt.Errorf("%w: board.width %d", ErrInvalidConfig, c.Board.Width)
	case c.Board.Height <= 0 || c.Board.Height > MaxDimension:
		return fmt.Errorf("%w: board.height %d", ErrInvalidConfig, c.Board.Height)
	case c.Board.InitialSnakeSize < 0 || c.Board.InitialSnakeSize > MaxDimension:
		return fmt.Errorf("%w: board.initial_snake_size %d", ErrInvalidConfig, c.Board.InitialSnakeSize)
	case c.Pacing.StartIntervalMS <= 0:
		return fmt.Errorf("%w: pacing.start_interval_ms %d", ErrInvalidConfig, c.Pacing.StartIntervalMS)
	case c.Pacing.MinIntervalMS < 0 || c.Pacing.MinIntervalMS > c.Pacing.StartIntervalMS:
		return fmt.Errorf("%w: pacing.min_interval_ms %d", ErrInvalidConfig, c.Pacing.MinIntervalMS)
	case c.Pacing.SpeedupFactor <= 0 || c.Pacing.SpeedupFactor > 1:
		return fmt.Errorf("%w: pacing.speedup_factor %v", ErrInvalidConfig, c.Pacing.SpeedupFactor)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
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
