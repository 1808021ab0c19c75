package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the snake pace based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// ApplyDifficultyPreset configures progression for a preset. The fixed
// preset keeps the config's initial level and never progresses.
func ApplyDifficultyPreset(d *DifficultyManager, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.SetEnabled(false)
		return
	}
	d.SetEnabled(true)
	d.SetInitialLevel(InitialLevelForPreset(preset))
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the current speed multiplier, from 1 up to 1 + speed_multiplier.
func (d *DifficultyManager) Speed(score int, ticks int) float64 {
	return 1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// Interval scales a base move interval down by the current speed,
// never going below floor.
func (d *DifficultyManager) Interval(base, floor time.Duration, score int, ticks int) time.Duration {
	speed := d.Speed(score, ticks)
	if speed <= 0 {
		speed = 1
	}
	scaled := time.Duration(float64(base) / speed)
	return max(scaled, floor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
