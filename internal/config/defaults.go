package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:            27,
			Height:           18,
			InitialSnakeSize: 3,
		},
		Rules: RulesConfig{
			WalkThroughWalls: true,
			FailOnRevert:     false,
			AutoGenFood:      true,
		},
		Pacing: PacingConfig{
			StartIntervalMS: 150,
			MinIntervalMS:   50,
			SpeedupFactor:   0.99999,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake", "snake_walls":
		return defaultSnakeYAML
	default:
		return nil
	}
}
