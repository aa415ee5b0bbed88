package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			TileSize: 20,
		},
		Loop: SnakeLoop{
			FPS: 10,
		},
		Snake: SnakeBody{
			InitialTail: 2,
		},
		Scoring: SnakeScoring{
			FoodPoints: 10,
		},
		Colors: SnakeColors{
			Snake:  "#21bf73",
			Food:   "#fd5e53",
			Stroke: "#272121",
			Text:   "#ffffff",
		},
		StrokeWidth: 3,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
