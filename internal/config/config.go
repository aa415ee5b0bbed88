// Package config provides YAML-based game configuration loading for the
// Snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid        SnakeGrid    `yaml:"grid"`
	Loop        SnakeLoop    `yaml:"loop"`
	Snake       SnakeBody    `yaml:"snake"`
	Scoring     SnakeScoring `yaml:"scoring"`
	Colors      SnakeColors  `yaml:"colors"`
	StrokeWidth int          `yaml:"stroke_width"`
}

// SnakeGrid defines the playfield quantization.
type SnakeGrid struct {
	TileSize int `yaml:"tile_size"`
}

// SnakeLoop defines the tick timer.
type SnakeLoop struct {
	FPS int `yaml:"fps"`
}

// SnakeBody defines the starting snake.
type SnakeBody struct {
	InitialTail int `yaml:"initial_tail"`
}

// SnakeScoring defines points awarded.
type SnakeScoring struct {
	FoodPoints int `yaml:"food_points"`
}

// SnakeColors defines entity and overlay colors as hex strings.
type SnakeColors struct {
	Snake  string `yaml:"snake"`
	Food   string `yaml:"food"`
	Stroke string `yaml:"stroke"`
	Text   string `yaml:"text"`
}

// Validate reports every invalid setting joined into one error.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("config: grid.tile_size must be positive, got %d", c.Grid.TileSize))
	}
	if c.Loop.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: loop.fps must be positive, got %d", c.Loop.FPS))
	}
	if c.Snake.InitialTail < 0 {
		errs = append(errs, fmt.Errorf("config: snake.initial_tail must not be negative, got %d", c.Snake.InitialTail))
	}
	if c.Scoring.FoodPoints < 0 {
		errs = append(errs, fmt.Errorf("config: scoring.food_points must not be negative, got %d", c.Scoring.FoodPoints))
	}
	if c.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("config: stroke_width must not be negative, got %d", c.StrokeWidth))
	}
	return errors.Join(errs...)
}
