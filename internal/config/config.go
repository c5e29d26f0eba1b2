// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris game.
package config

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TetrisConfig contains all configuration for a tetris run.
type TetrisConfig struct {
	StartLevel     int   `yaml:"start_level"`
	Easy           bool  `yaml:"easy"`
	TickRate       int   `yaml:"tick_rate"`        // ticks per second
	LineClearTicks int   `yaml:"line_clear_ticks"` // flash length before rows collapse, 0 disables it
	Seed           int64 `yaml:"seed"`             // 0 picks a time-based seed at launch
}

// ToSession returns the engine configuration for this config.
func (c TetrisConfig) ToSession() tetris.Config {
	return tetris.Config{
		StartLevel:     c.StartLevel,
		Easy:           c.Easy,
		Seed:           c.Seed,
		LineClearTicks: c.LineClearTicks,
	}
}

// ToRuntime returns the platform loop settings for a screen of the given size.
// Non-positive sizes and rates keep the runtime defaults.
func (c TetrisConfig) ToRuntime(screenW, screenH int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if screenW > 0 {
		rc.ScreenW = screenW
	}
	if screenH > 0 {
		rc.ScreenH = screenH
	}
	if c.TickRate > 0 {
		rc.TickRate = c.TickRate
	}
	rc.Seed = c.Seed
	return rc
}
