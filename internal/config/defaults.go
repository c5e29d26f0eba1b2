package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	sc := tetris.DefaultConfig()
	return TetrisConfig{
		StartLevel:     sc.StartLevel,
		Easy:           false,
		TickRate:       100,
		LineClearTicks: sc.LineClearTicks,
		Seed:           0,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultTetrisYAML...)
}
