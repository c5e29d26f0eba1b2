package core

import "time"

// RuntimeConfig contains process-level settings handed to the platform loop.
// The engine itself only ever sees the tetris.Config derived from it.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 100, one tick per 10ms)
	Seed     int64 // RNG seed for deterministic piece order
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// MaxTickRate caps the simulation rate; faster ticks only burn CPU.
const MaxTickRate = 1000

// TickInterval returns the wall-clock duration of one simulation tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 10 * time.Millisecond
	}
	return time.Second / time.Duration(Clamp(c.TickRate, 1, MaxTickRate))
}
