package core

import "time"

// Cadence parameters. Idle accrual is defined per tick, so the tick period is
// pinned rather than configurable.
const (
	TickPeriod  = 10 * time.Millisecond
	PollTimeout = 50 * time.Millisecond
)

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible upgrade draws
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}
