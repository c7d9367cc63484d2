package core

import "time"

// RuntimeConfig holds per-session settings that come from the command line
// rather than from the game config file.
type RuntimeConfig struct {
	TickRate int   // Frames per second; 0 keeps the configured frame budget
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig that defers to the game config.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 0,
		Seed:     0,
	}
}

// FrameBudget returns the time allotted to one frame.
// A positive TickRate overrides the configured base budget.
func (c RuntimeConfig) FrameBudget(base time.Duration) time.Duration {
	if c.TickRate > 0 {
		return time.Second / time.Duration(c.TickRate)
	}
	return base
}

// ResolvedSeed returns the configured seed, or a clock-based one when unset.
func (c RuntimeConfig) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
