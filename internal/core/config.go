package core

// RuntimeConfig contains settings passed from the CLI to a host at startup.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed, 0 means use current time in platform layer
	PlayerName string // Name recorded with high scores
	Sound      bool   // Enable the tone synthesizer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0,
		PlayerName: "PLAYER",
	}
}

// TickMs returns the frame interval in milliseconds for the configured rate.
func (c RuntimeConfig) TickMs() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}
