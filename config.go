package ballpit

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Default physics and layout values.
const (
	DefaultGravity      = -500.0
	DefaultFriction     = 0.80
	DefaultAccelerate   = 50.0
	DefaultRadius       = 12.0
	DefaultOutlineWidth = 2.0
	DefaultBalls        = 10

	// Initial ordinary-ball velocity range, per axis.
	SpawnSpeedMin = -1000.0
	SpawnSpeedMax = 1000.0
)

// Config controls the simulation constants and the initial layout.
type Config struct {
	// Gravity is the vertical acceleration in units per second squared.
	Gravity float64
	// Friction scales a velocity component when it is reflected off an edge.
	Friction float64
	// Accelerate is the velocity added per pressed key per tick.
	Accelerate float64
	// Radius is shared by every ball.
	Radius float64
	// OutlineWidth is the stroke width used when drawing balls.
	OutlineWidth float64
	// Balls is the number of ordinary balls spawned next to the player.
	Balls int
	// Seed seeds the layout generator.
	Seed uint64
}

// DefaultConfig returns the stock playground settings.
func DefaultConfig() Config {
	return Config{
		Gravity:      DefaultGravity,
		Friction:     DefaultFriction,
		Accelerate:   DefaultAccelerate,
		Radius:       DefaultRadius,
		OutlineWidth: DefaultOutlineWidth,
		Balls:        DefaultBalls,
	}
}

// Validate reports the first setting that cannot produce a working arena.
func (c Config) Validate() error {
	if c.Radius <= 0 {
		return fmt.Errorf("config: radius %v must be positive: %w", c.Radius, ErrInvalidConfig)
	}
	if c.Balls < 0 {
		return fmt.Errorf("config: ball count %d is negative: %w", c.Balls, ErrInvalidConfig)
	}
	if c.Friction < 0 {
		return fmt.Errorf("config: friction %v is negative: %w", c.Friction, ErrInvalidConfig)
	}
	if c.OutlineWidth < 0 {
		return fmt.Errorf("config: outline width %v is negative: %w", c.OutlineWidth, ErrInvalidConfig)
	}
	return nil
}
