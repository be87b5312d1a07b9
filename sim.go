package ballpit

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/yohamta/donburi"
)

// Simulation runs the per-frame pipeline over one registry:
// input, integration, collision detection, then collision resolution. Every
// stage finishes before the next begins and nothing but the registry carries
// state from one tick to the next.
type Simulation struct {
	cfg    Config
	bounds Bounds
	reg    *Registry

	pushed []BallID
	stats  TickStats
	debug  bool
}

// New validates cfg, creates a registry and spawns the initial layout using
// rng. The returned error wraps ErrNoSurface when bounds are empty and
// ErrInvalidConfig when cfg is unusable.
func New(cfg Config, bounds Bounds, rng *rand.Rand) (*Simulation, error) {
	if bounds.HalfWidth <= 0 || bounds.HalfHeight <= 0 {
		return nil, fmt.Errorf("bounds %vx%v: %w", bounds.HalfWidth, bounds.HalfHeight, ErrNoSurface)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	s := newSimulation(cfg, bounds)
	Populate(s.reg, bounds, cfg.Radius, cfg.Balls, rng)
	return s, nil
}

// newSimulation creates a simulation with an empty registry.
func newSimulation(cfg Config, bounds Bounds) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		bounds: bounds,
		reg:    NewRegistry(),
	}
	CollisionEvent.Subscribe(s.reg.World(), s.onCollision)
	return s
}

// Tick advances the simulation by one frame. dt is the wall-clock time in
// seconds since the previous tick.
func (s *Simulation) Tick(keys KeyState, dt float64) {
	var stats TickStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.pushed = s.pushed[:0]
	ApplyInput(s.reg, keys, s.cfg.Accelerate)
	Integrate(s.reg, s.bounds, s.cfg.Gravity, s.cfg.Friction, dt)

	if s.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	collisions := DetectCollisions(s.reg)
	for _, c := range collisions {
		CollisionEvent.Publish(s.reg.World(), c)
	}

	if s.debug {
		stats.detectTime = time.Since(t0)
		t0 = time.Now()
	}

	CollisionEvent.ProcessEvents(s.reg.World())

	if s.debug {
		stats.resolveTime = time.Since(t0)
	}

	stats.Tick = s.stats.Tick + 1
	stats.Collisions = len(collisions)
	stats.Pushes = len(s.pushed)
	s.stats = stats
	if s.debug {
		s.debugLog(stats)
	}
}

func (s *Simulation) onCollision(_ donburi.World, c Collision) {
	if ResolveCollision(s.reg, c) {
		s.pushed = append(s.pushed, c.B)
	}
}

// Registry returns the simulated balls.
func (s *Simulation) Registry() *Registry {
	return s.reg
}

// Bounds returns the arena half-extents fixed at creation.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Config returns the settings the simulation was created with.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Snapshot returns copies of every ball for rendering.
func (s *Simulation) Snapshot() []Ball {
	return s.reg.Snapshot()
}

// Pushed returns the ids whose velocity was overwritten by the resolver in
// the last tick, once per resolved record. The slice is reused by the next
// tick and MUST NOT be retained.
func (s *Simulation) Pushed() []BallID {
	return s.pushed
}

// Stats returns counters for the last tick.
func (s *Simulation) Stats() TickStats {
	return s.stats
}

// SetDebugMode enables or disables per-tick timing. When enabled, stage
// timings and counters are printed to stderr after every tick.
func (s *Simulation) SetDebugMode(enabled bool) {
	s.debug = enabled
}
