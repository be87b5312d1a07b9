package ballpit

import "math/rand/v2"

// NewRand returns a seeded PCG generator for reproducible layouts.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Populate spawns the player at the origin at rest, followed by count
// ordinary balls placed uniformly inside the arena with velocities drawn
// uniformly from [SpawnSpeedMin, SpawnSpeedMax] on each axis.
func Populate(reg *Registry, bounds Bounds, radius float64, count int, rng *rand.Rand) {
	reg.Spawn(RolePlayer, Vec2{}, Vec2{}, radius)
	for i := 0; i < count; i++ {
		pos := Vec2{
			X: uniform(rng, -bounds.HalfWidth, bounds.HalfWidth),
			Y: uniform(rng, -bounds.HalfHeight, bounds.HalfHeight),
		}
		vel := Vec2{
			X: uniform(rng, SpawnSpeedMin, SpawnSpeedMax),
			Y: uniform(rng, SpawnSpeedMin, SpawnSpeedMax),
		}
		reg.Spawn(RoleOrdinary, pos, vel, radius)
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
