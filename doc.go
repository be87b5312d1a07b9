// Package ballpit is a small 2D physics playground for [Ebitengine].
//
// An arena holds one player-controlled ball and a number of autonomous balls.
// Every frame the [Simulation] runs four stages over a shared [Registry]:
//
//  1. [ApplyInput] adds a fixed acceleration to the player per pressed key.
//  2. [Integrate] bounces balls off the arena edges, moves them and applies
//     gravity.
//  3. [DetectCollisions] reports every overlapping ordered pair of balls.
//  4. [ResolveCollision] pushes the second ball of each pair along the
//     contact angle, in the order the pairs were reported.
//
// The registry is backed by a [Donburi] world and detected collisions travel
// to the resolver through a Donburi event queue that is drained every tick.
//
// # Quick start
//
//	err := ballpit.Run(ballpit.RunConfig{
//		Title: "ballpit", Width: 800, Height: 600,
//		Sim:   ballpit.DefaultConfig(),
//	})
//
// To drive the simulation without a window, create it directly:
//
//	bounds, _ := ballpit.BoundsFromSurface(800, 600)
//	sim, err := ballpit.New(ballpit.DefaultConfig(), bounds, ballpit.NewRand(1))
//	sim.Tick(ballpit.KeyState{Up: true}, 1.0/60)
//
// # Quirks
//
// Several behaviours are kept on purpose: input is not scaled by elapsed
// time, gravity reaches the position one tick late, a ball may overshoot the
// arena for one frame, the contact angle is atan2(dx, dy), and resolution
// only changes one ball per record without conserving momentum.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package ballpit
