package ballpit

import (
	"math"

	"github.com/yohamta/donburi/features/events"
)

// Collision describes one overlapping ordered pair found during a tick. It is
// consumed by the resolver in the same tick and never retained.
type Collision struct {
	A        BallID
	PosA     Vec2
	B        BallID
	PosB     Vec2
	Collided bool
	// Angle is atan2(dx, dy) with dx, dy measured from A to B. The argument
	// order determines the push direction and must not be swapped.
	Angle float64
}

// CollisionEvent is the per-tick queue that carries detected collisions to
// the resolver. Records are delivered in publish order.
var CollisionEvent = events.NewEventType[Collision]()

// Overlapping reports whether two circles overlap. Touching circles do not.
func Overlapping(posA Vec2, rA float64, posB Vec2, rB float64) bool {
	d := posB.Sub(posA)
	r := rA + rB
	return d.LenSq() < r*r
}

// ContactAngle returns atan2(dx, dy) for the offset from a to b.
func ContactAngle(a, b Vec2) float64 {
	return math.Atan2(b.X-a.X, b.Y-a.Y)
}

// DetectCollisions tests every ordered pair of distinct balls and returns one
// record per overlapping pair. Both (A,B) and (B,A) are reported. Pairs are
// enumerated in creation order with A as the outer loop. The registry is not
// modified.
func DetectCollisions(reg *Registry) []Collision {
	balls := reg.Snapshot()
	var out []Collision
	for i := range balls {
		a := &balls[i]
		for j := range balls {
			if i == j {
				continue
			}
			b := &balls[j]
			if !Overlapping(a.Position, a.Radius, b.Position, b.Radius) {
				continue
			}
			out = append(out, Collision{
				A:        a.ID,
				PosA:     a.Position,
				B:        b.ID,
				PosB:     b.Position,
				Collided: true,
				Angle:    ContactAngle(a.Position, b.Position),
			})
		}
	}
	return out
}

// ResolveCollision pushes B along the contact angle with the mean of both
// current speeds. A is left untouched and momentum is not conserved. The
// speeds are read from the registry at resolve time, so earlier records in
// the same tick affect later ones. Records naming a removed ball are skipped
// and false is returned.
func ResolveCollision(reg *Registry, c Collision) bool {
	va, ok := reg.Velocity(c.A)
	if !ok {
		return false
	}
	vb, ok := reg.Velocity(c.B)
	if !ok {
		return false
	}
	push := (va.Len() + vb.Len()) * 0.5
	return reg.SetVelocity(c.B, Vec2{
		X: math.Sin(c.Angle) * push,
		Y: math.Cos(c.Angle) * push,
	})
}
