package ballpit

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Ball is a read-only copy of one ball's state.
type Ball struct {
	ID       BallID
	Position Vec2
	Velocity Vec2
	Radius   float64
	Role     Role
}

// Body gives a simulation pass mutable access to one ball. Pos and Vel point
// into component storage and are only valid for the duration of the callback.
type Body struct {
	ID     BallID
	Pos    *Vec2
	Vel    *Vec2
	Radius float64
	Role   Role
}

var (
	playerQuery   = donburi.NewQuery(filter.Contains(PlayerTag, Position, Velocity))
	ordinaryQuery = donburi.NewQuery(filter.Contains(OrdinaryTag, Position, Velocity))
)

// Registry owns the simulated balls. Storage lives in a donburi world; the
// registry additionally keeps creation order so that every full iteration,
// and therefore collision pair enumeration, is reproducible.
type Registry struct {
	world donburi.World
	order []BallID
}

// NewRegistry creates an empty registry with its own donburi world.
func NewRegistry() *Registry {
	return &Registry{world: donburi.NewWorld()}
}

// World returns the backing donburi world.
func (r *Registry) World() donburi.World {
	return r.world
}

// Spawn creates a ball and returns its id. The radius is fixed for the
// lifetime of the ball.
func (r *Registry) Spawn(role Role, pos, vel Vec2, radius float64) BallID {
	e := r.world.Create(Position, Velocity, Radius, roleTag(role))
	entry := r.world.Entry(e)
	Position.SetValue(entry, pos)
	Velocity.SetValue(entry, vel)
	Radius.SetValue(entry, radius)
	r.order = append(r.order, e)
	return e
}

// Remove deletes a ball. It reports false if the id is not present.
func (r *Registry) Remove(id BallID) bool {
	if !r.world.Valid(id) {
		return false
	}
	r.world.Remove(id)
	for i, e := range r.order {
		if e == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live balls.
func (r *Registry) Len() int {
	return len(r.order)
}

// Each calls fn for every ball in creation order.
func (r *Registry) Each(fn func(b *Body)) {
	for _, id := range r.order {
		if !r.world.Valid(id) {
			continue
		}
		b := r.body(r.world.Entry(id))
		fn(&b)
	}
}

// EachRole calls fn for every ball tagged with the given role.
func (r *Registry) EachRole(role Role, fn func(b *Body)) {
	q := ordinaryQuery
	if role == RolePlayer {
		q = playerQuery
	}
	q.Each(r.world, func(entry *donburi.Entry) {
		b := r.body(entry)
		fn(&b)
	})
}

// Position returns the position of the ball with the given id.
func (r *Registry) Position(id BallID) (Vec2, bool) {
	if !r.world.Valid(id) {
		return Vec2{}, false
	}
	return *Position.Get(r.world.Entry(id)), true
}

// Velocity returns the velocity of the ball with the given id.
func (r *Registry) Velocity(id BallID) (Vec2, bool) {
	if !r.world.Valid(id) {
		return Vec2{}, false
	}
	return *Velocity.Get(r.world.Entry(id)), true
}

// SetVelocity overwrites the velocity of the ball with the given id. It is a
// no-op returning false when the ball no longer exists.
func (r *Registry) SetVelocity(id BallID, v Vec2) bool {
	if !r.world.Valid(id) {
		return false
	}
	Velocity.SetValue(r.world.Entry(id), v)
	return true
}

// Snapshot returns copies of every ball in creation order.
func (r *Registry) Snapshot() []Ball {
	out := make([]Ball, 0, len(r.order))
	r.Each(func(b *Body) {
		out = append(out, Ball{
			ID:       b.ID,
			Position: *b.Pos,
			Velocity: *b.Vel,
			Radius:   b.Radius,
			Role:     b.Role,
		})
	})
	return out
}

func (r *Registry) body(entry *donburi.Entry) Body {
	role := RoleOrdinary
	if entry.HasComponent(PlayerTag) {
		role = RolePlayer
	}
	return Body{
		ID:     entry.Entity(),
		Pos:    Position.Get(entry),
		Vel:    Velocity.Get(entry),
		Radius: *Radius.Get(entry),
		Role:   role,
	}
}
