package ballpit

import "github.com/yohamta/donburi"

// Role distinguishes the player ball from the autonomous ones.
type Role uint8

const (
	RolePlayer   Role = iota // responds to keyboard input
	RoleOrdinary             // moves only under gravity, bounces and pushes
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleOrdinary:
		return "ordinary"
	default:
		return "unknown"
	}
}

// BallID identifies a ball for the lifetime of its registry.
type BallID = donburi.Entity

// Component types stored on every ball entity.
var (
	Position = donburi.NewComponentType[Vec2]()
	Velocity = donburi.NewComponentType[Vec2]()
	Radius   = donburi.NewComponentType[float64]()

	PlayerTag   = donburi.NewTag()
	OrdinaryTag = donburi.NewTag()
)

func roleTag(r Role) *donburi.ComponentType[donburi.Tag] {
	if r == RolePlayer {
		return PlayerTag
	}
	return OrdinaryTag
}
