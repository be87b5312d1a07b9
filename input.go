package ballpit

// KeyState is the pressed/released state of the four movement keys, sampled
// once per tick.
type KeyState struct {
	Up    bool // W
	Down  bool // S
	Left  bool // A
	Right bool // D
}

// Any reports whether at least one key is pressed.
func (k KeyState) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// ApplyInput adds accelerate to the player's velocity once per pressed key.
// The increment is deliberately not scaled by elapsed time, so input response
// depends on frame rate.
func ApplyInput(reg *Registry, keys KeyState, accelerate float64) {
	if !keys.Any() {
		return
	}
	reg.EachRole(RolePlayer, func(b *Body) {
		if keys.Down {
			b.Vel.Y -= accelerate
		}
		if keys.Up {
			b.Vel.Y += accelerate
		}
		if keys.Left {
			b.Vel.X -= accelerate
		}
		if keys.Right {
			b.Vel.X += accelerate
		}
	})
}
