package ballpit

// Integrate advances every ball by one tick of dt seconds.
//
// For each ball, in order: the tick-start position is reflected off the arena
// bounds (velocity component negated and scaled by friction, position clamped
// to the edge), the position moves by velocity*dt, then gravity is added to
// the vertical velocity. Gravity therefore reaches the position one tick late.
// A position pushed outside the arena by the move step stays there until the
// next tick's boundary test.
func Integrate(reg *Registry, bounds Bounds, gravity, friction, dt float64) {
	hw, hh := bounds.HalfWidth, bounds.HalfHeight
	reg.Each(func(b *Body) {
		pos, vel := b.Pos, b.Vel

		if pos.X < -hw {
			vel.X *= -friction
			pos.X = -hw
		} else if pos.X > hw {
			vel.X *= -friction
			pos.X = hw
		}
		if pos.Y < -hh {
			vel.Y *= -friction
			pos.Y = -hh
		} else if pos.Y > hh {
			vel.Y *= -friction
			pos.Y = hh
		}

		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		vel.Y += gravity * dt
	})
}
