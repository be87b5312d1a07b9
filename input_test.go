package ballpit

import "testing"

func TestApplyInput(t *testing.T) {
	tests := []struct {
		name string
		keys KeyState
		want Vec2
	}{
		{"none", KeyState{}, Vec2{0, 0}},
		{"up", KeyState{Up: true}, Vec2{0, 50}},
		{"down", KeyState{Down: true}, Vec2{0, -50}},
		{"left", KeyState{Left: true}, Vec2{-50, 0}},
		{"right", KeyState{Right: true}, Vec2{50, 0}},
		{"up right", KeyState{Up: true, Right: true}, Vec2{50, 50}},
		{"opposites cancel", KeyState{Up: true, Down: true, Left: true, Right: true}, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			id := reg.Spawn(RolePlayer, Vec2{}, Vec2{}, 12)
			ApplyInput(reg, tt.keys, 50)
			got, _ := reg.Velocity(id)
			if got != tt.want {
				t.Errorf("velocity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyInputOnlyPlayer(t *testing.T) {
	reg := NewRegistry()
	reg.Spawn(RolePlayer, Vec2{}, Vec2{}, 12)
	other := reg.Spawn(RoleOrdinary, Vec2{}, Vec2{1, 1}, 12)

	ApplyInput(reg, KeyState{Up: true, Right: true}, 50)

	v, _ := reg.Velocity(other)
	if v != (Vec2{1, 1}) {
		t.Errorf("ordinary ball velocity changed to %v", v)
	}
}

func TestApplyInputAccumulatesPerTick(t *testing.T) {
	reg := NewRegistry()
	id := reg.Spawn(RolePlayer, Vec2{}, Vec2{}, 12)
	for i := 0; i < 3; i++ {
		ApplyInput(reg, KeyState{Left: true}, 50)
	}
	v, _ := reg.Velocity(id)
	if v.X != -150 {
		t.Errorf("velocity.x = %v, want -150", v.X)
	}
}
