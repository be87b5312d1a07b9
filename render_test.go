package ballpit

import (
	"math"
	"strings"
	"testing"
)

func TestRendererToScreen(t *testing.T) {
	r := NewRenderer(testBounds, 2)
	tests := []struct {
		name   string
		p      Vec2
		wx, wy float32
	}{
		{"origin", Vec2{0, 0}, 400, 300},
		{"top-left", Vec2{-400, 300}, 0, 0},
		{"bottom-right", Vec2{400, -300}, 800, 600},
		{"up is up", Vec2{0, 100}, 400, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.ToScreen(tt.p)
			if x != tt.wx || y != tt.wy {
				t.Errorf("ToScreen(%v) = (%v, %v), want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestRendererFillColorByRole(t *testing.T) {
	r := NewRenderer(testBounds, 2)
	if got := r.FillColor(Ball{Role: RolePlayer}); got != ColorGreen {
		t.Errorf("player color = %v, want green", got)
	}
	if got := r.FillColor(Ball{Role: RoleOrdinary}); got != ColorOrange {
		t.Errorf("ordinary color = %v, want orange", got)
	}
}

func TestRendererFlash(t *testing.T) {
	reg := NewRegistry()
	id := reg.Spawn(RoleOrdinary, Vec2{}, Vec2{}, 12)
	ball := Ball{ID: id, Role: RoleOrdinary}

	r := NewRenderer(testBounds, 2)
	r.Update(0, []BallID{id})

	c := r.FillColor(ball)
	if math.Abs(c.R-1) > 1e-6 || math.Abs(c.G-1) > 1e-6 || math.Abs(c.B-1) > 1e-6 {
		t.Errorf("flashing color = %v, want ~white", c)
	}

	r.Update(flashDuration/2, nil)
	mid := r.FillColor(ball)
	if mid.B <= ColorOrange.B || mid.B >= 1 {
		t.Errorf("mid-flash blue = %v, want between %v and 1", mid.B, ColorOrange.B)
	}

	r.Update(flashDuration, nil)
	if got := r.FillColor(ball); got != ColorOrange {
		t.Errorf("color after flash = %v, want orange", got)
	}
}

func TestColorLerp(t *testing.T) {
	c := ColorBlack.Lerp(ColorWhite, 0.5)
	if c.R != 0.5 || c.G != 0.5 || c.B != 0.5 || c.A != 1 {
		t.Errorf("Lerp = %v", c)
	}
	if got := ColorBlack.Lerp(ColorWhite, 2); got != ColorWhite {
		t.Errorf("Lerp clamps: got %v", got)
	}
}

func TestColorToRGBA(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	if got.R != 127 || got.G != 63 || got.B != 0 || got.A != 127 {
		t.Errorf("toRGBA = %+v", got)
	}
}

func TestHUDText(t *testing.T) {
	s := hudText(60, 60, TickStats{Tick: 12, Collisions: 4}, 11, false)
	for _, want := range []string{"FPS: 60.0", "Tick: 12", "Balls: 11", "Collisions: 4"} {
		if !strings.Contains(s, want) {
			t.Errorf("hud text %q missing %q", s, want)
		}
	}
	if strings.Contains(s, "PAUSED") {
		t.Error("unpaused hud shows PAUSED")
	}
	if !strings.Contains(hudText(60, 60, TickStats{}, 0, true), "PAUSED") {
		t.Error("paused hud missing PAUSED")
	}
}
