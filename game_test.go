package ballpit

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGameElapsed(t *testing.T) {
	sim := newSimulation(DefaultConfig(), testBounds)
	g := NewGame(sim, 800, 600)

	now := time.Unix(100, 0)
	g.now = func() time.Time { return now }

	first := g.elapsed()
	if want := 1.0 / float64(ebiten.TPS()); first != want {
		t.Errorf("first elapsed = %v, want %v", first, want)
	}

	now = now.Add(16 * time.Millisecond)
	if dt := g.elapsed(); math.Abs(dt-0.016) > 1e-12 {
		t.Errorf("elapsed = %v, want 0.016", dt)
	}

	now = now.Add(50 * time.Millisecond)
	if dt := g.elapsed(); math.Abs(dt-0.05) > 1e-12 {
		t.Errorf("elapsed = %v, want 0.05", dt)
	}
}

func TestGameLayoutFixed(t *testing.T) {
	g := NewGame(newSimulation(DefaultConfig(), testBounds), 800, 600)
	for _, size := range [][2]int{{800, 600}, {1920, 1080}, {320, 200}} {
		w, h := g.Layout(size[0], size[1])
		if w != 800 || h != 600 {
			t.Errorf("Layout(%d, %d) = %d, %d; want 800, 600", size[0], size[1], w, h)
		}
	}
}

func TestGameScriptedKeys(t *testing.T) {
	g := NewGame(newSimulation(DefaultConfig(), testBounds), 800, 600)
	script, err := LoadInputScript([]byte(`{"steps": [{"keys": "ws", "ticks": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.script = script
	if got := g.keys(); got != (KeyState{Up: true, Down: true}) {
		t.Errorf("keys = %+v", got)
	}
	if got := g.keys(); got != (KeyState{}) {
		t.Errorf("keys after script = %+v, want empty", got)
	}
}

func TestSurfaceSizeFromConfig(t *testing.T) {
	w, h := surfaceSize(RunConfig{Width: 640, Height: 480})
	if w != 640 || h != 480 {
		t.Errorf("surfaceSize = %d, %d; want 640, 480", w, h)
	}
}
