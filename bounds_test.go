package ballpit

import (
	"errors"
	"testing"
)

func TestBoundsFromSurface(t *testing.T) {
	b, err := BoundsFromSurface(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if b.HalfWidth != 400 || b.HalfHeight != 300 {
		t.Errorf("bounds = %+v, want 400x300", b)
	}
}

func TestBoundsFromSurfaceMissing(t *testing.T) {
	for _, tc := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		if _, err := BoundsFromSurface(tc[0], tc[1]); !errors.Is(err, ErrNoSurface) {
			t.Errorf("BoundsFromSurface(%d, %d) err = %v, want ErrNoSurface", tc[0], tc[1], err)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"origin", Vec2{0, 0}, true},
		{"right edge", Vec2{400, 0}, true},
		{"bottom-left corner", Vec2{-400, -300}, true},
		{"outside right", Vec2{400.001, 0}, false},
		{"outside top", Vec2{0, 301}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testBounds.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
