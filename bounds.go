package ballpit

import (
	"errors"
	"fmt"
)

// ErrNoSurface is returned when no usable display surface is available to
// derive the arena from.
var ErrNoSurface = errors.New("ballpit: no usable display surface")

// Bounds holds the arena half-extents. The arena spans [-HalfWidth, HalfWidth]
// horizontally and [-HalfHeight, HalfHeight] vertically. Bounds are sampled
// once at startup and are not updated when the window is resized.
type Bounds struct {
	HalfWidth, HalfHeight float64
}

// BoundsFromSurface derives the arena from a surface of w by h pixels.
func BoundsFromSurface(w, h int) (Bounds, error) {
	if w <= 0 || h <= 0 {
		return Bounds{}, fmt.Errorf("surface %dx%d: %w", w, h, ErrNoSurface)
	}
	return Bounds{HalfWidth: float64(w) / 2, HalfHeight: float64(h) / 2}, nil
}

// Contains reports whether p lies inside or on the arena edge.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= -b.HalfWidth && p.X <= b.HalfWidth &&
		p.Y >= -b.HalfHeight && p.Y <= b.HalfHeight
}
