package ballpit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Palette colors.
var (
	ColorWhite      = Color{1, 1, 1, 1}
	ColorBlack      = Color{0, 0, 0, 1}
	ColorGreen      = Color{0, 1, 0, 1}
	ColorOrange     = Color{1, 0.55, 0.1, 1}
	ColorBackground = Color{0.4, 0.4, 0.4, 1}
)

// Lerp blends c toward o by t in [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// flashDuration is how long a pushed ball stays highlighted, in seconds.
const flashDuration = 0.25

// flashSet fades a highlight on balls the resolver pushed.
type flashSet struct {
	tweens map[BallID]*gween.Tween
	values map[BallID]float64
}

func newFlashSet() flashSet {
	return flashSet{
		tweens: make(map[BallID]*gween.Tween),
		values: make(map[BallID]float64),
	}
}

// trigger restarts the highlight for id at full intensity.
func (f *flashSet) trigger(id BallID) {
	f.tweens[id] = gween.New(1, 0, flashDuration, ease.OutQuad)
	f.values[id] = 1
}

func (f *flashSet) update(dt float32) {
	for id, tw := range f.tweens {
		v, done := tw.Update(dt)
		if done {
			delete(f.tweens, id)
			delete(f.values, id)
			continue
		}
		f.values[id] = float64(v)
	}
}

func (f *flashSet) intensity(id BallID) float64 {
	return f.values[id]
}

// Renderer draws a snapshot of the arena. It holds no simulation state apart
// from the cosmetic flash highlights.
type Renderer struct {
	Background    Color
	PlayerColor   Color
	OrdinaryColor Color
	OutlineColor  Color
	FlashColor    Color

	bounds       Bounds
	outlineWidth float64
	flashes      flashSet
}

// NewRenderer creates a renderer for an arena with the given bounds.
func NewRenderer(bounds Bounds, outlineWidth float64) *Renderer {
	return &Renderer{
		Background:    ColorBackground,
		PlayerColor:   ColorGreen,
		OrdinaryColor: ColorOrange,
		OutlineColor:  ColorBlack,
		FlashColor:    ColorWhite,
		bounds:        bounds,
		outlineWidth:  outlineWidth,
		flashes:       newFlashSet(),
	}
}

// Update advances highlight fades by dt seconds and starts a new highlight
// for every pushed id.
func (r *Renderer) Update(dt float64, pushed []BallID) {
	r.flashes.update(float32(dt))
	for _, id := range pushed {
		r.flashes.trigger(id)
	}
}

// ToScreen maps an arena position (origin centre, y up) to screen pixels
// (origin top-left, y down).
func (r *Renderer) ToScreen(p Vec2) (x, y float32) {
	return float32(p.X + r.bounds.HalfWidth), float32(r.bounds.HalfHeight - p.Y)
}

// FillColor returns the color a ball is filled with this frame.
func (r *Renderer) FillColor(b Ball) Color {
	base := r.OrdinaryColor
	if b.Role == RolePlayer {
		base = r.PlayerColor
	}
	return base.Lerp(r.FlashColor, r.flashes.intensity(b.ID))
}

// Draw clears screen and draws every ball as an outlined circle.
func (r *Renderer) Draw(screen *ebiten.Image, balls []Ball) {
	screen.Fill(r.Background.toRGBA())
	outline := r.OutlineColor.toRGBA()
	for i := range balls {
		b := &balls[i]
		x, y := r.ToScreen(b.Position)
		rad := float32(b.Radius)
		vector.DrawFilledCircle(screen, x, y, rad, r.FillColor(*b).toRGBA(), true)
		if r.outlineWidth > 0 {
			vector.StrokeCircle(screen, x, y, rad, float32(r.outlineWidth), outline, true)
		}
	}
}
