package ballpit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the HUD text is redrawn, in seconds.
const hudRefresh = 0.5

// HUD displays FPS, TPS and simulation counters in the top-left corner.
type HUD struct {
	Visible bool

	img   *ebiten.Image
	since float64
	text  string
}

// NewHUD creates a hidden HUD.
func NewHUD() *HUD {
	return &HUD{since: hudRefresh}
}

// Update refreshes the text roughly every half second.
func (h *HUD) Update(dt float64, stats TickStats, balls int, paused bool) {
	h.since += dt
	if h.since < hudRefresh {
		return
	}
	h.since = 0
	h.text = hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), stats, balls, paused)
}

func hudText(fps, tps float64, stats TickStats, balls int, paused bool) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTick: %d\nBalls: %d\nCollisions: %d",
		fps, tps, stats.Tick, balls, stats.Collisions)
	if paused {
		s += "\nPAUSED"
	}
	return s
}

// Draw renders the HUD onto screen when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.Visible {
		return
	}
	if h.img == nil {
		// 120x80 fits the five or six lines of debug text.
		h.img = ebiten.NewImage(120, 80)
	}
	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
	screen.DrawImage(h.img, nil)
}
