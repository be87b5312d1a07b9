package ballpit

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height size the window and the arena. When either is zero the
	// primary monitor size is used.
	Width, Height int
	// Sim holds the physics and layout settings.
	Sim Config
	// ShowHUD shows the debug overlay from the first frame. F3 toggles it.
	ShowHUD bool
	// Debug enables per-tick stats on stderr.
	Debug bool
	// Script, when set, replaces keyboard input with recorded key state.
	Script *InputScript
}

// Game adapts a Simulation to ebiten.Game. It samples the keyboard, measures
// wall-clock time between updates and draws the arena.
type Game struct {
	sim      *Simulation
	renderer *Renderer
	hud      *HUD
	script   *InputScript
	width    int
	height   int
	paused   bool

	now  func() time.Time
	last time.Time
}

// NewGame wraps sim for a surface of width by height pixels.
func NewGame(sim *Simulation, width, height int) *Game {
	return &Game{
		sim:      sim,
		renderer: NewRenderer(sim.Bounds(), sim.Config().OutlineWidth),
		hud:      NewHUD(),
		width:    width,
		height:   height,
		now:      time.Now,
	}
}

// Simulation returns the wrapped simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// elapsed returns the seconds since the previous call. The first call
// assumes one nominal tick has passed.
func (g *Game) elapsed() float64 {
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return 1.0 / float64(ebiten.TPS())
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return dt
}

// keys samples the movement keys for this tick.
func (g *Game) keys() KeyState {
	if g.script != nil {
		return g.script.Next()
	}
	return KeyState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.hud.Visible = !g.hud.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	dt := g.elapsed()
	if !g.paused {
		g.sim.Tick(g.keys(), dt)
		g.renderer.Update(dt, g.sim.Pushed())
	}
	g.hud.Update(dt, g.sim.Stats(), g.sim.Registry().Len(), g.paused)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.Snapshot())
	g.hud.Draw(screen)
}

// Layout implements ebiten.Game. The logical screen keeps the size the arena
// was created with; resizing the window scales it rather than growing it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// surfaceSize resolves the window size, falling back to the monitor.
func surfaceSize(cfg RunConfig) (int, int) {
	if cfg.Width > 0 && cfg.Height > 0 {
		return cfg.Width, cfg.Height
	}
	if m := ebiten.Monitor(); m != nil {
		return m.Size()
	}
	return 0, 0
}

// Run opens a window and runs the playground until it is closed. It returns
// an error wrapping ErrNoSurface when no display size can be determined.
func Run(cfg RunConfig) error {
	w, h := surfaceSize(cfg)
	bounds, err := BoundsFromSurface(w, h)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	sim, err := New(cfg.Sim, bounds, NewRand(cfg.Sim.Seed))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	sim.SetDebugMode(cfg.Debug)

	g := NewGame(sim, w, h)
	g.script = cfg.Script
	g.hud.Visible = cfg.ShowHUD

	title := cfg.Title
	if title == "" {
		title = "ballpit"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("ballpit: arena %vx%v, %d balls, seed %d",
		bounds.HalfWidth*2, bounds.HalfHeight*2, sim.Registry().Len(), cfg.Sim.Seed)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
