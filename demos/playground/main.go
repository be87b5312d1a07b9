// playground opens the ballpit arena: WASD accelerates the green ball, P
// pauses, F3 toggles the HUD and Esc quits. With -headless it replays an
// input script without a window and prints the final state.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/ballpit"
)

func main() {
	cfg := ballpit.DefaultConfig()

	var (
		width    = flag.Int("width", 800, "window width in pixels (0 uses the monitor size)")
		height   = flag.Int("height", 600, "window height in pixels (0 uses the monitor size)")
		hud      = flag.Bool("hud", false, "show the debug HUD on start")
		debug    = flag.Bool("debug", false, "print per-tick stats to stderr")
		script   = flag.String("script", "", "JSON input script to replay instead of the keyboard")
		headless = flag.Bool("headless", false, "run the script without a window and print the final state")
		dt       = flag.Float64("dt", 1.0/60, "fixed tick length in seconds for -headless")
	)
	flag.IntVar(&cfg.Balls, "balls", cfg.Balls, "number of autonomous balls")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "layout seed")
	flag.Float64Var(&cfg.Gravity, "gravity", cfg.Gravity, "vertical acceleration")
	flag.Float64Var(&cfg.Friction, "friction", cfg.Friction, "edge bounce factor")
	flag.Float64Var(&cfg.Accelerate, "accelerate", cfg.Accelerate, "velocity added per key per tick")
	flag.Float64Var(&cfg.Radius, "radius", cfg.Radius, "ball radius")
	flag.Parse()

	var input *ballpit.InputScript
	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		input, err = ballpit.LoadInputScript(data)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *headless {
		runHeadless(cfg, *width, *height, input, *dt, *debug)
		return
	}

	if err := ballpit.Run(ballpit.RunConfig{
		Title:   "ballpit",
		Width:   *width,
		Height:  *height,
		Sim:     cfg,
		ShowHUD: *hud,
		Debug:   *debug,
		Script:  input,
	}); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(cfg ballpit.Config, w, h int, input *ballpit.InputScript, dt float64, debug bool) {
	bounds, err := ballpit.BoundsFromSurface(w, h)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := ballpit.New(cfg, bounds, ballpit.NewRand(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}
	sim.SetDebugMode(debug)

	ticks := ballpit.RunHeadless(sim, input, dt)
	fmt.Printf("ticks: %d\n", ticks)
	for _, b := range sim.Snapshot() {
		fmt.Printf("%-8s pos=(%.3f, %.3f) vel=(%.3f, %.3f)\n",
			b.Role, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
	}
}
