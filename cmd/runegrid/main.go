// Command runegrid runs a small demo scene: a glyph bouncing around the
// viewport over a colored backdrop, with live FPS in the corner.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/runegrid/runegrid/component"
	"github.com/runegrid/runegrid/config"
	"github.com/runegrid/runegrid/core"
	"github.com/runegrid/runegrid/engine"
	"github.com/runegrid/runegrid/render"
	"github.com/runegrid/runegrid/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := cfg.BuildLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	term, err := terminal.New()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	compositor, err := render.NewCompositor(cfg.RenderOptions(), log)
	if err != nil {
		return err
	}
	pipeline := render.NewPipeline(compositor, term, log)

	game := engine.NewGame(cfg.GameOptions(), engine.Deps{
		Input:    term,
		Renderer: pipeline,
		Log:      log,
	})
	game.Use(demoScene{resolution: cfg.RenderOptions().Resolution})

	log.Info("starting demo",
		zap.Int("width", cfg.Renderer.Width),
		zap.Int("height", cfg.Renderer.Height))
	game.Run()
	return nil
}

// demoScene spawns the demo entities at init and moves the bouncer each
// update.
type demoScene struct {
	resolution core.Dimensions
}

// bouncer carries the demo glyph's velocity between frames.
type bouncer struct {
	Velocity core.Point
}

var kindBouncer = core.KindOf[bouncer]()

func (d demoScene) Generate() []engine.Registration {
	return []engine.Registration{
		{Event: engine.EventInit, System: engine.System{
			Name: "demo.spawn",
			Run:  d.spawn,
		}},
		{Event: engine.EventUpdate, System: engine.System{
			Name: "demo.bounce",
			Queries: []engine.Query{
				engine.Select(kindBouncer, component.KindTransform),
			},
			Run: d.bounce,
		}},
		{Event: engine.EventUpdate, System: engine.System{
			Name: "demo.fps",
			Queries: []engine.Query{
				engine.Select(component.KindEngineStats),
				engine.Select(component.KindText),
			},
			Run: updateFPSText,
		}},
	}
}

func (d demoScene) spawn(ctx *engine.Context, _ []engine.Results) {
	// Backdrop band across the middle of the screen.
	for x := 0; x < d.resolution.Width; x++ {
		ctx.Commands.AddEntity(
			&component.Transform{Coords: core.Point{X: x, Y: d.resolution.Height / 2}},
			&component.Renderable{
				Glyph:      ' ',
				Layer:      core.LayerFurthestBackground,
				Background: tcell.ColorNavy,
			},
		)
	}

	ctx.Commands.AddEntity(
		&component.Identity{Id: "demo.bouncer", Name: "Bouncer"},
		&component.Transform{Coords: core.Point{X: 1, Y: 1}},
		&component.Renderable{Glyph: '@', Layer: core.LayerBase, Foreground: tcell.ColorYellow},
		&bouncer{Velocity: core.Point{X: 1, Y: 1}},
	)

	ctx.Commands.AddEntity(&component.Text{
		Value:         "fps: 0",
		Anchor:        component.AnchorTopRight,
		Justification: component.AlignRight,
	})
	ctx.Commands.AddEntity(&component.Text{
		Value:  "esc quits",
		Anchor: component.AnchorBottomLeft,
	})
}

func (d demoScene) bounce(_ *engine.Context, results []engine.Results) {
	for _, res := range results[0] {
		tf := engine.As[component.Transform](res)
		b := engine.As[bouncer](res)

		next := tf.Coords.Add(b.Velocity)
		if next.X < 0 || next.X >= d.resolution.Width {
			b.Velocity.X = -b.Velocity.X
		}
		if next.Y < 0 || next.Y >= d.resolution.Height {
			b.Velocity.Y = -b.Velocity.Y
		}
		tf.Translate(b.Velocity)
	}
}

func updateFPSText(_ *engine.Context, results []engine.Results) {
	stats := engine.As[component.EngineStats](results[0].Only())
	for _, res := range results[1] {
		text := engine.As[component.Text](res)
		if text.Anchor == component.AnchorTopRight {
			text.Value = fmt.Sprintf("fps: %d", stats.FPS)
		}
	}
}
