package render

import (
	"go.uber.org/zap"

	"github.com/runegrid/runegrid/component"
	"github.com/runegrid/runegrid/engine"
)

// Presenter is the physical output collaborator. It receives one finished
// grid per frame; how it draws is outside this package.
type Presenter interface {
	Init() error
	Present(g *Grid) error
	Fini()
}

// Pipeline couples the compositor to a presenter and plugs into the game
// loop as its FrameRenderer. It also acts as a SystemsGenerator so the
// default main camera, when configured, is created through the command queue
// like any other entity.
type Pipeline struct {
	compositor *Compositor
	presenter  Presenter
	log        *zap.Logger
}

// NewPipeline builds the render pipeline. A nil presenter composes frames
// and discards them, which is useful headless and in tests.
func NewPipeline(c *Compositor, p Presenter, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{compositor: c, presenter: p, log: log}
}

// Compositor returns the pipeline's compositor.
func (p *Pipeline) Compositor() *Compositor { return p.compositor }

// RenderFrame composes the current world state and hands the grid to the
// presenter. A nil grid (no main camera) skips the frame entirely.
func (p *Pipeline) RenderFrame(w *engine.World) {
	grid := p.compositor.Compose(w)
	if grid == nil || p.presenter == nil {
		return
	}
	if err := p.presenter.Present(grid); err != nil {
		p.log.Error("present failed", zap.Error(err))
	}
}

// Generate seeds the default main camera at init when the options ask for
// one. The camera sits at the world origin and spans the full resolution.
func (p *Pipeline) Generate() []engine.Registration {
	if !p.compositor.Options().IncludeDefaultCamera {
		return nil
	}
	return []engine.Registration{
		{
			Event: engine.EventInit,
			System: engine.System{
				Name: "render.default_camera",
				Run: func(ctx *engine.Context, _ []engine.Results) {
					ctx.Commands.AddEntity(
						&component.Camera{Main: true},
						&component.Transform{},
						&component.Identity{Id: "camera.main", Name: "Main Camera"},
					)
				},
			},
		},
	}
}
