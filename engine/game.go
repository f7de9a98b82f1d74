package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/runegrid/runegrid/component"
)

// State is the loop driver's lifecycle phase.
type State int

const (
	StateNotStarted State = iota
	StateInitializing
	StateRunning
	StateCleaningUp
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateInitializing:
		return "Initializing"
	case StateRunning:
		return "Running"
	case StateCleaningUp:
		return "CleaningUp"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Options is the loop driver's bootstrap configuration.
type Options struct {
	// PressEscapeToQuit injects an update system that issues Quit when the
	// escape key goes down.
	PressEscapeToQuit bool
	// MaxFrameRate throttles Running iterations to a fixed interval measured
	// from each frame's start against the monotonic clock, so a slow frame
	// does not compound delay into the next. Zero runs uncapped.
	MaxFrameRate int
}

// InputSource is the input collaborator: it supplies one keyboard snapshot
// per frame. The engine exposes the snapshot through the injected Input
// component, read-only from system code.
type InputSource interface {
	Poll() component.Snapshot
}

// FrameRenderer is the rendering collaborator invoked once per Running
// iteration after the frame's commands have applied.
type FrameRenderer interface {
	RenderFrame(w *World)
}

// nullInput is the headless input collaborator.
type nullInput struct{}

func (nullInput) Poll() component.Snapshot { return component.EmptySnapshot() }

// Deps are the game's external collaborators. Zero fields get safe defaults:
// monotonic clock, no input, no renderer, no-op logger.
type Deps struct {
	TimeProvider TimeProvider
	Input        InputSource
	Renderer     FrameRenderer
	Log          *zap.Logger
}

// Game orchestrates the frame lifecycle: it owns the world, the scheduler and
// the command queue, fires the reserved events, refreshes the injected
// service components and paces iterations.
type Game struct {
	opts Options

	world     *World
	scheduler *Scheduler
	commands  *Commands
	ctx       *Context

	tp       TimeProvider
	input    InputSource
	renderer FrameRenderer
	log      *zap.Logger

	state State
	sleep func(time.Duration)

	timeEntity  *component.Time
	inputEntity *component.Input
	stats       *component.EngineStats
}

// NewGame assembles a game from options and collaborators.
func NewGame(opts Options, deps Deps) *Game {
	if deps.TimeProvider == nil {
		deps.TimeProvider = NewMonotonicTimeProvider()
	}
	if deps.Input == nil {
		deps.Input = nullInput{}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	world := NewWorld(deps.Log)
	world.MarkSingleton(component.KindInput, component.KindTime, component.KindEngineStats)

	commands := newCommands(world, deps.Log)
	g := &Game{
		opts:      opts,
		world:     world,
		scheduler: NewScheduler(deps.Log),
		commands:  commands,
		tp:        deps.TimeProvider,
		input:     deps.Input,
		renderer:  deps.Renderer,
		log:       deps.Log,
		state:     StateNotStarted,
		sleep:     time.Sleep,
	}
	g.ctx = &Context{World: world, Commands: commands, Log: deps.Log}

	if r, ok := deps.Renderer.(SystemsGenerator); ok {
		g.scheduler.RegisterAll(r)
	}
	g.registerEngineSystems()
	return g
}

// World returns the game's world.
func (g *Game) World() *World { return g.world }

// Scheduler returns the game's scheduler for system registration.
func (g *Game) Scheduler() *Scheduler { return g.scheduler }

// Commands returns the game's command queue.
func (g *Game) Commands() *Commands { return g.commands }

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// Register binds a system to an event, in registration order.
func (g *Game) Register(event string, sys System) {
	g.scheduler.Register(event, sys)
}

// Use registers every system a generator yields.
func (g *Game) Use(gen SystemsGenerator) {
	g.scheduler.RegisterAll(gen)
}

// registerEngineSystems wires the engine's own service systems: seeding of
// the injected singletons at init, frame stats at before_update, and the
// optional escape-quit system at update.
func (g *Game) registerEngineSystems() {
	g.scheduler.Register(EventInit, System{
		Name: "engine.services",
		Run: func(ctx *Context, _ []Results) {
			g.timeEntity = &component.Time{}
			g.inputEntity = component.NewInput()
			g.stats = &component.EngineStats{}
			ctx.Commands.AddEntity(g.timeEntity)
			ctx.Commands.AddEntity(g.inputEntity)
			ctx.Commands.AddEntity(g.stats)
		},
	})

	g.scheduler.Register(EventBeforeUpdate, System{
		Name:    "engine.analysis",
		Queries: []Query{Select(component.KindEngineStats), Select(component.KindTime)},
		Run: func(_ *Context, results []Results) {
			stats := As[component.EngineStats](results[0].Only())
			t := As[component.Time](results[1].Only())
			stats.RecordFrame(t.Elapsed)
		},
	})

	if g.opts.PressEscapeToQuit {
		g.scheduler.Register(EventUpdate, System{
			Name:    "engine.escape_quit",
			Queries: []Query{Select(component.KindInput)},
			Run: func(ctx *Context, results []Results) {
				in := As[component.Input](results[0].Only())
				if in.IsKeyDown(component.KeyEscape) {
					ctx.Commands.Quit()
				}
			},
		})
	}
}

// Run drives the full lifecycle. It returns after cleanup completes on a
// normal Quit. Faults during systems or command application propagate as
// panics and skip cleanup, since post-fault state cannot be trusted.
func (g *Game) Run() {
	if g.state != StateNotStarted {
		panic("engine: game has already run")
	}

	g.state = StateInitializing
	g.log.Info("game initializing")
	g.scheduler.Fire(EventInit, g.ctx)
	g.scheduler.Fire(EventAfterInit, g.ctx)

	g.state = StateRunning
	g.log.Info("game running", zap.Int("max_frame_rate", g.opts.MaxFrameRate))
	loopStart := g.tp.Now()
	lastFrame := loopStart

	for {
		frameStart := g.tp.Now()
		g.refreshServices(frameStart, loopStart, lastFrame)
		lastFrame = frameStart

		g.scheduler.Fire(EventBeforeUpdate, g.ctx)
		g.scheduler.Fire(EventUpdate, g.ctx)
		g.scheduler.Fire(EventAfterUpdate, g.ctx)

		if g.renderer != nil {
			g.renderer.RenderFrame(g.world)
		}

		if g.commands.QuitRequested() {
			break
		}
		g.throttle(frameStart)
	}

	g.state = StateCleaningUp
	g.log.Info("game cleaning up")
	g.scheduler.Fire(EventCleanup, g.ctx)

	g.state = StateStopped
	g.log.Info("game stopped")
}

// refreshServices updates the injected Time and Input components for the
// frame about to run. All systems in the frame observe the same snapshot.
func (g *Game) refreshServices(frameStart, loopStart, lastFrame time.Time) {
	if g.timeEntity != nil {
		g.timeEntity.Delta = frameStart.Sub(lastFrame)
		g.timeEntity.Elapsed = frameStart.Sub(loopStart)
		g.timeEntity.Frame++
	}
	if g.inputEntity != nil {
		g.inputEntity.Refresh(g.input.Poll())
	}
}

// throttle holds the loop to the configured frame interval, measured from the
// frame's start so slow frames do not push later ones.
func (g *Game) throttle(frameStart time.Time) {
	if g.opts.MaxFrameRate <= 0 {
		return
	}
	interval := time.Second / time.Duration(g.opts.MaxFrameRate)
	deadline := frameStart.Add(interval)
	if now := g.tp.Now(); now.Before(deadline) {
		g.sleep(deadline.Sub(now))
	}
}
