package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/component"
	"github.com/runegrid/runegrid/core"
)

// scriptedInput replays one snapshot per frame, then reports nothing pressed.
type scriptedInput struct {
	frames []component.Snapshot
	cursor int
}

func (s *scriptedInput) Poll() component.Snapshot {
	if s.cursor >= len(s.frames) {
		return component.EmptySnapshot()
	}
	snap := s.frames[s.cursor]
	s.cursor++
	return snap
}

func pressed(keys ...component.Key) component.Snapshot {
	snap := component.EmptySnapshot()
	for _, k := range keys {
		snap.Down[k] = true
		snap.Pressed[k] = true
	}
	return snap
}

// countingRenderer records how many frames were presented.
type countingRenderer struct {
	frames int
}

func (r *countingRenderer) RenderFrame(*World) { r.frames++ }

func TestGameLifecycle(t *testing.T) {
	game := NewGame(Options{}, Deps{
		TimeProvider: NewMockTimeProvider(time.Unix(0, 0)),
	})

	var fired []string
	record := func(name string) System {
		return System{Name: name, Run: func(ctx *Context, _ []Results) {
			fired = append(fired, name)
		}}
	}
	game.Register(EventInit, record("init"))
	game.Register(EventAfterInit, record("after_init"))
	game.Register(EventUpdate, System{
		Name: "quit-on-second-update",
		Run: func(ctx *Context, _ []Results) {
			fired = append(fired, "update")
			if countOf(fired, "update") == 2 {
				ctx.Commands.Quit()
			}
		},
	})
	game.Register(EventCleanup, record("cleanup"))

	require.Equal(t, StateNotStarted, game.State())
	game.Run()

	assert.Equal(t, []string{"init", "after_init", "update", "update", "cleanup"}, fired)
	assert.Equal(t, StateStopped, game.State())
}

func countOf(fired []string, name string) int {
	n := 0
	for _, f := range fired {
		if f == name {
			n++
		}
	}
	return n
}

func TestGameQuitStillAppliesFrameCommands(t *testing.T) {
	game := NewGame(Options{}, Deps{
		TimeProvider: NewMockTimeProvider(time.Unix(0, 0)),
	})

	var spawned core.Entity
	game.Register(EventUpdate, System{
		Run: func(ctx *Context, _ []Results) {
			ctx.Commands.Quit()
			spawned = ctx.Commands.AddEntity(&posComponent{X: 5})
		},
	})

	game.Run()

	assert.True(t, game.World().Alive(spawned))
	assert.Equal(t, 5, MustComponent[posComponent](game.World(), spawned).X)
}

func TestGameRunPanicsWhenReused(t *testing.T) {
	game := NewGame(Options{}, Deps{
		TimeProvider: NewMockTimeProvider(time.Unix(0, 0)),
	})
	game.Register(EventUpdate, System{Run: func(ctx *Context, _ []Results) {
		ctx.Commands.Quit()
	}})

	game.Run()
	assert.Panics(t, func() {
		game.Run()
	})
}

func TestGameAfterInitCommandsVisibleToFirstUpdate(t *testing.T) {
	game := NewGame(Options{}, Deps{
		TimeProvider: NewMockTimeProvider(time.Unix(0, 0)),
	})

	game.Register(EventAfterInit, System{
		Run: func(ctx *Context, _ []Results) {
			ctx.Commands.AddEntity(&tagComponent{})
		},
	})

	var visible int
	game.Register(EventUpdate, System{
		Queries: []Query{Select(kindTag)},
		Run: func(ctx *Context, results []Results) {
			visible = len(results[0])
			ctx.Commands.Quit()
		},
	})

	game.Run()
	assert.Equal(t, 1, visible)
}

func TestGameEscapeQuitOption(t *testing.T) {
	input := &scriptedInput{frames: []component.Snapshot{
		component.EmptySnapshot(),
		pressed(component.KeyEscape),
	}}
	game := NewGame(Options{PressEscapeToQuit: true}, Deps{
		TimeProvider: NewMockTimeProvider(time.Unix(0, 0)),
		Input:        input,
	})

	updates := 0
	game.Register(EventUpdate, System{Run: func(ctx *Context, _ []Results) {
		updates++
	}})

	game.Run()

	assert.Equal(t, 2, updates, "quits on the frame escape goes down")
	assert.Equal(t, StateStopped, game.State())
}

func TestGameRefreshesTimeAndInputPerFrame(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(100, 0))
	input := &scriptedInput{frames: []component.Snapshot{
		pressed(component.KeyRune('x')),
	}}
	game := NewGame(Options{}, Deps{TimeProvider: tp, Input: input})

	type frameSample struct {
		delta   time.Duration
		elapsed time.Duration
		frame   int64
		xDown   bool
	}
	var samples []frameSample

	game.Register(EventUpdate, System{
		Queries: []Query{Select(component.KindTime), Select(component.KindInput)},
		Run: func(ctx *Context, results []Results) {
			tm := As[component.Time](results[0].Only())
			in := As[component.Input](results[1].Only())
			samples = append(samples, frameSample{
				delta:   tm.Delta,
				elapsed: tm.Elapsed,
				frame:   tm.Frame,
				xDown:   in.IsKeyDown(component.KeyRune('x')),
			})
			tp.Advance(16 * time.Millisecond)
			if len(samples) == 2 {
				ctx.Commands.Quit()
			}
		},
	})

	game.Run()

	require.Len(t, samples, 2)
	assert.Equal(t, frameSample{delta: 0, elapsed: 0, frame: 1, xDown: true}, samples[0])
	assert.Equal(t, frameSample{
		delta:   16 * time.Millisecond,
		elapsed: 16 * time.Millisecond,
		frame:   2,
		xDown:   false,
	}, samples[1])
}

func TestGameThrottlesToMaxFrameRate(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(0, 0))
	game := NewGame(Options{MaxFrameRate: 50}, Deps{TimeProvider: tp})

	var slept []time.Duration
	game.sleep = func(d time.Duration) {
		slept = append(slept, d)
		tp.Advance(d)
	}

	frames := 0
	game.Register(EventUpdate, System{Run: func(ctx *Context, _ []Results) {
		frames++
		tp.Advance(5 * time.Millisecond) // simulated frame work
		if frames == 3 {
			ctx.Commands.Quit()
		}
	}})

	game.Run()

	// 50 fps means a 20ms interval; each frame spent 5ms, so the loop
	// sleeps the remaining 15ms. The quit frame never throttles.
	require.Len(t, slept, 2)
	assert.Equal(t, 15*time.Millisecond, slept[0])
	assert.Equal(t, 15*time.Millisecond, slept[1])
}

func TestGameUncappedNeverSleeps(t *testing.T) {
	tp := NewMockTimeProvider(time.Unix(0, 0))
	game := NewGame(Options{}, Deps{TimeProvider: tp})

	game.sleep = func(time.Duration) {
		t.Fatal("uncapped loop must not sleep")
	}

	frames := 0
	game.Register(EventUpdate, System{Run: func(ctx *Context, _ []Results) {
		frames++
		if frames == 3 {
			ctx.Commands.Quit()
		}
	}})

	game.Run()
	assert.Equal(t, 3, frames)
}

func TestGameCallsRendererOncePerFrame(t *testing.T) {
	renderer := &countingRenderer{}
	game := NewGame(Options{}, Deps{
		TimeProvider: NewMockTimeProvider(time.Unix(0, 0)),
		Renderer:     renderer,
	})

	frames := 0
	game.Register(EventUpdate, System{Run: func(ctx *Context, _ []Results) {
		frames++
		if frames == 4 {
			ctx.Commands.Quit()
		}
	}})

	game.Run()
	assert.Equal(t, 4, renderer.frames)
}

func TestGameSeedsServiceSingletons(t *testing.T) {
	game := NewGame(Options{}, Deps{
		TimeProvider: NewMockTimeProvider(time.Unix(0, 0)),
	})
	game.Register(EventUpdate, System{Run: func(ctx *Context, _ []Results) {
		ctx.Commands.Quit()
	}})

	game.Run()

	w := game.World()
	assert.Len(t, w.Evaluate(Select(component.KindTime)), 1)
	assert.Len(t, w.Evaluate(Select(component.KindInput)), 1)
	assert.Len(t, w.Evaluate(Select(component.KindEngineStats)), 1)
}
