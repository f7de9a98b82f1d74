// Package terminal adapts a tcell screen to the engine's output and input
// collaborator interfaces.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/runegrid/runegrid/component"
	"github.com/runegrid/runegrid/render"
)

// Terminal owns one tcell screen and serves both sides of the frame cycle:
// it presents finished grids and supplies per-frame keyboard snapshots.
type Terminal struct {
	screen tcell.Screen

	mu       sync.Mutex
	seen     map[component.Key]bool // keys reported since the last Poll
	prevSeen map[component.Key]bool

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a terminal over a fresh tcell screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a terminal over an existing screen. Tests pass a
// tcell.SimulationScreen here.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:   screen,
		seen:     make(map[component.Key]bool),
		prevSeen: make(map[component.Key]bool),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Screen exposes the underlying tcell screen, mainly for tests.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Init initializes the screen and starts the event pump.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	go t.pumpEvents()
	return nil
}

// Fini stops the event pump and restores the terminal.
func (t *Terminal) Fini() {
	t.stopOnce.Do(func() {
		close(t.stop)
		t.screen.Fini()
		<-t.done
	})
}

// Present draws one finished grid and flips it to the screen. Wide glyphs
// occupy their natural width; the cell shadowed by a wide glyph is skipped so
// tcell does not split it.
func (t *Terminal) Present(g *render.Grid) error {
	skip := false
	g.Each(func(x, y int, c render.Cell) {
		if skip {
			skip = false
			return
		}
		style := tcell.StyleDefault.
			Foreground(c.Foreground).
			Background(c.Background)
		t.screen.SetContent(x, y, c.Glyph, nil, style)
		if runewidth.RuneWidth(c.Glyph) == 2 {
			skip = true
		}
	})
	t.screen.Show()
	return nil
}

// Poll returns the keyboard snapshot accumulated since the previous call.
//
// Terminals report key taps (with autorepeat), not held state, so a key
// counts as down and pressed on every frame in which the terminal delivered
// an event for it, and released on the first frame it goes quiet.
func (t *Terminal) Poll() component.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := component.EmptySnapshot()
	for k := range t.seen {
		snap.Down[k] = true
		snap.Pressed[k] = true
	}
	for k := range t.prevSeen {
		if !t.seen[k] {
			snap.Released[k] = true
		}
	}

	t.prevSeen = t.seen
	t.seen = make(map[component.Key]bool)
	return snap
}

// pumpEvents drains tcell events into the key accumulator until Fini.
func (t *Terminal) pumpEvents() {
	defer close(t.done)
	for {
		select {
		case <-t.stop:
			return
		default:
		}

		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := keyFromEvent(ev)
		if !ok {
			continue
		}
		t.mu.Lock()
		t.seen[key] = true
		t.mu.Unlock()
	}
}
