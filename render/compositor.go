package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/runegrid/runegrid/component"
	"github.com/runegrid/runegrid/core"
	"github.com/runegrid/runegrid/engine"
)

// Compositor resolves one glyph, one foreground and one background per
// visible cell from the world's Renderable+Transform entities, viewed through
// the single main camera.
type Compositor struct {
	opts Options
	log  *zap.Logger

	// warnedCamera latches the missing/duplicated camera warning so a
	// camera-less run logs once per streak instead of every frame.
	warnedCamera bool
}

// NewCompositor validates options and builds a compositor. A nil logger
// defaults to no-op.
func NewCompositor(opts Options, log *zap.Logger) (*Compositor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Compositor{opts: opts, log: log}, nil
}

// Options returns the compositor's configuration.
func (c *Compositor) Options() Options { return c.opts }

// stackEntry is one renderable landing on a cell, tagged with its registry
// order for stable front-to-back sorting within a layer.
type stackEntry struct {
	r     *component.Renderable
	order int
}

// Compose renders the world into a fresh grid. It returns nil when no frame
// can be produced, which happens exactly when the world does not hold exactly
// one main camera; the check runs once per frame, never mid-grid.
func (c *Compositor) Compose(w *engine.World) *Grid {
	origin, viewport, ok := c.mainViewport(w)
	if !ok {
		return nil
	}

	blank := Cell{
		Glyph:      ' ',
		Foreground: resolve(tcell.ColorDefault, c.opts.DefaultForeground),
		Background: resolve(tcell.ColorDefault, c.opts.DefaultBackground),
	}
	grid := NewGrid(c.opts.Resolution, blank)

	stacks := make(map[core.Point][]stackEntry)
	results := w.Evaluate(engine.Select(component.KindRenderable, component.KindTransform))
	for i, res := range results {
		tf := engine.As[component.Transform](res)
		rend := engine.As[component.Renderable](res)

		screen := tf.Coords.Sub(origin)
		if !viewport.Contains(screen) || !c.opts.Resolution.Contains(screen) {
			continue
		}
		stacks[screen] = append(stacks[screen], stackEntry{r: rend, order: i})
	}

	for pos, stack := range stacks {
		grid.Set(pos, c.resolveCell(stack, blank))
	}

	c.drawText(w, grid)
	return grid
}

// mainViewport locates the single main camera and returns the world position
// of the viewport's top-left cell plus the viewport extent.
func (c *Compositor) mainViewport(w *engine.World) (core.Point, core.Dimensions, bool) {
	var (
		found  int
		origin core.Point
		size   core.Dimensions
	)
	for _, res := range w.Evaluate(engine.Select(component.KindCamera, component.KindTransform)) {
		cam := engine.As[component.Camera](res)
		if !cam.Main {
			continue
		}
		found++
		origin = engine.As[component.Transform](res).Coords
		size = cam.Size
	}

	if found != 1 {
		if !c.warnedCamera {
			c.log.Warn("frame skipped: world needs exactly one main camera",
				zap.Int("main_cameras", found))
			c.warnedCamera = true
		}
		return core.Point{}, core.Dimensions{}, false
	}
	c.warnedCamera = false

	if size.IsZero() {
		size = c.opts.Resolution
	}
	return origin, size, true
}

// resolveCell runs the per-cell resolution algorithm over one stack of
// renderables:
//
//   - order front to back by descending layer, registry order breaking ties
//   - glyph and foreground come from the front-most renderable, the
//     foreground falling through the default chain when unset
//   - background comes from the first concrete background scanning front to
//     back, so a colorless glyph blends with a colored object behind it
//     instead of blanking the cell
func (c *Compositor) resolveCell(stack []stackEntry, blank Cell) Cell {
	sort.SliceStable(stack, func(i, j int) bool {
		return stack[i].r.Layer.IsAbove(stack[j].r.Layer)
	})

	front := stack[0].r
	cell := Cell{
		Glyph:      front.Glyph,
		Foreground: resolve(front.Foreground, c.opts.DefaultForeground),
		Background: blank.Background,
	}
	for _, entry := range stack {
		if entry.r.HasBackground() {
			cell.Background = resolve(entry.r.Background, c.opts.DefaultBackground)
			break
		}
	}
	return cell
}
