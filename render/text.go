package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/runegrid/runegrid/component"
	"github.com/runegrid/runegrid/core"
	"github.com/runegrid/runegrid/engine"
)

// drawText paints screen-space Text components over the finished world cells.
// Text ignores cameras: anchors are fixed points of the screen and offsets
// are in screen cells. Later-created text draws over earlier text.
func (c *Compositor) drawText(w *engine.World, grid *Grid) {
	for _, res := range w.Evaluate(engine.Select(component.KindText)) {
		text := engine.As[component.Text](res)
		start := c.anchorPoint(text.Anchor).
			Add(justification(text.Justification, len([]rune(text.Value)))).
			Add(text.Offset)

		for i, r := range []rune(text.Value) {
			pos := core.Point{X: start.X + i, Y: start.Y}
			under, ok := grid.Cell(pos.X, pos.Y)
			if !ok {
				continue
			}
			bg := under.Background
			if text.Background != tcell.ColorDefault {
				bg = text.Background
			}
			grid.Set(pos, Cell{
				Glyph:      r,
				Foreground: resolve(text.Foreground, c.opts.DefaultForeground),
				Background: bg,
			})
		}
	}
}

// anchorPoint maps an anchor to its screen cell for the configured
// resolution.
func (c *Compositor) anchorPoint(a component.Anchor) core.Point {
	right := c.opts.Resolution.Width - 1
	bottom := c.opts.Resolution.Height - 1
	midX := c.opts.Resolution.Width / 2
	midY := c.opts.Resolution.Height / 2

	switch a {
	case component.AnchorTopMiddle:
		return core.Point{X: midX}
	case component.AnchorTopRight:
		return core.Point{X: right}
	case component.AnchorMiddleLeft:
		return core.Point{Y: midY}
	case component.AnchorCenter:
		return core.Point{X: midX, Y: midY}
	case component.AnchorMiddleRight:
		return core.Point{X: right, Y: midY}
	case component.AnchorBottomLeft:
		return core.Point{Y: bottom}
	case component.AnchorBottomMiddle:
		return core.Point{X: midX, Y: bottom}
	case component.AnchorBottomRight:
		return core.Point{X: right, Y: bottom}
	default:
		return core.Point{}
	}
}

// justification shifts the text start so the anchor sits at the left edge,
// middle, or right edge of the rendered string.
func justification(a component.Alignment, runes int) core.Point {
	switch a {
	case component.AlignMiddle:
		return core.Point{X: -(runes / 2)}
	case component.AlignRight:
		return core.Point{X: -(runes - 1)}
	default:
		return core.Point{}
	}
}
