package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/runegrid/runegrid/core"
)

// Renderable makes an entity visible on the character grid.
//
// Foreground and Background left at tcell.ColorDefault count as unset, which
// is a distinct state from any concrete color: unset values fall through the
// compositor's default-color chain instead of painting the cell.
type Renderable struct {
	Glyph      rune
	Layer      core.Layer
	Foreground tcell.Color
	Background tcell.Color
}

// KindRenderable is the query tag for Renderable.
var KindRenderable = core.KindOf[Renderable]()

// HasForeground reports whether a concrete foreground color is set.
func (r *Renderable) HasForeground() bool {
	return r.Foreground != tcell.ColorDefault
}

// HasBackground reports whether a concrete background color is set.
func (r *Renderable) HasBackground() bool {
	return r.Background != tcell.ColorDefault
}
