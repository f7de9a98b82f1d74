package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/runegrid/runegrid/core"
)

// Options configures the compositor.
//
// Default colors left at tcell.ColorDefault mean "not configured": unset
// renderable colors then fall through to tcell.ColorReset, the terminal's own
// default.
type Options struct {
	Resolution           core.Dimensions
	IncludeDefaultCamera bool
	DefaultForeground    tcell.Color
	DefaultBackground    tcell.Color
}

// Validate rejects malformed resolutions before any rendering starts.
func (o Options) Validate() error {
	if o.Resolution.Width <= 0 || o.Resolution.Height <= 0 {
		return fmt.Errorf("render: screen resolution %dx%d is not positive",
			o.Resolution.Width, o.Resolution.Height)
	}
	return nil
}

// resolve collapses the compositing fallback chain for one color channel:
// the renderable's own color if concrete, else the configured default, else
// the terminal reset color.
func resolve(c, configured tcell.Color) tcell.Color {
	if c != tcell.ColorDefault {
		return c
	}
	if configured != tcell.ColorDefault {
		return configured
	}
	return tcell.ColorReset
}
