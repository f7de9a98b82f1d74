package component

import "github.com/runegrid/runegrid/core"

// Camera marks a Transform-bearing entity as a viewport onto the world.
// The camera's transform coordinates are the world position of the viewport's
// top-left cell. Exactly one camera must have Main set for rendering to
// produce output.
//
// Size may be left zero, in which case the viewport extent is the configured
// screen resolution.
type Camera struct {
	Main bool
	Size core.Dimensions
}

// KindCamera is the query tag for Camera.
var KindCamera = core.KindOf[Camera]()
