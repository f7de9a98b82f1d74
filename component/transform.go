package component

import "github.com/runegrid/runegrid/core"

// Transform places an entity at integer world coordinates.
// Required on any entity that should be rendered.
type Transform struct {
	Coords core.Point
}

// KindTransform is the query tag for Transform.
var KindTransform = core.KindOf[Transform]()

// Translate moves the transform by the given delta.
func (t *Transform) Translate(d core.Point) {
	t.Coords = t.Coords.Add(d)
}
