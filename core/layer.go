package core

import "math"

// Layer is the depth ordinal for render resolution. Within one cell,
// renderables resolve front to back by descending layer value.
type Layer int

const (
	// LayerBase is the default depth for world entities.
	LayerBase Layer = 0

	// LayerFurthestBackground sits behind every other layer.
	LayerFurthestBackground Layer = math.MinInt32

	// LayerFurthestForeground sits in front of every other layer.
	// UI text renders one above this.
	LayerFurthestForeground Layer = math.MaxInt32 - 1
)

// Above returns a layer one step in front of l.
func (l Layer) Above() Layer { return l + 1 }

// Below returns a layer one step behind l.
func (l Layer) Below() Layer { return l - 1 }

// IsAbove reports whether l renders in front of o.
func (l Layer) IsAbove(o Layer) bool { return l > o }

// IsBelow reports whether l renders behind o.
func (l Layer) IsBelow(o Layer) bool { return l < o }
