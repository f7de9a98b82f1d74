package component

import (
	"time"

	"github.com/runegrid/runegrid/core"
)

// Time is the engine-injected singleton exposing frame timing.
// Refreshed by the loop driver at the top of every Running iteration.
type Time struct {
	// Delta is the wall time elapsed since the previous frame started.
	Delta time.Duration
	// Elapsed is the wall time since the loop entered Running.
	Elapsed time.Duration
	// Frame counts Running iterations, starting at 1 for the first frame.
	Frame int64
}

// KindTime is the query tag for Time.
var KindTime = core.KindOf[Time]()

// DeltaSeconds returns the frame delta as seconds, convenient for movement
// arithmetic.
func (t *Time) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}
