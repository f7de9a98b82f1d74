package component

import (
	"time"

	"github.com/runegrid/runegrid/core"
)

// fpsWindowSeconds is how many one-second samples the FPS average spans.
const fpsWindowSeconds = 10

// EngineStats is an engine-injected singleton tracking frame-rate health.
// FPS is averaged over the last fpsWindowSeconds completed seconds.
type EngineStats struct {
	FPS         int64
	TotalFrames int64

	windowStart  time.Duration
	windowFrames int64
	samples      []int64
}

// KindEngineStats is the query tag for EngineStats.
var KindEngineStats = core.KindOf[EngineStats]()

// RecordFrame folds one frame at the given elapsed loop time into the stats.
// Called once per frame by the engine's analysis system.
func (s *EngineStats) RecordFrame(elapsed time.Duration) {
	s.TotalFrames++
	s.windowFrames++

	if elapsed-s.windowStart < time.Second {
		return
	}
	s.windowStart = elapsed
	s.samples = append(s.samples, s.windowFrames)
	s.windowFrames = 0
	if len(s.samples) > fpsWindowSeconds {
		s.samples = s.samples[len(s.samples)-fpsWindowSeconds:]
	}

	var sum int64
	for _, c := range s.samples {
		sum += c
	}
	s.FPS = sum / int64(len(s.samples))
}
