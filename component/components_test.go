package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/runegrid/runegrid/core"
)

func TestInputSnapshotAccessors(t *testing.T) {
	in := NewInput()

	assert.False(t, in.IsKeyDown(KeyEscape))
	assert.False(t, in.IsKeyPressed(KeySpace))
	assert.False(t, in.IsKeyUp(KeyEnter))

	snap := EmptySnapshot()
	snap.Down[KeyRune('a')] = true
	snap.Pressed[KeyRune('a')] = true
	snap.Pressed[KeyRune('s')] = true // held from an earlier frame
	snap.Released[KeyEscape] = true
	in.Refresh(snap)

	assert.True(t, in.IsKeyDown(KeyRune('a')))
	assert.True(t, in.IsKeyPressed(KeyRune('a')))
	assert.False(t, in.IsKeyDown(KeyRune('s')), "held is not freshly down")
	assert.True(t, in.IsKeyPressed(KeyRune('s')))
	assert.True(t, in.IsKeyUp(KeyEscape))
	assert.False(t, in.IsKeyPressed(KeyEscape))
}

func TestInputChord(t *testing.T) {
	in := NewInput()
	snap := EmptySnapshot()
	snap.Pressed[KeyRune('h')] = true
	snap.Pressed[KeyRune('j')] = true
	in.Refresh(snap)

	assert.True(t, in.IsChordPressed(KeyRune('h'), KeyRune('j')))
	assert.True(t, in.IsChordPressed(KeyRune('h')))
	assert.False(t, in.IsChordPressed(KeyRune('h'), KeyRune('k')))
	assert.False(t, in.IsChordPressed(), "an empty chord never matches")
}

func TestInputRefreshWithNilMaps(t *testing.T) {
	in := NewInput()
	in.Refresh(Snapshot{})

	assert.False(t, in.IsKeyDown(KeyEscape))
	assert.False(t, in.IsKeyPressed(KeySpace))
}

func TestEngineStatsAveragesOverWindow(t *testing.T) {
	stats := &EngineStats{}

	// 100 frames in the first second, 50 in the second.
	elapsed := time.Duration(0)
	for i := 0; i < 100; i++ {
		elapsed += 10 * time.Millisecond
		stats.RecordFrame(elapsed)
	}
	assert.Equal(t, int64(100), stats.FPS)
	assert.Equal(t, int64(100), stats.TotalFrames)

	for i := 0; i < 50; i++ {
		elapsed += 20 * time.Millisecond
		stats.RecordFrame(elapsed)
	}
	assert.Equal(t, int64(75), stats.FPS, "average of the two seconds")
	assert.Equal(t, int64(150), stats.TotalFrames)
}

func TestEngineStatsWindowSlides(t *testing.T) {
	stats := &EngineStats{}

	// Twelve seconds at 10 fps, then two at 100: only the window's ten most
	// recent seconds count.
	elapsed := time.Duration(0)
	for i := 0; i < 120; i++ {
		elapsed += time.Second / 10
		stats.RecordFrame(elapsed)
	}
	assert.Equal(t, int64(10), stats.FPS)

	for i := 0; i < 200; i++ {
		elapsed += time.Second / 100
		stats.RecordFrame(elapsed)
	}
	assert.Equal(t, int64((8*10+2*100)/10), stats.FPS)
}

func TestTimeDeltaSeconds(t *testing.T) {
	tm := &Time{Delta: 16 * time.Millisecond}
	assert.InDelta(t, 0.016, tm.DeltaSeconds(), 1e-9)
}

func TestTransformTranslate(t *testing.T) {
	tf := &Transform{Coords: core.Point{X: 2, Y: 3}}
	tf.Translate(core.Point{X: -1, Y: 4})
	assert.Equal(t, core.Point{X: 1, Y: 7}, tf.Coords)
}

func TestRenderableColorPresence(t *testing.T) {
	r := &Renderable{Glyph: '@'}
	assert.False(t, r.HasForeground())
	assert.False(t, r.HasBackground())
}

func TestKeyRuneMapsPrintables(t *testing.T) {
	assert.Equal(t, KeySpace, KeyRune(' '))
	assert.Equal(t, Key('q'), KeyRune('q'))
	assert.NotEqual(t, KeyEscape, KeyRune('q'))
}
