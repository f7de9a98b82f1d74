package component

import "github.com/runegrid/runegrid/core"

// Key identifies a keyboard key in a backend-independent way.
// Printable keys are their rune value; special keys use negative codes.
type Key int32

const (
	KeyNone Key = -iota - 1
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace Key = ' '
)

// KeyRune maps a printable rune to its Key.
func KeyRune(r rune) Key { return Key(r) }

// Snapshot is one frame's worth of keyboard state as supplied by the input
// collaborator. All three sets are keyed by Key; absent means false.
type Snapshot struct {
	// Down holds keys that transitioned to pressed this frame.
	Down map[Key]bool
	// Pressed holds keys held down during this frame, including those in Down.
	Pressed map[Key]bool
	// Released holds keys that transitioned to released this frame.
	Released map[Key]bool
}

// EmptySnapshot returns a snapshot with no key activity.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Down:     map[Key]bool{},
		Pressed:  map[Key]bool{},
		Released: map[Key]bool{},
	}
}

// Input is the engine-injected singleton exposing per-frame keyboard state.
// System code reads it; only the loop driver replaces the snapshot.
type Input struct {
	snapshot Snapshot
}

// KindInput is the query tag for Input.
var KindInput = core.KindOf[Input]()

// NewInput returns an Input with an empty snapshot.
func NewInput() *Input {
	return &Input{snapshot: EmptySnapshot()}
}

// Refresh replaces the current snapshot. Called once per frame by the loop
// driver, never from system code.
func (in *Input) Refresh(s Snapshot) {
	if s.Down == nil || s.Pressed == nil || s.Released == nil {
		s = EmptySnapshot()
	}
	in.snapshot = s
}

// IsKeyDown reports whether the key transitioned to pressed this frame.
func (in *Input) IsKeyDown(k Key) bool { return in.snapshot.Down[k] }

// IsKeyPressed reports whether the key is held down this frame. True on every
// frame while held; use IsKeyDown for the initial press only.
func (in *Input) IsKeyPressed(k Key) bool { return in.snapshot.Pressed[k] }

// IsKeyUp reports whether the key was released this frame.
func (in *Input) IsKeyUp(k Key) bool { return in.snapshot.Released[k] }

// IsChordPressed reports whether every listed key is currently pressed.
// Keys outside the chord may be pressed as well.
func (in *Input) IsChordPressed(keys ...Key) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !in.snapshot.Pressed[k] {
			return false
		}
	}
	return true
}
