package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/runegrid/runegrid/component"
)

// keyFromEvent translates a tcell event into the engine's key space.
func keyFromEvent(ev tcell.Event) (component.Key, bool) {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return component.KeyNone, false
	}

	switch keyEv.Key() {
	case tcell.KeyRune:
		return component.KeyRune(keyEv.Rune()), true
	case tcell.KeyEscape:
		return component.KeyEscape, true
	case tcell.KeyEnter:
		return component.KeyEnter, true
	case tcell.KeyTab:
		return component.KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return component.KeyBackspace, true
	case tcell.KeyUp:
		return component.KeyUp, true
	case tcell.KeyDown:
		return component.KeyDown, true
	case tcell.KeyLeft:
		return component.KeyLeft, true
	case tcell.KeyRight:
		return component.KeyRight, true
	default:
		return component.KeyNone, false
	}
}
