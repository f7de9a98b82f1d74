package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/runegrid/runegrid/core"
)

// Anchor names a fixed point of the screen that UI text hangs from.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopMiddle
	AnchorTopRight
	AnchorMiddleLeft
	AnchorCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomMiddle
	AnchorBottomRight
)

// Alignment controls how text extends from its anchor point.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignMiddle
	AlignRight
)

// Text is screen-space UI text drawn above all world renderables.
// It ignores cameras entirely; Offset displaces the text from its anchor in
// screen cells. Colors follow the same unset semantics as Renderable.
type Text struct {
	Value         string
	Anchor        Anchor
	Justification Alignment
	Offset        core.Point
	Foreground    tcell.Color
	Background    tcell.Color
}

// KindText is the query tag for Text.
var KindText = core.KindOf[Text]()
