// Package render encodes concrete values onto classified widgets: it decides
// which character each digit slot shows and which segments light up. All
// failures here are value errors: the widget is well-formed, the requested
// value just cannot be displayed within its fixed geometry.
package render

import (
	"fmt"

	"github.com/panelworks/lcdgen/internal/segment"
)

// Slot is the render state of one digit position.
type Slot struct {
	Char  rune
	Point bool
}

// Segments resolves the slot to lit segment names, excluding the point.
func (s Slot) Segments(a segment.Alphabet) []string {
	segs, _ := segment.SegmentsFor(a, s.Char)
	return segs
}

// ValueError reports a value that cannot be encoded under a widget's fixed
// slot geometry. Slot is -1 when no single slot is at fault.
type ValueError struct {
	Widget string
	Slot   int
	Char   rune
	Msg    string
}

func (e *ValueError) Error() string {
	if e.Slot >= 0 {
		return fmt.Sprintf("widget %q slot %d: %s", e.Widget, e.Slot, e.Msg)
	}
	return fmt.Sprintf("widget %q: %s", e.Widget, e.Msg)
}

func valueErr(widget string, slot int, ch rune, format string, args ...any) *ValueError {
	return &ValueError{Widget: widget, Slot: slot, Char: ch, Msg: fmt.Sprintf(format, args...)}
}
