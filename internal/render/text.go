package render

import (
	"unicode"

	"github.com/panelworks/lcdgen/internal/classify"
	"github.com/panelworks/lcdgen/internal/segment"
)

// Text maps an input string onto the digit slots of a String widget. A '.'
// does not consume a slot of its own: it lights the decimal point of the
// previous slot when that slot's digit carries one, and is a value error
// otherwise. Lowercase letters are folded to uppercase before lookup.
func Text(name string, digits []classify.Digit, input string) ([]Slot, error) {
	slots := make([]Slot, len(digits))
	for i := range slots {
		slots[i].Char = ' '
	}

	next := 0
	for _, ch := range input {
		if ch == '.' {
			if next == 0 {
				return nil, valueErr(name, 0, '.', "leading '.' has no preceding slot to merge into")
			}
			prev := next - 1
			if !digits[prev].HasPoint {
				return nil, valueErr(name, prev, '.', "slot cannot absorb '.': digit %q has no decimal point", digits[prev].Name)
			}
			if slots[prev].Point {
				return nil, valueErr(name, prev, '.', "slot already shows a decimal point")
			}
			slots[prev].Point = true
			continue
		}
		ch = unicode.ToUpper(ch)
		if next >= len(digits) {
			return nil, valueErr(name, len(digits)-1, ch, "text overflows %d slot(s)", len(digits))
		}
		if !segment.Supported(digits[next].Alphabet, ch) {
			return nil, valueErr(name, next, ch, "character %q is not in the %s alphabet", ch, digits[next].Alphabet)
		}
		slots[next].Char = ch
		next++
	}
	return slots, nil
}
