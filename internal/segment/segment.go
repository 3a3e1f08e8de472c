// Package segment holds the fixed segment-display encoding tables. The
// tables are part of the external contract: any downstream renderer must be
// able to reproduce the exact character-to-segment mapping.
package segment

// Alphabet selects between the seven- and sixteen-segment digit layouts.
type Alphabet int

const (
	Seven   Alphabet = 7
	Sixteen Alphabet = 16
)

// Size is the number of base segments, excluding the decimal point.
func (a Alphabet) Size() int { return int(a) }

func (a Alphabet) String() string {
	if a == Sixteen {
		return "16-segment"
	}
	return "7-segment"
}

// PointName is the 17th, independent decimal point segment. It is never part
// of the base encoding tables.
const PointName = "dp"

// LayerOrder returns the fixed positional table: the i-th child layer of a
// digit group fills the i-th name here, regardless of the child's own name.
// The optional trailing point layer is not included.
func (a Alphabet) LayerOrder() []string {
	if a == Sixteen {
		return sixteenOrder[:]
	}
	return sevenOrder[:]
}

// SegmentsFor returns the set of segment names lit for ch, and whether ch is
// part of the alphabet. The returned slice is shared; callers must not
// modify it.
func SegmentsFor(a Alphabet, ch rune) ([]string, bool) {
	if a == Sixteen {
		segs, ok := sixteenTable[ch]
		return segs, ok
	}
	segs, ok := sevenTable[ch]
	return segs, ok
}

// Supported reports whether ch can be displayed on the alphabet.
func Supported(a Alphabet, ch rune) bool {
	_, ok := SegmentsFor(a, ch)
	return ok
}

// Table returns the full encoding table for an alphabet, keyed by character.
func Table(a Alphabet) map[rune][]string {
	src := sevenTable
	if a == Sixteen {
		src = sixteenTable
	}
	out := make(map[rune][]string, len(src))
	for ch, segs := range src {
		out[ch] = append([]string(nil), segs...)
	}
	return out
}
