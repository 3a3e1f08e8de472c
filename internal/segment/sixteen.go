package segment

// Sixteen-segment geometry: a1/a2 top halves, b top-right vertical, c
// bottom-right vertical, d1/d2 bottom halves, e bottom-left vertical, f
// top-left vertical, g1/g2 middle halves, i/l middle verticals (top/bottom),
// and the diagonals h (upper-left), j (upper-right), k (lower-left),
// m (lower-right).

// sixteenOrder is the stacking order digit groups use in the source document.
var sixteenOrder = [16]string{
	"a1", "a2", "f", "h", "i", "j", "b", "g1",
	"g2", "e", "k", "l", "m", "c", "d1", "d2",
}

// sixteenTable maps each displayable character to its lit segments:
// uppercase A-Z, digits, and a small punctuation set. Space is the explicit
// blank. Lowercase input is folded before lookup by callers.
var sixteenTable = map[rune][]string{
	'0': {"a1", "a2", "b", "c", "d1", "d2", "e", "f", "j", "k"},
	'1': {"b", "c", "j"},
	'2': {"a1", "a2", "b", "g1", "g2", "e", "d1", "d2"},
	'3': {"a1", "a2", "b", "c", "d1", "d2", "g2"},
	'4': {"f", "g1", "g2", "b", "c"},
	'5': {"a1", "a2", "f", "g1", "g2", "c", "d1", "d2"},
	'6': {"a1", "a2", "f", "e", "d1", "d2", "c", "g1", "g2"},
	'7': {"a1", "a2", "b", "c"},
	'8': {"a1", "a2", "b", "c", "d1", "d2", "e", "f", "g1", "g2"},
	'9': {"a1", "a2", "b", "c", "d1", "d2", "f", "g1", "g2"},

	'A': {"a1", "a2", "b", "c", "e", "f", "g1", "g2"},
	'B': {"a1", "a2", "b", "c", "d1", "d2", "g2", "i", "l"},
	'C': {"a1", "a2", "d1", "d2", "e", "f"},
	'D': {"a1", "a2", "b", "c", "d1", "d2", "i", "l"},
	'E': {"a1", "a2", "d1", "d2", "e", "f", "g1"},
	'F': {"a1", "a2", "e", "f", "g1"},
	'G': {"a1", "a2", "c", "d1", "d2", "e", "f", "g2"},
	'H': {"b", "c", "e", "f", "g1", "g2"},
	'I': {"a1", "a2", "d1", "d2", "i", "l"},
	'J': {"b", "c", "d1", "d2", "e"},
	'K': {"e", "f", "g1", "j", "m"},
	'L': {"d1", "d2", "e", "f"},
	'M': {"b", "c", "e", "f", "h", "j"},
	'N': {"b", "c", "e", "f", "h", "m"},
	'O': {"a1", "a2", "b", "c", "d1", "d2", "e", "f"},
	'P': {"a1", "a2", "b", "e", "f", "g1", "g2"},
	'Q': {"a1", "a2", "b", "c", "d1", "d2", "e", "f", "m"},
	'R': {"a1", "a2", "b", "e", "f", "g1", "g2", "m"},
	'S': {"a1", "a2", "c", "d1", "d2", "f", "g1", "g2"},
	'T': {"a1", "a2", "i", "l"},
	'U': {"b", "c", "d1", "d2", "e", "f"},
	'V': {"e", "f", "j", "k"},
	'W': {"b", "c", "e", "f", "k", "m"},
	'X': {"h", "j", "k", "m"},
	'Y': {"h", "j", "l"},
	'Z': {"a1", "a2", "j", "k", "d1", "d2"},

	' ':  {},
	'-':  {"g1", "g2"},
	'_':  {"d1", "d2"},
	'/':  {"j", "k"},
	'\\': {"h", "m"},
	'=':  {"g1", "g2", "d1", "d2"},
	'+':  {"g1", "g2", "i", "l"},
	'*':  {"g1", "g2", "h", "i", "j", "k", "l", "m"},
	'(':  {"j", "m"},
	')':  {"h", "k"},
	'[':  {"a1", "d1", "e", "f"},
	']':  {"a2", "b", "c", "d2"},
	'\'': {"i"},
	'"':  {"i", "j"},
}
