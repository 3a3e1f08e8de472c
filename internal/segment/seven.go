package segment

// Seven-segment geometry: A top, B top-right, C bottom-right, D bottom,
// E bottom-left, F top-left, G middle.

// sevenOrder is the stacking order digit groups use in the source document.
var sevenOrder = [7]string{"A", "F", "B", "G", "E", "C", "D"}

// sevenTable maps each displayable character to its lit segments. Space is
// the explicit blank.
var sevenTable = map[rune][]string{
	'0': {"A", "B", "C", "D", "E", "F"},
	'1': {"B", "C"},
	'2': {"A", "B", "G", "E", "D"},
	'3': {"A", "B", "G", "C", "D"},
	'4': {"F", "G", "B", "C"},
	'5': {"A", "F", "G", "C", "D"},
	'6': {"A", "F", "G", "E", "C", "D"},
	'7': {"A", "B", "C"},
	'8': {"A", "B", "C", "D", "E", "F", "G"},
	'9': {"A", "B", "C", "D", "F", "G"},
	' ': {},
}
