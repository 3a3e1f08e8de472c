// Package naming implements the layer naming grammar: an optional widget
// prefix tag followed by a display name, plus filename derivation rules.
package naming

import "strings"

// Kind identifies the widget role a prefix assigns to a node.
type Kind int

const (
	None Kind = iota
	Suppressed
	Toggle
	Digit7
	Digit16
	Number
	String
	Range
)

func (k Kind) String() string {
	switch k {
	case Suppressed:
		return "suppressed"
	case Toggle:
		return "toggle"
	case Digit7:
		return "digit7"
	case Digit16:
		return "digit16"
	case Number:
		return "number"
	case String:
		return "string"
	case Range:
		return "range"
	default:
		return "none"
	}
}

// Tag is the parse result for one raw layer name.
type Tag struct {
	Kind Kind
	// HasPoint is set for [D:7p] and [D:16p] digits that carry a trailing
	// decimal point layer.
	HasPoint bool
	// Name is the display name: the raw name with the prefix stripped.
	// May be empty for anonymous digits.
	Name string
}

// bracket prefixes in priority order. '#' is checked before any of these.
var prefixes = []struct {
	lit      string
	kind     Kind
	hasPoint bool
}{
	{"[T]", Toggle, false},
	{"[D:7p]", Digit7, true},
	{"[D:7]", Digit7, false},
	{"[D:16p]", Digit16, true},
	{"[D:16]", Digit16, false},
	{"[N]", Number, false},
	{"[S]", String, false},
	{"[R]", Range, false},
}

// Parse tokenizes a raw layer name. Matching is case-sensitive and anchored
// at the start; the first matching prefix wins. Unrecognized bracket content
// is ordinary text and stays part of the display name.
func Parse(raw string) Tag {
	if strings.HasPrefix(raw, "#") {
		return Tag{Kind: Suppressed, Name: raw[1:]}
	}
	for _, p := range prefixes {
		if strings.HasPrefix(raw, p.lit) {
			return Tag{Kind: p.kind, HasPoint: p.hasPoint, Name: raw[len(p.lit):]}
		}
	}
	return Tag{Kind: None, Name: raw}
}

// Separator joins folder path entries and the display name in derived
// filenames. Part of the external contract.
const Separator = "--"

// Sanitize maps a display name to a filesystem-safe form: alphanumerics,
// '-' and '_' survive, anything else becomes '_', spaces collapse to '_'.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}

// FileName derives the output asset name for a layer from its ancestor
// display names and its own display name.
func FileName(folder []string, display string) string {
	parts := make([]string, 0, len(folder)+1)
	for _, f := range folder {
		parts = append(parts, Sanitize(f))
	}
	parts = append(parts, Sanitize(display))
	return strings.Join(parts, Separator) + ".png"
}
