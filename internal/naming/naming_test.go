package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Prefixes(t *testing.T) {
	tests := []struct {
		raw      string
		kind     Kind
		hasPoint bool
		name     string
	}{
		{"Background", None, false, "Background"},
		{"#Guides", Suppressed, false, "Guides"},
		{"[T]StatusLight", Toggle, false, "StatusLight"},
		{"[D:7]speed", Digit7, false, "speed"},
		{"[D:7p]temperature", Digit7, true, "temperature"},
		{"[D:16]display", Digit16, false, "display"},
		{"[D:16p]temp", Digit16, true, "temp"},
		{"[N]Speed", Number, false, "Speed"},
		{"[S]Message", String, false, "Message"},
		{"[R]powerLevel", Range, false, "powerLevel"},
		// Anonymous digits are allowed.
		{"[D:7]", Digit7, false, ""},
		// Unrecognized bracket content is ordinary text.
		{"[X]Mystery", None, false, "[X]Mystery"},
		// Matching is case-sensitive and anchored.
		{"[t]lower", None, false, "[t]lower"},
		{"prefix [T]inner", None, false, "prefix [T]inner"},
	}
	for _, tt := range tests {
		tag := Parse(tt.raw)
		assert.Equal(t, tt.kind, tag.Kind, "kind of %q", tt.raw)
		assert.Equal(t, tt.hasPoint, tag.HasPoint, "point of %q", tt.raw)
		assert.Equal(t, tt.name, tag.Name, "name of %q", tt.raw)
	}
}

func TestParse_SuppressionWinsOverTags(t *testing.T) {
	tag := Parse("#[T]Hidden")
	assert.Equal(t, Suppressed, tag.Kind)
	assert.Equal(t, "[T]Hidden", tag.Name)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Layer_1", Sanitize("Layer 1"))
	assert.Equal(t, "Special_Char_", Sanitize("Special/Char!"))
	assert.Equal(t, "a-b_c", Sanitize("a-b_c"))
	assert.Equal(t, "trimmed", Sanitize("  trimmed  "))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Background.png", FileName(nil, "Background"))
	assert.Equal(t, "Smo--Mo--Layer_1.png", FileName([]string{"Smo", "Mo"}, "Layer 1"))
	assert.Equal(t, "Folder--Special_Char_.png", FileName([]string{"Folder"}, "Special/Char!"))
}
