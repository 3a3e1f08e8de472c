package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/lcdgen/internal/layertree"
	"github.com/panelworks/lcdgen/internal/naming"
	"github.com/panelworks/lcdgen/internal/segment"
)

func layer(name string) *layertree.Node {
	return &layertree.Node{
		RawName: name,
		Bounds:  layertree.Bounds{X: 10, Y: 10, Width: 50, Height: 80},
	}
}

func group(name string, children ...*layertree.Node) *layertree.Node {
	return &layertree.Node{RawName: name, IsGroup: true, Children: children}
}

func segments(n int) []*layertree.Node {
	out := make([]*layertree.Node, n)
	for i := range out {
		out[i] = layer(fmt.Sprintf("seg_%d", i))
	}
	return out
}

func TestClassifyDigit7(t *testing.T) {
	res, diags := Classify([]*layertree.Node{group("[D:7]speed", segments(7)...)})
	require.Empty(t, diags)
	require.Len(t, res.Widgets, 1)

	w := res.Widgets[0]
	assert.Equal(t, naming.Digit7, w.Kind)
	assert.Equal(t, "speed", w.Name)
	require.NotNil(t, w.Digit)
	assert.Equal(t, segment.Seven, w.Digit.Alphabet)
	assert.False(t, w.Digit.HasPoint)
	require.Len(t, w.Digit.Layers, 7)
	// Positional: document-order child i fills segment slot i.
	assert.Equal(t, "speed--seg_0.png", w.Digit.Layers[0])
	assert.Equal(t, "speed--seg_6.png", w.Digit.Layers[6])
}

func TestClassifyDigit7WrongChildCount(t *testing.T) {
	for _, n := range []int{6, 8} {
		res, diags := Classify([]*layertree.Node{group("[D:7]speed", segments(n)...)})
		assert.Empty(t, res.Widgets, "%d children", n)
		require.Len(t, diags, 1, "%d children", n)
		assert.Contains(t, diags[0].Error(), "speed")
	}
}

func TestClassifyDigit16WithPoint(t *testing.T) {
	res, diags := Classify([]*layertree.Node{group("[D:16p]display", segments(17)...)})
	require.Empty(t, diags)
	require.Len(t, res.Widgets, 1)

	w := res.Widgets[0]
	assert.Equal(t, naming.Digit16, w.Kind)
	require.NotNil(t, w.Digit)
	assert.True(t, w.Digit.HasPoint)
	assert.Len(t, w.Digit.Layers, 17)
}

func TestClassifyDigitOnLayerFails(t *testing.T) {
	_, diags := Classify([]*layertree.Node{layer("[D:7]flat")})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "must be a group")
}

func TestClassifyToggleLayer(t *testing.T) {
	res, diags := Classify([]*layertree.Node{layer("[T]StatusLight")})
	require.Empty(t, diags)
	require.Len(t, res.Widgets, 1)
	assert.Equal(t, []string{"StatusLight.png"}, res.Widgets[0].Layers)
}

func TestClassifyToggleGroupCollectsDescendants(t *testing.T) {
	root := group("[T]Panel",
		layer("light"),
		group("inner", layer("glow"), layer("#hidden")),
		layer("#off"),
	)
	res, diags := Classify([]*layertree.Node{root})
	require.Empty(t, diags)
	require.Len(t, res.Widgets, 1)
	assert.Equal(t, []string{"Panel--light.png", "Panel--inner--glow.png"}, res.Widgets[0].Layers)
}

func TestClassifyNumber(t *testing.T) {
	root := group("[N]Speed",
		group("[D:7]hundreds", segments(7)...),
		group("[D:7p]tens", segments(8)...),
		group("[D:7]ones", segments(7)...),
	)
	res, diags := Classify([]*layertree.Node{root})
	require.Empty(t, diags)
	require.Len(t, res.Widgets, 1)

	w := res.Widgets[0]
	assert.Equal(t, naming.Number, w.Kind)
	require.Len(t, w.Digits, 3)
	assert.Equal(t, 1, w.PointIndex)
	assert.Equal(t, "hundreds", w.Digits[0].Name)
	assert.True(t, w.Digits[1].HasPoint)
	assert.Equal(t, "Speed--tens--seg_0.png", w.Digits[1].Layers[0])
}

func TestClassifyNumberTwoPointsFails(t *testing.T) {
	root := group("[N]Bad",
		group("[D:7p]a", segments(8)...),
		group("[D:7p]b", segments(8)...),
	)
	res, diags := Classify([]*layertree.Node{root})
	assert.Empty(t, res.Widgets)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "more than one point")
}

func TestClassifyNumberNonDigitChildFails(t *testing.T) {
	root := group("[N]Bad", group("[D:7]ok", segments(7)...), layer("stray"))
	res, diags := Classify([]*layertree.Node{root})
	assert.Empty(t, res.Widgets, "malformed child fails the whole composite")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "not a digit group")
}

func TestClassifyNumberMalformedDigitPropagates(t *testing.T) {
	root := group("[N]Bad",
		group("[D:7]ok", segments(7)...),
		group("[D:7]short", segments(6)...),
	)
	res, diags := Classify([]*layertree.Node{root})
	assert.Empty(t, res.Widgets)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "short")
}

func TestClassifyStringRequires16Segment(t *testing.T) {
	root := group("[S]Message",
		group("[D:16p]char0", segments(17)...),
		group("[D:7]char1", segments(7)...),
	)
	res, diags := Classify([]*layertree.Node{root})
	assert.Empty(t, res.Widgets)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "16-segment")
}

func TestClassifyString(t *testing.T) {
	root := group("[S]Message",
		group("[D:16]char0", segments(16)...),
		group("[D:16p]char1", segments(17)...),
	)
	res, diags := Classify([]*layertree.Node{root})
	require.Empty(t, diags)
	require.Len(t, res.Widgets, 1)
	w := res.Widgets[0]
	assert.Equal(t, naming.String, w.Kind)
	require.Len(t, w.Digits, 2)
	assert.Equal(t, 1, w.PointIndex)
}

func TestClassifyRange(t *testing.T) {
	kids := make([]*layertree.Node, 10)
	for i := range kids {
		kids[i] = layer(fmt.Sprintf("level_%d", i+1))
	}
	res, diags := Classify([]*layertree.Node{group("[R]powerLevel", kids...)})
	require.Empty(t, diags)
	require.Len(t, res.Widgets, 1)

	w := res.Widgets[0]
	assert.Equal(t, naming.Range, w.Kind)
	assert.Equal(t, 10, w.Count)
	assert.Equal(t, "powerLevel--level_1.png", w.Layers[0])
	assert.Equal(t, "powerLevel--level_10.png", w.Layers[9])
}

func TestClassifyRangeGroupMemberFails(t *testing.T) {
	root := group("[R]bad", layer("a"), group("nested", layer("b")))
	res, diags := Classify([]*layertree.Node{root})
	assert.Empty(t, res.Widgets)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Error(), "must be a layer")
}

func TestClassifySuppressedSubtreeIsInvisible(t *testing.T) {
	root := group("#Anything",
		group("[D:7]speed", segments(7)...),
		layer("[T]toggle"),
	)
	res, diags := Classify([]*layertree.Node{root, layer("kept")})
	assert.Empty(t, diags)
	assert.Empty(t, res.Widgets)
}

func TestClassifyCollectsErrorsAcrossSiblings(t *testing.T) {
	roots := []*layertree.Node{
		group("[D:7]bad1", segments(6)...),
		group("[D:7]good", segments(7)...),
		group("[D:7]bad2", segments(8)...),
	}
	res, diags := Classify(roots)
	// The malformed siblings do not stop the good one.
	require.Len(t, res.Widgets, 1)
	assert.Equal(t, "good", res.Widgets[0].Name)
	assert.Len(t, diags, 2)
	assert.Error(t, diags.ErrOrNil())
}
