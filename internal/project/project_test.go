package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelworks/lcdgen/internal/classify"
	"github.com/panelworks/lcdgen/internal/layertree"
)

func layer(name string) *layertree.Node {
	return &layertree.Node{
		RawName: name,
		Bounds:  layertree.Bounds{X: 5, Y: 6, Width: 20, Height: 30},
	}
}

func group(name string, children ...*layertree.Node) *layertree.Node {
	return &layertree.Node{RawName: name, IsGroup: true, Children: children}
}

func TestFlattenRecords(t *testing.T) {
	roots := []*layertree.Node{
		layer("Background"),
		group("[T]Panel", layer("Layer 1")),
	}

	placed, collisions := Flatten(roots)
	require.Empty(t, collisions)
	require.Len(t, placed, 2)

	assert.Equal(t, "Background.png", placed[0].Record.Filename)
	assert.Equal(t, "Background", placed[0].Record.Name)
	assert.Equal(t, 5, placed[0].Record.X)
	assert.Equal(t, 20, placed[0].Record.Width)

	rec := placed[1].Record
	assert.Equal(t, "Panel--Layer_1.png", rec.Filename)
	assert.Equal(t, "Layer 1", rec.Name)
	assert.Equal(t, "Layer 1", rec.OriginalName)
	assert.Equal(t, []string{"Panel"}, rec.FolderPath)
}

func TestFlattenSkipsSuppressedAndEmpty(t *testing.T) {
	empty := &layertree.Node{RawName: "invisible"}
	roots := []*layertree.Node{
		group("#Hidden", layer("inside")),
		layer("#AlsoHidden"),
		empty,
		layer("kept"),
	}

	placed, collisions := Flatten(roots)
	require.Empty(t, collisions)
	require.Len(t, placed, 1)
	assert.Equal(t, "kept.png", placed[0].Record.Filename)
}

func TestFlattenDetectsCollisions(t *testing.T) {
	// "Layer 1" and "Layer_1" sanitize to the same filename.
	roots := []*layertree.Node{layer("Layer 1"), layer("Layer_1")}

	placed, collisions := Flatten(roots)
	require.Len(t, collisions, 1)
	assert.Equal(t, "Layer_1.png", collisions[0].Filename)
	assert.Len(t, collisions[0].Paths, 2)
	assert.Error(t, collisions.ErrOrNil())
	// The first claimant still produces a record.
	assert.Len(t, placed, 1)
}

func TestFlattenUniqueFilenamesPerLeaf(t *testing.T) {
	roots := []*layertree.Node{
		group("A", layer("x"), layer("y")),
		group("B", layer("x")),
	}
	placed, collisions := Flatten(roots)
	require.Empty(t, collisions)

	seen := map[string]bool{}
	for _, p := range placed {
		assert.False(t, seen[p.Record.Filename], "duplicate %s", p.Record.Filename)
		seen[p.Record.Filename] = true
	}
	assert.Len(t, placed, 3)
}

func TestManifestAssembly(t *testing.T) {
	segs := make([]*layertree.Node, 7)
	for i := range segs {
		segs[i] = layer(string(rune('a' + i)))
	}
	roots := []*layertree.Node{
		layer("Background"),
		group("[D:7]speed", segs...),
	}

	res, diags := classify.Classify(roots)
	require.Empty(t, diags)
	placed, collisions := Flatten(roots)
	require.Empty(t, collisions)

	doc := &layertree.Document{SourceFile: "demo.psb", Width: 1920, Height: 1080, Layers: roots}
	m := Manifest(doc, placed, res)

	assert.Equal(t, "demo.psb", m.SourceFile)
	assert.Equal(t, 1920, m.DocumentWidth)
	assert.Len(t, m.Layers, 8)

	require.Len(t, m.Widgets, 1)
	w := m.Widgets[0]
	assert.Equal(t, "digit7", w.Type)
	assert.Equal(t, "speed", w.Name)
	assert.False(t, w.HasDecimal)
	assert.Len(t, w.Layers, 7)
	assert.Equal(t, "speed--a.png", w.Layers[0])
}

func TestManifestWidgetShapes(t *testing.T) {
	mkSegs := func(n int) []*layertree.Node {
		out := make([]*layertree.Node, n)
		for i := range out {
			out[i] = layer(string(rune('a'+i%26)) + string(rune('0'+i/26)))
		}
		return out
	}
	roots := []*layertree.Node{
		group("[N]Speed",
			group("[D:7]tens", mkSegs(7)...),
			group("[D:7p]ones", mkSegs(8)...),
		),
		group("[R]battery", layer("bar_1"), layer("bar_2")),
		layer("[T]StatusLight"),
	}

	res, diags := classify.Classify(roots)
	require.Empty(t, diags)
	placed, _ := Flatten(roots)
	m := Manifest(&layertree.Document{SourceFile: "x.psd"}, placed, res)

	require.Len(t, m.Widgets, 3)

	num := m.Widgets[0]
	assert.Equal(t, "number", num.Type)
	assert.True(t, num.HasDecimal)
	require.Len(t, num.Digits, 2)
	assert.Equal(t, 7, num.Digits[0].Segments)
	assert.False(t, num.Digits[0].HasDecimal)
	assert.True(t, num.Digits[1].HasDecimal)
	assert.Len(t, num.Digits[1].Layers, 8)

	rng := m.Widgets[1]
	assert.Equal(t, "range", rng.Type)
	assert.Equal(t, 2, rng.Count)

	tog := m.Widgets[2]
	assert.Equal(t, "toggle", tog.Type)
	assert.Equal(t, []string{"StatusLight.png"}, tog.Layers)
}
