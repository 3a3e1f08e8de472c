// Package psdfile adapts the PSB/PSD container decoder to the layer tree
// model. It is the only package that knows about the binary format.
package psdfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oov/psd"

	"github.com/panelworks/lcdgen/internal/layertree"
)

// Reader decodes PSB/PSD documents into layer trees.
type Reader struct {
	// SkipPixels skips per-layer image decoding for structure-only runs
	// (classification without asset extraction).
	SkipPixels bool
}

var _ layertree.Reader = (*Reader)(nil)

// Read opens and decodes the document at path.
func (r *Reader) Read(path string) (*layertree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := psd.Decode(f, &psd.DecodeOptions{
		SkipMergedImage: true,
		SkipLayerImage:  r.SkipPixels,
	})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &layertree.Document{
		SourceFile: filepath.Base(path),
		Width:      img.Config.Rect.Dx(),
		Height:     img.Config.Rect.Dy(),
		Layers:     convert(img.Layer),
	}, nil
}

// convert maps decoded layers to tree nodes. The container stores layers
// bottom-to-top; the tree presents top-to-bottom document order, the order
// the authoring tool shows and the one segment assignment relies on.
func convert(layers []psd.Layer) []*layertree.Node {
	out := make([]*layertree.Node, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		n := &layertree.Node{
			RawName: l.Name,
			Bounds:  layertree.FromRect(l.Rect),
		}
		if l.Folder() {
			n.IsGroup = true
			n.Children = convert(l.Layer)
		} else if l.HasImage() {
			n.Picture = l.Picker
		}
		out = append(out, n)
	}
	return out
}
