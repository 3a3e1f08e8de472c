// Package project flattens the classified tree into the serializable
// manifest: one layer record per visible leaf layer plus one widget record
// per classified widget.
package project

import (
	"fmt"
	"strings"

	"github.com/panelworks/lcdgen/api"
	"github.com/panelworks/lcdgen/internal/classify"
	"github.com/panelworks/lcdgen/internal/layertree"
	"github.com/panelworks/lcdgen/internal/naming"
)

// Placed pairs an output record with the tree node that produced it, so the
// asset writer can reach the node's pixels.
type Placed struct {
	Record api.LayerRecord
	Node   *layertree.Node
}

// CollisionError reports two distinct nodes resolving to the same derived
// filename. Output is never silently overwritten.
type CollisionError struct {
	Filename string
	Paths    []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("filename collision on %q: %s", e.Filename, strings.Join(e.Paths, ", "))
}

// Collisions aggregates every collision found in one run.
type Collisions []*CollisionError

func (c Collisions) Error() string {
	msgs := make([]string, len(c))
	for i, e := range c {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d filename collision(s): %s", len(c), strings.Join(msgs, "; "))
}

// ErrOrNil returns the aggregate as an error, or nil when filenames are
// unique.
func (c Collisions) ErrOrNil() error {
	if len(c) == 0 {
		return nil
	}
	return c
}

// Flatten walks the tree in document order and derives one record per
// non-suppressed leaf layer with visible pixels. Suppressed subtrees
// contribute nothing.
func Flatten(roots []*layertree.Node) ([]Placed, Collisions) {
	var placed []Placed
	seen := map[string]string{} // filename -> first origin path
	var collisions Collisions

	_ = layertree.Walk(roots, func(n *layertree.Node, ancestors []*layertree.Node) error {
		tag := naming.Parse(n.RawName)
		if tag.Kind == naming.Suppressed {
			return layertree.SkipChildren
		}
		if n.IsGroup {
			return nil
		}
		if n.Bounds.Empty() {
			return nil
		}

		folder := make([]string, len(ancestors))
		rawPath := make([]string, 0, len(ancestors)+1)
		for i, a := range ancestors {
			folder[i] = naming.Parse(a.RawName).Name
			rawPath = append(rawPath, a.RawName)
		}
		rawPath = append(rawPath, n.RawName)
		origin := strings.Join(rawPath, "/")

		filename := naming.FileName(folder, tag.Name)
		if prev, dup := seen[filename]; dup {
			collisions = append(collisions, &CollisionError{
				Filename: filename,
				Paths:    []string{prev, origin},
			})
			return nil
		}
		seen[filename] = origin

		placed = append(placed, Placed{
			Record: api.LayerRecord{
				Filename:     filename,
				Name:         tag.Name,
				OriginalName: n.RawName,
				FolderPath:   folder,
				X:            n.Bounds.X,
				Y:            n.Bounds.Y,
				Width:        n.Bounds.Width,
				Height:       n.Bounds.Height,
			},
			Node: n,
		})
		return nil
	})
	return placed, collisions
}

// Manifest assembles the full output document from the flattened layers and
// the classifier result.
func Manifest(doc *layertree.Document, placed []Placed, res *classify.Result) *api.Manifest {
	m := &api.Manifest{
		SourceFile:     doc.SourceFile,
		DocumentWidth:  doc.Width,
		DocumentHeight: doc.Height,
	}
	for _, p := range placed {
		m.Layers = append(m.Layers, p.Record)
	}
	for _, w := range res.Widgets {
		m.Widgets = append(m.Widgets, widgetRecord(w))
	}
	return m
}

func widgetRecord(w *classify.Widget) api.WidgetRecord {
	rec := api.WidgetRecord{
		Name: w.Name,
		Type: w.Kind.String(),
	}
	switch {
	case w.Digit != nil:
		rec.HasDecimal = w.Digit.HasPoint
		rec.Layers = w.Digit.Layers
	case len(w.Digits) > 0:
		rec.HasDecimal = w.PointIndex >= 0
		for _, d := range w.Digits {
			rec.Digits = append(rec.Digits, api.DigitRecord{
				Name:       d.Name,
				Segments:   d.Alphabet.Size(),
				HasDecimal: d.HasPoint,
				Layers:     d.Layers,
			})
		}
	default:
		rec.Layers = w.Layers
		rec.Count = w.Count
	}
	return rec
}
