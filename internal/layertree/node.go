// Package layertree holds the in-memory model of a layered image document.
// The tree is built once per run by a document reader and is read-only
// afterwards; classification and projection only ever walk it.
package layertree

import "image"

// Bounds is a document-space rectangle.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rectangle covers no pixels. Layers with empty
// bounds are excluded from output.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// FromRect converts a stdlib rectangle.
func FromRect(r image.Rectangle) Bounds {
	return Bounds{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Node is one layer or group. Children are in document order (top to bottom
// as shown in the authoring tool); that order is authoritative for digit
// segment assignment.
type Node struct {
	RawName  string
	IsGroup  bool
	Bounds   Bounds
	Children []*Node

	// Picture holds the layer's pixels when the reader decoded them.
	// Groups and structure-only runs leave it nil.
	Picture image.Image
}

// Document is the reader's output: the layer tree plus canvas geometry.
type Document struct {
	SourceFile string
	Width      int
	Height     int
	Layers     []*Node
}

// Reader abstracts the binary container format. The model makes no
// assumptions about how nodes were decoded.
type Reader interface {
	Read(path string) (*Document, error)
}
