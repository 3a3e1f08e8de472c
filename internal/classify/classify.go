// Package classify walks the layer tree and assigns widget roles based on
// the naming grammar. Structural validation failures are collected per node;
// one malformed group does not stop classification of its siblings.
package classify

import (
	"fmt"

	"github.com/panelworks/lcdgen/internal/layertree"
	"github.com/panelworks/lcdgen/internal/naming"
	"github.com/panelworks/lcdgen/internal/segment"
)

// Digit is one classified digit group: an ordered mapping from segment slots
// to layer filenames. When HasPoint is set the final entry in Layers is the
// decimal point layer.
type Digit struct {
	Name     string
	Alphabet segment.Alphabet
	HasPoint bool
	Layers   []string
}

// Widget is the classified, resolved unit handed to output projection.
// Which fields are populated depends on Kind.
type Widget struct {
	Kind naming.Kind
	Name string

	// Layers holds member filenames for Toggle and Range widgets.
	Layers []string

	// Digit is set for standalone Digit7/Digit16 widgets.
	Digit *Digit

	// Digits holds the ordered digit slots of Number and String widgets,
	// most significant first. PointIndex is the slot whose digit carries
	// the decimal point, or -1.
	Digits     []Digit
	PointIndex int

	// Count is the Range member total.
	Count int
}

// Result is the classifier output: widgets in document order.
type Result struct {
	Widgets []*Widget
}

type classifier struct {
	widgets []*Widget
	diags   Diagnostics
}

// Classify traverses the tree top-down, pruning suppressed subtrees first,
// and builds widget skeletons for every tagged node. All structural errors
// are aggregated and returned alongside the partial result.
func Classify(roots []*layertree.Node) (*Result, Diagnostics) {
	c := &classifier{}
	err := layertree.Walk(roots, func(n *layertree.Node, ancestors []*layertree.Node) error {
		tag := naming.Parse(n.RawName)
		if tag.Kind == naming.Suppressed {
			return layertree.SkipChildren
		}
		path := displayPath(ancestors)
		switch tag.Kind {
		case naming.Toggle:
			c.toggle(n, tag, path)
			return nil // nested tags inside a toggle group still classify
		case naming.Digit7, naming.Digit16:
			if d, ok := c.digit(n, tag, path); ok {
				c.widgets = append(c.widgets, &Widget{Kind: tag.Kind, Name: tag.Name, Digit: d})
			}
			return layertree.SkipChildren
		case naming.Number, naming.String:
			c.composite(n, tag, path)
			return layertree.SkipChildren
		case naming.Range:
			c.ranged(n, tag, path)
			return layertree.SkipChildren
		default:
			return nil
		}
	})
	if err != nil {
		// Only the depth guard can trip here; report it against the root.
		c.fail(nil, "(root)", "%s", err.Error())
	}
	return &Result{Widgets: c.widgets}, c.diags
}

func (c *classifier) fail(path []string, name, format string, args ...any) {
	full := append(append([]string{}, path...), name)
	c.diags = append(c.diags, &StructuralError{Path: full, Msg: fmt.Sprintf(format, args...)})
}

// toggle builds a Toggle widget. On a layer the member set is that single
// layer; on a group it is every non-suppressed descendant layer in document
// order.
func (c *classifier) toggle(n *layertree.Node, tag naming.Tag, path []string) {
	w := &Widget{Kind: naming.Toggle, Name: tag.Name}
	if !n.IsGroup {
		if !n.Bounds.Empty() {
			w.Layers = append(w.Layers, naming.FileName(path, tag.Name))
		}
	} else {
		base := append(append([]string{}, path...), tag.Name)
		w.Layers = collectLeaves(n.Children, base)
	}
	c.widgets = append(c.widgets, w)
}

// digit validates a digit group and maps its children onto segment slots
// positionally: child i fills the i-th name of the alphabet's layer table,
// and the trailing child is the point layer when the tag declares one.
func (c *classifier) digit(n *layertree.Node, tag naming.Tag, path []string) (*Digit, bool) {
	alpha := segment.Seven
	if tag.Kind == naming.Digit16 {
		alpha = segment.Sixteen
	}
	if !n.IsGroup {
		c.fail(path, tag.Name, "%s widget must be a group", alpha)
		return nil, false
	}

	children := visibleChildren(n)
	want := alpha.Size()
	if tag.HasPoint {
		want++
	}
	if len(children) != want {
		c.fail(path, tag.Name, "%s group needs exactly %d child layers, found %d", alpha, want, len(children))
		return nil, false
	}

	base := append(append([]string{}, path...), tag.Name)
	d := &Digit{Name: tag.Name, Alphabet: alpha, HasPoint: tag.HasPoint}
	for _, ch := range children {
		if ch.IsGroup {
			c.fail(base, naming.Parse(ch.RawName).Name, "digit segment slot must be a layer, not a group")
			return nil, false
		}
		d.Layers = append(d.Layers, naming.FileName(base, naming.Parse(ch.RawName).Name))
	}
	return d, true
}

// composite builds a Number or String widget from a group whose children are
// themselves digit groups. Document order defines digit significance left to
// right. A malformed child digit fails the whole composite.
func (c *classifier) composite(n *layertree.Node, tag naming.Tag, path []string) {
	kindName := "number"
	if tag.Kind == naming.String {
		kindName = "string"
	}
	if !n.IsGroup {
		c.fail(path, tag.Name, "%s widget must be a group", kindName)
		return
	}

	base := append(append([]string{}, path...), tag.Name)
	w := &Widget{Kind: tag.Kind, Name: tag.Name, PointIndex: -1}
	ok := true
	for _, ch := range visibleChildren(n) {
		chTag := naming.Parse(ch.RawName)
		if chTag.Kind != naming.Digit7 && chTag.Kind != naming.Digit16 {
			c.fail(base, chTag.Name, "%s child %q is not a digit group", kindName, ch.RawName)
			ok = false
			continue
		}
		if tag.Kind == naming.String && chTag.Kind != naming.Digit16 {
			c.fail(base, chTag.Name, "string digits must use the 16-segment alphabet")
			ok = false
			continue
		}
		d, dok := c.digit(ch, chTag, base)
		if !dok {
			ok = false
			continue
		}
		if d.HasPoint {
			if w.PointIndex >= 0 {
				c.fail(path, tag.Name, "%s widget declares more than one point-bearing digit", kindName)
				ok = false
				continue
			}
			w.PointIndex = len(w.Digits)
		}
		w.Digits = append(w.Digits, *d)
	}
	if !ok {
		return
	}
	if len(w.Digits) == 0 {
		c.fail(path, tag.Name, "%s widget has no digit children", kindName)
		return
	}
	c.widgets = append(c.widgets, w)
}

// ranged builds a Range widget: every non-suppressed child layer is one
// member, 1-based in document order.
func (c *classifier) ranged(n *layertree.Node, tag naming.Tag, path []string) {
	if !n.IsGroup {
		c.fail(path, tag.Name, "range widget must be a group")
		return
	}
	base := append(append([]string{}, path...), tag.Name)
	w := &Widget{Kind: naming.Range, Name: tag.Name}
	ok := true
	for _, ch := range visibleChildren(n) {
		chTag := naming.Parse(ch.RawName)
		if ch.IsGroup {
			c.fail(base, chTag.Name, "range member must be a layer, not a group")
			ok = false
			continue
		}
		w.Layers = append(w.Layers, naming.FileName(base, chTag.Name))
	}
	if !ok {
		return
	}
	w.Count = len(w.Layers)
	c.widgets = append(c.widgets, w)
}

// visibleChildren filters out suppressed children, preserving document order.
func visibleChildren(n *layertree.Node) []*layertree.Node {
	out := make([]*layertree.Node, 0, len(n.Children))
	for _, ch := range n.Children {
		if naming.Parse(ch.RawName).Kind == naming.Suppressed {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// collectLeaves gathers the filenames of all non-suppressed, non-empty
// descendant layers in document order.
func collectLeaves(roots []*layertree.Node, base []string) []string {
	var out []string
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
		path := append(append([]string{}, base...), displayPath(ancestors)...)
		out = append(out, naming.FileName(path, tag.Name))
		return nil
	})
	return out
}

func displayPath(ancestors []*layertree.Node) []string {
	if len(ancestors) == 0 {
		return nil
	}
	out := make([]string, len(ancestors))
	for i, a := range ancestors {
		out[i] = naming.Parse(a.RawName).Name
	}
	return out
}
