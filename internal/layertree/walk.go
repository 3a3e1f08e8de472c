package layertree

import "fmt"

// MaxDepth bounds tree traversal so a pathological container cannot drive
// unbounded recursion.
const MaxDepth = 256

// ErrTooDeep is returned when nesting exceeds MaxDepth.
var ErrTooDeep = fmt.Errorf("layer tree exceeds maximum depth %d", MaxDepth)

// SkipChildren can be returned from a visit func to prune the subtree.
var SkipChildren = fmt.Errorf("skip children")

// VisitFunc receives a node and its ancestor chain, root first.
type VisitFunc func(n *Node, ancestors []*Node) error

// Walk visits roots and their descendants depth-first in document order,
// using an explicit stack rather than call recursion.
func Walk(roots []*Node, fn VisitFunc) error {
	type frame struct {
		node      *Node
		ancestors []*Node
	}

	// Stack is LIFO, so push siblings in reverse to pop in document order.
	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: roots[i]})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.ancestors) >= MaxDepth {
			return ErrTooDeep
		}

		err := fn(f.node, f.ancestors)
		if err == SkipChildren {
			continue
		}
		if err != nil {
			return err
		}

		if len(f.node.Children) > 0 {
			ancestors := append(append([]*Node{}, f.ancestors...), f.node)
			for i := len(f.node.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{node: f.node.Children[i], ancestors: ancestors})
			}
		}
	}
	return nil
}
