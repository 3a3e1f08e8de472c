package classify

import (
	"fmt"
	"strings"
)

// StructuralError is a classification-time violation of a widget's required
// shape. It is localized to one node and never aborts the run.
type StructuralError struct {
	// Path is the node's full folder path including its own display name.
	Path []string
	Msg  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, "/"), e.Msg)
}

// Diagnostics aggregates every structural error found in one run.
type Diagnostics []*StructuralError

func (d Diagnostics) Error() string {
	if len(d) == 0 {
		return "no structural errors"
	}
	msgs := make([]string, len(d))
	for i, e := range d {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d structural error(s): %s", len(d), strings.Join(msgs, "; "))
}

// ErrOrNil returns the aggregate as an error, or nil when the run was clean.
func (d Diagnostics) ErrOrNil() error {
	if len(d) == 0 {
		return nil
	}
	return d
}
