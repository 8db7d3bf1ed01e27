package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/boazy/ybb/internal/geometry"
)

// ErrWindowNotFound reports a target window id absent from the tree.
var ErrWindowNotFound = errors.New("window not found in tree")

// ErrNoSibling reports an operation that needs a split sibling on a window
// that is the sole content of its space.
var ErrNoSibling = errors.New("window has no split sibling")

// ReconstructError reports geometry that does not decompose into a
// consistent binary partition. The offending frames are carried so the
// caller can show which rectangles could not be placed.
type ReconstructError struct {
	Reason string
	Frames []geometry.Frame
}

func (e *ReconstructError) Error() string {
	if len(e.Frames) == 0 {
		return "reconstruct tree: " + e.Reason
	}
	parts := make([]string, len(e.Frames))
	for i, f := range e.Frames {
		parts[i] = fmt.Sprintf("%.0f,%.0f %.0fx%.0f", f.X, f.Y, f.W, f.H)
	}
	return fmt.Sprintf("reconstruct tree: %s: [%s]", e.Reason, strings.Join(parts, "; "))
}
