package layout

import (
	"fmt"

	"github.com/boazy/ybb/internal/geometry"
	"github.com/boazy/ybb/internal/plan"
	"github.com/boazy/ybb/internal/tree"
)

// Resize plans growing (positive delta) or shrinking (negative delta) the
// window along its parent split's axis by moving the shared boundary. The
// sibling's extent changes by exactly the opposite amount, so the parent's
// total extent is conserved. It fails with ErrNoSibling when the window is
// the sole content of the space.
func Resize(root tree.Node, windowID int, delta int) (plan.Plan, error) {
	res, err := tree.Find(root, windowID)
	if err != nil {
		return plan.Plan{}, err
	}

	parent := res.Parent()
	if parent == nil {
		return plan.Plan{}, fmt.Errorf("window %d: %w", windowID, tree.ErrNoSibling)
	}

	// The boundary faces the split: the first child drags its far edge
	// outward, the second child drags its near edge toward the split, so
	// positive deltas always grow the target.
	var op plan.ResizeOp
	switch {
	case parent.Axis == geometry.Vertical && res.IsFirstChild:
		op = plan.ResizeOp{Window: windowID, Edge: geometry.EdgeRight, Pixels: delta}
	case parent.Axis == geometry.Vertical:
		op = plan.ResizeOp{Window: windowID, Edge: geometry.EdgeLeft, Pixels: -delta}
	case res.IsFirstChild:
		op = plan.ResizeOp{Window: windowID, Edge: geometry.EdgeBottom, Pixels: delta}
	default:
		op = plan.ResizeOp{Window: windowID, Edge: geometry.EdgeTop, Pixels: -delta}
	}

	var p plan.Plan
	p.Add(op)
	return p, nil
}
