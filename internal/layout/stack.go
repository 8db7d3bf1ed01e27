// Package layout computes the operation plans for the tree rewrites:
// stacking a run of same-axis siblings (and unrolling it back), switching a
// run's split axis, and edge-correct resizing. Every function reads the
// reconstructed tree and returns a plan; nothing here touches the manager.
package layout

import (
	"math"

	"github.com/boazy/ybb/internal/geometry"
	"github.com/boazy/ybb/internal/plan"
	"github.com/boazy/ybb/internal/tree"
)

// Stack plans collapsing the maximal same-axis run around windowID into a
// single stack, preserving traversal order. With toggle set and the target
// already stacked, it plans the reverse: unrolling the stack into a
// balanced run along the opposite axis of the enclosing split.
//
// A window with no split sibling yields an empty plan, and so does a run of
// fewer than two members.
func Stack(root tree.Node, windowID int, toggle bool) (plan.Plan, error) {
	res, err := tree.Find(root, windowID)
	if err != nil {
		return plan.Plan{}, err
	}
	if toggle && tree.IsStacked(res) {
		return unroll(res), nil
	}
	return stackRun(res), nil
}

func stackRun(res *tree.FindResult) plan.Plan {
	var p plan.Plan
	parent := res.Parent()
	if parent == nil {
		return p
	}
	run := tree.CollectRun(tree.SameAxisAncestor(res, parent.Axis), parent.Axis)
	if len(run) < 2 {
		return p
	}
	// Stack each window onto its predecessor so the final stack keeps the
	// run's traversal order.
	for i := 1; i < len(run); i++ {
		p.Add(plan.StackOp{Below: run[i-1].ID, Above: run[i].ID})
	}
	return p
}

func unroll(res *tree.FindResult) plan.Plan {
	var p plan.Plan
	if res.ParentStack == nil {
		return p
	}
	members := res.ParentStack.Windows
	if len(members) < 2 {
		return p
	}

	// The stack unrolls along the opposite axis of its enclosing split; a
	// stack that is the whole tree unrolls side by side.
	axis := geometry.Vertical
	if parent := res.Parent(); parent != nil {
		axis = parent.Axis.Opposite()
	}

	for _, w := range members[1:] {
		p.Add(plan.UnstackOp{Window: w.ID})
	}
	for i, frame := range segments(res.ParentStack.Frame, axis, len(members)) {
		p.Add(plan.MoveOp{Window: members[i].ID, To: frame})
	}
	return p
}

// segments divides frame into n equal parts along the axis, accumulating
// the rounding remainder onto the last segment so extents sum exactly to
// the original.
func segments(frame geometry.Frame, axis geometry.Axis, n int) []geometry.Frame {
	extent := axis.Extent(frame)
	step := math.Floor(extent / float64(n))
	last := extent - step*float64(n-1)

	out := make([]geometry.Frame, n)
	for i := range out {
		size := step
		if i == n-1 {
			size = last
		}
		if axis == geometry.Vertical {
			out[i] = geometry.Frame{X: frame.X + step*float64(i), Y: frame.Y, W: size, H: frame.H}
		} else {
			out[i] = geometry.Frame{X: frame.X, Y: frame.Y + step*float64(i), W: frame.W, H: size}
		}
	}
	return out
}
