package layout

import (
	"math"

	"github.com/boazy/ybb/internal/geometry"
	"github.com/boazy/ybb/internal/plan"
	"github.com/boazy/ybb/internal/tree"
)

// SwitchSplit plans flipping the split axis of the maximal same-axis run
// around windowID while preserving member order. Each member spans the run
// frame on the unchanged axis and keeps its extent-proportion of the run's
// total along the switched axis, with the rounding remainder on the last
// member. Runs of fewer than two members yield an empty plan.
func SwitchSplit(root tree.Node, windowID int) (plan.Plan, error) {
	res, err := tree.Find(root, windowID)
	if err != nil {
		return plan.Plan{}, err
	}

	var p plan.Plan
	parent := res.Parent()
	if parent == nil {
		return p, nil
	}

	top := tree.SameAxisAncestor(res, parent.Axis)
	run := tree.CollectRun(top, parent.Axis)
	if len(run) < 2 {
		return p, nil
	}

	runFrame := tree.FrameOf(top)
	newAxis := parent.Axis.Opposite()

	total := 0.0
	for _, w := range run {
		total += parent.Axis.Extent(w.Frame)
	}

	// Lay the members out along the new axis, each taking its old share of
	// the run's extent.
	newExtent := newAxis.Extent(runFrame)
	offset := 0.0
	for i, w := range run {
		size := math.Floor(newExtent * parent.Axis.Extent(w.Frame) / total)
		if i == len(run)-1 {
			size = newExtent - offset
		}
		var to geometry.Frame
		if newAxis == geometry.Vertical {
			to = geometry.Frame{X: runFrame.X + offset, Y: runFrame.Y, W: size, H: runFrame.H}
		} else {
			to = geometry.Frame{X: runFrame.X, Y: runFrame.Y + offset, W: runFrame.W, H: size}
		}
		p.Add(plan.MoveOp{Window: w.ID, To: to})
		offset += size
	}
	return p, nil
}
