package tree

import (
	"math"
	"sort"

	"github.com/boazy/ybb/internal/geometry"
	"github.com/boazy/ybb/internal/yabai"
)

// Reconstruct infers the binary split tree from a space's window snapshot.
// Only tileable windows (visible, non-floating, non-minimized) become
// leaves; other windows are ignored without error. It fails with a
// *ReconstructError when the snapshot holds no tileable window or when the
// geometry admits no consistent partition (e.g. overlapping frames that do
// not coincide into a stack).
//
// Reconstruction is deterministic: the same snapshot always yields a
// structurally identical tree.
func Reconstruct(windows []yabai.Window, eps float64) (Node, error) {
	if eps <= 0 {
		eps = geometry.DefaultEpsilon
	}
	tileable := make([]yabai.Window, 0, len(windows))
	for _, w := range windows {
		if w.Tileable() {
			tileable = append(tileable, w)
		}
	}
	if len(tileable) == 0 {
		return nil, &ReconstructError{Reason: "no tileable windows in snapshot"}
	}
	return build(tileable, eps)
}

func build(windows []yabai.Window, eps float64) (Node, error) {
	if sameFrame(windows, eps) {
		if len(windows) == 1 {
			return leaf(windows[0]), nil
		}
		return stackOf(windows, eps), nil
	}

	axis, line, ok := bestCut(windows, eps)
	if !ok {
		return nil, &ReconstructError{
			Reason: "windows overlap without forming a stack",
			Frames: framesOf(windows),
		}
	}

	first, second := partition(windows, axis, line, eps)
	firstNode, err := build(first, eps)
	if err != nil {
		return nil, err
	}
	secondNode, err := build(second, eps)
	if err != nil {
		return nil, err
	}

	return &Split{
		Axis:   axis,
		First:  firstNode,
		Second: secondNode,
		Frame:  geometry.Union(framesOf(windows)),
	}, nil
}

func leaf(w yabai.Window) *Window {
	return &Window{
		ID:         w.ID,
		App:        w.App,
		Title:      w.Title,
		Frame:      w.Frame,
		StackIndex: w.StackIndex,
	}
}

func stackOf(windows []yabai.Window, eps float64) *Stack {
	sorted := make([]yabai.Window, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StackIndex < sorted[j].StackIndex
	})
	members := make([]*Window, len(sorted))
	for i, w := range sorted {
		members[i] = leaf(w)
	}
	return &Stack{Windows: members, Frame: sorted[0].Frame}
}

func sameFrame(windows []yabai.Window, eps float64) bool {
	first := windows[0].Frame
	for _, w := range windows[1:] {
		if !w.Frame.ApproxEqual(first, eps) {
			return false
		}
	}
	return true
}

func framesOf(windows []yabai.Window) []geometry.Frame {
	frames := make([]geometry.Frame, len(windows))
	for i, w := range windows {
		frames[i] = w.Frame
	}
	return frames
}

// bestCut finds the guillotine cut explaining the window set. Candidate cut
// lines are every window edge on each axis; a cut is valid when every
// window lies entirely on one side (within eps) and both sides are
// non-empty. Among valid cuts the one maximizing the distance between the
// two halves' bounding-box centers wins; vertical candidates are checked
// first, so a tie keeps the vertical reading. This matches how the manager
// grows such trees by repeated binary divides.
func bestCut(windows []yabai.Window, eps float64) (geometry.Axis, float64, bool) {
	var (
		bestAxis   geometry.Axis
		bestLine   float64
		bestSpread = -1.0
		found      bool
	)

	for _, x := range candidateLines(windows, geometry.Vertical) {
		first, second := partition(windows, geometry.Vertical, x, eps)
		if len(first) == 0 || len(second) == 0 || len(first)+len(second) != len(windows) {
			continue
		}
		spread := math.Abs(geometry.Union(framesOf(first)).CenterX() - geometry.Union(framesOf(second)).CenterX())
		if spread > bestSpread {
			bestSpread = spread
			bestAxis, bestLine, found = geometry.Vertical, x, true
		}
	}

	for _, y := range candidateLines(windows, geometry.Horizontal) {
		first, second := partition(windows, geometry.Horizontal, y, eps)
		if len(first) == 0 || len(second) == 0 || len(first)+len(second) != len(windows) {
			continue
		}
		spread := math.Abs(geometry.Union(framesOf(first)).CenterY() - geometry.Union(framesOf(second)).CenterY())
		if spread > bestSpread {
			bestSpread = spread
			bestAxis, bestLine, found = geometry.Horizontal, y, true
		}
	}

	return bestAxis, bestLine, found
}

func candidateLines(windows []yabai.Window, axis geometry.Axis) []float64 {
	seen := make(map[float64]struct{}, len(windows)*2)
	for _, w := range windows {
		if axis == geometry.Vertical {
			seen[w.Frame.Left()] = struct{}{}
			seen[w.Frame.Right()] = struct{}{}
		} else {
			seen[w.Frame.Top()] = struct{}{}
			seen[w.Frame.Bottom()] = struct{}{}
		}
	}
	lines := make([]float64, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}
	sort.Float64s(lines)
	return lines
}

// partition splits the set at the cut line. A window straddling the line
// (beyond eps) lands in neither side, which invalidates the cut.
func partition(windows []yabai.Window, axis geometry.Axis, line, eps float64) (first, second []yabai.Window) {
	for _, w := range windows {
		switch {
		case axis == geometry.Vertical && w.Frame.Right() <= line+eps:
			first = append(first, w)
		case axis == geometry.Vertical && w.Frame.Left() >= line-eps:
			second = append(second, w)
		case axis == geometry.Horizontal && w.Frame.Bottom() <= line+eps:
			first = append(first, w)
		case axis == geometry.Horizontal && w.Frame.Top() >= line-eps:
			second = append(second, w)
		}
	}
	return first, second
}
