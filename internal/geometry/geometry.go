// Package geometry holds the rectangle and axis arithmetic shared by the
// tree reconstructor and the rewrite planners. All tolerance comparisons
// live here so the epsilon can be changed in one place.
package geometry

import "math"

// DefaultEpsilon is the tolerance used for frame comparisons when no
// explicit value is configured. Yabai reports float frames with sub-pixel
// rounding noise, so exact coincidence cannot be assumed.
const DefaultEpsilon = 0.1

// Frame is a window rectangle in screen coordinates. Field names match the
// keys yabai uses in its query output.
type Frame struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

func (f Frame) Left() float64   { return f.X }
func (f Frame) Top() float64    { return f.Y }
func (f Frame) Right() float64  { return f.X + f.W }
func (f Frame) Bottom() float64 { return f.Y + f.H }

func (f Frame) CenterX() float64 { return f.X + f.W/2 }
func (f Frame) CenterY() float64 { return f.Y + f.H/2 }

// ApproxEqual reports whether a and b differ by no more than eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// ApproxEqual reports whether both frames coincide within eps on every edge.
func (f Frame) ApproxEqual(other Frame, eps float64) bool {
	return ApproxEqual(f.X, other.X, eps) &&
		ApproxEqual(f.Y, other.Y, eps) &&
		ApproxEqual(f.W, other.W, eps) &&
		ApproxEqual(f.H, other.H, eps)
}

// Overlaps reports whether two frames share interior area beyond eps on
// both axes.
func (f Frame) Overlaps(other Frame, eps float64) bool {
	return f.Left() < other.Right()-eps && other.Left() < f.Right()-eps &&
		f.Top() < other.Bottom()-eps && other.Top() < f.Bottom()-eps
}

// Union returns the tight bounding box of the given frames. The zero Frame
// is returned for an empty slice.
func Union(frames []Frame) Frame {
	if len(frames) == 0 {
		return Frame{}
	}
	minX, minY := frames[0].Left(), frames[0].Top()
	maxR, maxB := frames[0].Right(), frames[0].Bottom()
	for _, f := range frames[1:] {
		minX = math.Min(minX, f.Left())
		minY = math.Min(minY, f.Top())
		maxR = math.Max(maxR, f.Right())
		maxB = math.Max(maxB, f.Bottom())
	}
	return Frame{X: minX, Y: minY, W: maxR - minX, H: maxB - minY}
}

// Axis identifies the orientation of a binary split. The values mirror
// yabai's split-type vocabulary and must be preserved verbatim at that
// boundary: Vertical places children side by side (the cut line is
// vertical), Horizontal places them top/bottom.
type Axis string

const (
	Vertical   Axis = "vertical"
	Horizontal Axis = "horizontal"
)

// Opposite returns the other axis.
func (a Axis) Opposite() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// Extent returns the frame's size along the axis children are laid out on:
// width for a Vertical split, height for a Horizontal one.
func (a Axis) Extent(f Frame) float64 {
	if a == Vertical {
		return f.W
	}
	return f.H
}

// Edge names one side of a window, in the vocabulary yabai's resize
// command expects.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)
