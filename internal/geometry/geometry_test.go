package geometry

import "testing"

func TestUnionTightBoundingBox(t *testing.T) {
	frames := []Frame{
		{X: 0, Y: 0, W: 300, H: 600},
		{X: 300, Y: 0, W: 300, H: 600},
		{X: 600, Y: 0, W: 300, H: 600},
	}

	u := Union(frames)
	if u.X != 0 || u.Y != 0 || u.W != 900 || u.H != 600 {
		t.Fatalf("expected union 0,0 900x600, got %+v", u)
	}
}

func TestUnionEmpty(t *testing.T) {
	u := Union(nil)
	if u != (Frame{}) {
		t.Fatalf("expected zero frame for empty union, got %+v", u)
	}
}

func TestFrameApproxEqualWithinTolerance(t *testing.T) {
	a := Frame{X: 0, Y: 0, W: 500, H: 400}
	b := Frame{X: 0.05, Y: -0.04, W: 500.08, H: 399.95}

	if !a.ApproxEqual(b, DefaultEpsilon) {
		t.Fatalf("expected frames to match within %.2f", DefaultEpsilon)
	}
	if a.ApproxEqual(Frame{X: 1, Y: 0, W: 500, H: 400}, DefaultEpsilon) {
		t.Fatalf("expected frames 1px apart to differ")
	}
}

func TestOverlaps(t *testing.T) {
	a := Frame{X: 0, Y: 0, W: 500, H: 400}
	b := Frame{X: 450, Y: 100, W: 300, H: 300}
	c := Frame{X: 500, Y: 0, W: 300, H: 400}

	if !a.Overlaps(b, DefaultEpsilon) {
		t.Fatalf("expected a and b to overlap")
	}
	// Shared edge only: not an overlap.
	if a.Overlaps(c, DefaultEpsilon) {
		t.Fatalf("expected edge-adjacent frames not to overlap")
	}
}

func TestAxisOpposite(t *testing.T) {
	if Vertical.Opposite() != Horizontal || Horizontal.Opposite() != Vertical {
		t.Fatalf("axis opposite mapping broken")
	}
}

func TestAxisExtent(t *testing.T) {
	f := Frame{X: 0, Y: 0, W: 900, H: 600}
	if Vertical.Extent(f) != 900 {
		t.Fatalf("vertical extent should be width, got %v", Vertical.Extent(f))
	}
	if Horizontal.Extent(f) != 600 {
		t.Fatalf("horizontal extent should be height, got %v", Horizontal.Extent(f))
	}
}
