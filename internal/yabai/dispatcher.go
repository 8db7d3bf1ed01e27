package yabai

import "github.com/boazy/ybb/internal/geometry"

// The client implements plan.Dispatcher: each abstract operation maps to
// one or two yabai primitives.

// Stack stacks the above window onto the below window.
func (c *Client) Stack(below, above int) error {
	return c.StackOnto(above, below)
}

// Unstack detaches the window from its stack.
func (c *Client) Unstack(window int) error {
	return c.Detach(window)
}

// Resize drags one edge of the window. Pixels move the edge right/down when
// positive. Yabai takes the displacement as an (dx, dy) pair on the edge.
func (c *Client) Resize(window int, edge geometry.Edge, pixels int) error {
	var dx, dy int
	switch edge {
	case geometry.EdgeLeft, geometry.EdgeRight:
		dx = pixels
	case geometry.EdgeTop, geometry.EdgeBottom:
		dy = pixels
	}
	return c.ResizeEdge(window, string(edge), dx, dy)
}

// Move places the window at an absolute frame.
func (c *Client) Move(window int, to geometry.Frame) error {
	if err := c.MoveAbs(window, to.X, to.Y); err != nil {
		return err
	}
	return c.ResizeAbs(window, to.W, to.H)
}
