// Package tree reconstructs the binary split tree a bsp space implies from
// the flat window geometry yabai reports, and answers the structural
// queries the rewrite planners need. A tree is built once per command from
// one snapshot, read by the planners, and discarded; it is never mutated.
package tree

import "github.com/boazy/ybb/internal/geometry"

// Node is one of Window, Stack or Split.
type Node interface {
	node()
}

// Window is a leaf wrapping one window snapshot.
type Window struct {
	ID         int
	App        string
	Title      string
	Frame      geometry.Frame
	StackIndex int
}

// Stack is an ordered group of windows occupying the same rectangle, with
// only one visible at a time. It acts as a single leaf for split purposes
// but keeps its internal order for stack rewrites.
type Stack struct {
	Windows []*Window
	Frame   geometry.Frame
}

// Split is one binary cut: two ordered children separated along an axis.
// Frame is the exact union of both children's frames.
type Split struct {
	Axis   geometry.Axis
	First  Node
	Second Node
	Frame  geometry.Frame
}

func (*Window) node() {}
func (*Stack) node()  {}
func (*Split) node()  {}

// FrameOf returns the bounding frame of any node.
func FrameOf(n Node) geometry.Frame {
	switch v := n.(type) {
	case *Window:
		return v.Frame
	case *Stack:
		return v.Frame
	case *Split:
		return v.Frame
	}
	return geometry.Frame{}
}
