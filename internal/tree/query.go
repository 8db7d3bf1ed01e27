package tree

import (
	"fmt"

	"github.com/boazy/ybb/internal/geometry"
)

// FindResult locates a window within a tree: the leaf itself, the Split
// ancestor chain from the root down to the direct parent, whether the leaf
// is the first child of that parent, and the enclosing Stack when the
// window is stacked.
type FindResult struct {
	Window       *Window
	Ancestors    []*Split
	IsFirstChild bool
	ParentStack  *Stack
}

// Parent returns the direct parent Split, or nil for a root leaf/stack.
func (r *FindResult) Parent() *Split {
	if len(r.Ancestors) == 0 {
		return nil
	}
	return r.Ancestors[len(r.Ancestors)-1]
}

// Find locates windowID in the tree. It fails with ErrWindowNotFound when
// the id is absent.
func Find(root Node, windowID int) (*FindResult, error) {
	res := find(root, windowID, nil, false)
	if res == nil {
		return nil, fmt.Errorf("window %d: %w", windowID, ErrWindowNotFound)
	}
	return res, nil
}

func find(n Node, windowID int, ancestors []*Split, isFirst bool) *FindResult {
	switch v := n.(type) {
	case *Window:
		if v.ID == windowID {
			return &FindResult{Window: v, Ancestors: ancestors, IsFirstChild: isFirst}
		}
	case *Stack:
		for _, w := range v.Windows {
			if w.ID == windowID {
				return &FindResult{Window: w, Ancestors: ancestors, IsFirstChild: isFirst, ParentStack: v}
			}
		}
	case *Split:
		chain := append(ancestors, v)
		if res := find(v.First, windowID, chain, true); res != nil {
			return res
		}
		if res := find(v.Second, windowID, chain, false); res != nil {
			return res
		}
	}
	return nil
}

// SameAxisAncestor walks the ancestor chain upward from the direct parent
// while the ancestor's axis equals axis, returning the highest such
// ancestor (the root of the maximal same-axis run). When the direct
// parent's axis already differs, the direct parent is returned.
func SameAxisAncestor(r *FindResult, axis geometry.Axis) *Split {
	top := r.Parent()
	if top == nil {
		return nil
	}
	for i := len(r.Ancestors) - 2; i >= 0; i-- {
		if r.Ancestors[i].Axis != axis {
			break
		}
		top = r.Ancestors[i]
	}
	return top
}

// CollectRun gathers all leaves reachable from n in depth-first pre-order
// without crossing into a Split of a different axis. Children are fully
// descended before their sibling is considered, and Stack members expand in
// stack order.
func CollectRun(n Node, axis geometry.Axis) []*Window {
	var run []*Window
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Window:
			run = append(run, v)
		case *Stack:
			run = append(run, v.Windows...)
		case *Split:
			if v.Axis != axis {
				return
			}
			walk(v.First)
			walk(v.Second)
		}
	}
	walk(n)
	return run
}

// IsStacked reports whether the located window currently sits in a stack:
// either inside a multi-window Stack group or reporting a stack index of
// its own.
func IsStacked(r *FindResult) bool {
	if r.ParentStack != nil && len(r.ParentStack.Windows) > 1 {
		return true
	}
	return r.Window.StackIndex > 0
}

// Walk visits every window leaf of the tree in traversal order.
func Walk(n Node, visit func(*Window)) {
	switch v := n.(type) {
	case *Window:
		visit(v)
	case *Stack:
		for _, w := range v.Windows {
			visit(w)
		}
	case *Split:
		Walk(v.First, visit)
		Walk(v.Second, visit)
	}
}
