// Package plan defines the ordered operation sequences computed by the
// rewrite algorithms and their replay against the window manager. A plan is
// data: computing one never touches the manager.
package plan

import (
	"fmt"

	"github.com/boazy/ybb/internal/geometry"
)

// Dispatcher executes one low-level window operation at a time. The yabai
// client implements it; tests substitute a recorder.
type Dispatcher interface {
	Stack(below, above int) error
	Unstack(window int) error
	Resize(window int, edge geometry.Edge, pixels int) error
	Move(window int, to geometry.Frame) error
	Close(window int) error
}

// Op is a single low-level operation in a plan.
type Op interface {
	fmt.Stringer
	apply(d Dispatcher) error
}

// StackOp stacks Above onto Below so both occupy Below's rectangle.
type StackOp struct {
	Below int
	Above int
}

func (o StackOp) apply(d Dispatcher) error { return d.Stack(o.Below, o.Above) }
func (o StackOp) String() string           { return fmt.Sprintf("stack %d onto %d", o.Above, o.Below) }

// UnstackOp detaches Window from its stack, retaining its rectangle.
type UnstackOp struct {
	Window int
}

func (o UnstackOp) apply(d Dispatcher) error { return d.Unstack(o.Window) }
func (o UnstackOp) String() string           { return fmt.Sprintf("unstack %d", o.Window) }

// ResizeOp drags one edge of Window by Pixels. Positive values move the
// edge right or down.
type ResizeOp struct {
	Window int
	Edge   geometry.Edge
	Pixels int
}

func (o ResizeOp) apply(d Dispatcher) error { return d.Resize(o.Window, o.Edge, o.Pixels) }
func (o ResizeOp) String() string {
	return fmt.Sprintf("resize %d %s edge by %+dpx", o.Window, o.Edge, o.Pixels)
}

// MoveOp moves and resizes Window to an absolute frame.
type MoveOp struct {
	Window int
	To     geometry.Frame
}

func (o MoveOp) apply(d Dispatcher) error { return d.Move(o.Window, o.To) }
func (o MoveOp) String() string {
	return fmt.Sprintf("move %d to %.0f,%.0f %.0fx%.0f", o.Window, o.To.X, o.To.Y, o.To.W, o.To.H)
}

// CloseOp closes Window.
type CloseOp struct {
	Window int
}

func (o CloseOp) apply(d Dispatcher) error { return d.Close(o.Window) }
func (o CloseOp) String() string           { return fmt.Sprintf("close %d", o.Window) }

// Plan is an ordered sequence of operations. Later operations assume the
// state left by earlier ones, so execution order is strict.
type Plan struct {
	Ops []Op
}

// Add appends operations to the plan.
func (p *Plan) Add(ops ...Op) {
	p.Ops = append(p.Ops, ops...)
}

// Len returns the number of operations.
func (p Plan) Len() int { return len(p.Ops) }

// Execute replays the plan in order and stops at the first failure,
// wrapping it with the failed operation.
func (p Plan) Execute(d Dispatcher) error {
	for _, op := range p.Ops {
		if err := op.apply(d); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// ExecuteCollect replays the plan attempting every operation regardless of
// earlier failures and returns the collected per-operation errors. Used by
// bulk operations where partial success is acceptable.
func (p Plan) ExecuteCollect(d Dispatcher) []error {
	var failures []error
	for _, op := range p.Ops {
		if err := op.apply(d); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", op, err))
		}
	}
	return failures
}
