package mcp

import "github.com/boazy/ybb/internal/tree"

// SpaceTreeInput selects the space to reconstruct.
type SpaceTreeInput struct {
	Space string `json:"space,omitempty" jsonschema:"Space selector (index, label or 'focused'; default: focused)"`
}

// SpaceTreeOutput carries the reconstructed tree.
type SpaceTreeOutput struct {
	Tree *tree.SerialNode `json:"tree"`
}

// ListWindowsInput selects the space to list.
type ListWindowsInput struct {
	Space string `json:"space,omitempty" jsonschema:"Space selector (index, label or 'focused'; default: focused)"`
}

// WindowInfo is one window of a space snapshot.
type WindowInfo struct {
	ID         int     `json:"id"`
	App        string  `json:"app"`
	Title      string  `json:"title"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	StackIndex int     `json:"stack_index,omitempty"`
	Floating   bool    `json:"floating,omitempty"`
	Minimized  bool    `json:"minimized,omitempty"`
}

// ListWindowsOutput carries the snapshot of a space.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// StackWindowInput selects the window whose same-axis run is stacked.
type StackWindowInput struct {
	Window string `json:"window,omitempty" jsonschema:"Window selector (id or 'focused'; default: focused)"`
	Toggle bool   `json:"toggle,omitempty" jsonschema:"When true and the window is already stacked, unroll the stack instead"`
}

// SwitchSplitInput selects the window whose run's split axis is flipped.
type SwitchSplitInput struct {
	Window string `json:"window,omitempty" jsonschema:"Window selector (id or 'focused'; default: focused)"`
}

// ResizeWindowInput describes a smart resize.
type ResizeWindowInput struct {
	Increment int    `json:"increment" jsonschema:"required,Pixels to grow (positive) or shrink (negative) the window by"`
	Window    string `json:"window,omitempty" jsonschema:"Window selector (id or 'focused'; default: focused)"`
}

// PlanOutput reports an executed plan.
type PlanOutput struct {
	Operations int `json:"operations"`
}
