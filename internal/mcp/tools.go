package mcp

import (
	"context"
	"fmt"
	"strconv"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boazy/ybb/internal/layout"
	"github.com/boazy/ybb/internal/plan"
	"github.com/boazy/ybb/internal/tree"
	"github.com/boazy/ybb/internal/yabai"
)

func selector(s string) string {
	if s == "" {
		return yabai.FocusedSelector
	}
	return s
}

// snapshot queries a space's windows and reconstructs its tree.
func (s *Server) snapshot(space string) ([]yabai.Window, tree.Node, error) {
	windows, err := s.client.Windows(selector(space))
	if err != nil {
		return nil, nil, err
	}
	root, err := tree.Reconstruct(windows, s.config.Tolerance)
	if err != nil {
		return nil, nil, err
	}
	return windows, root, nil
}

// resolveWindow resolves a window selector to its id via a fresh query.
func (s *Server) resolveWindow(sel string) (int, error) {
	if sel != "" && sel != yabai.FocusedSelector {
		id, err := strconv.Atoi(sel)
		if err == nil {
			return id, nil
		}
	}
	w, err := s.client.Window(selector(sel))
	if err != nil {
		return 0, err
	}
	return w.ID, nil
}

func (s *Server) execute(p plan.Plan) (PlanOutput, error) {
	if err := p.Execute(s.client); err != nil {
		return PlanOutput{}, err
	}
	return PlanOutput{Operations: p.Len()}, nil
}

func (s *Server) handleSpaceTree(_ context.Context, _ *mcpsdk.CallToolRequest, args SpaceTreeInput) (*mcpsdk.CallToolResult, SpaceTreeOutput, error) {
	_, root, err := s.snapshot(args.Space)
	if err != nil {
		return nil, SpaceTreeOutput{}, err
	}
	return nil, SpaceTreeOutput{Tree: tree.Serialize(root)}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.client.Windows(selector(args.Space))
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	out := ListWindowsOutput{Windows: make([]WindowInfo, 0, len(windows))}
	for _, w := range windows {
		out.Windows = append(out.Windows, WindowInfo{
			ID:         w.ID,
			App:        w.App,
			Title:      w.Title,
			X:          w.Frame.X,
			Y:          w.Frame.Y,
			Width:      w.Frame.W,
			Height:     w.Frame.H,
			StackIndex: w.StackIndex,
			Floating:   w.IsFloating,
			Minimized:  w.IsMinimized,
		})
	}
	return nil, out, nil
}

func (s *Server) handleStackWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args StackWindowInput) (*mcpsdk.CallToolResult, PlanOutput, error) {
	id, err := s.resolveWindow(args.Window)
	if err != nil {
		return nil, PlanOutput{}, err
	}
	_, root, err := s.snapshot("")
	if err != nil {
		return nil, PlanOutput{}, err
	}
	p, err := layout.Stack(root, id, args.Toggle)
	if err != nil {
		return nil, PlanOutput{}, err
	}
	out, err := s.execute(p)
	return nil, out, err
}

func (s *Server) handleSwitchSplit(_ context.Context, _ *mcpsdk.CallToolRequest, args SwitchSplitInput) (*mcpsdk.CallToolResult, PlanOutput, error) {
	id, err := s.resolveWindow(args.Window)
	if err != nil {
		return nil, PlanOutput{}, err
	}
	_, root, err := s.snapshot("")
	if err != nil {
		return nil, PlanOutput{}, err
	}
	p, err := layout.SwitchSplit(root, id)
	if err != nil {
		return nil, PlanOutput{}, err
	}
	out, err := s.execute(p)
	return nil, out, err
}

func (s *Server) handleResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowInput) (*mcpsdk.CallToolResult, PlanOutput, error) {
	if args.Increment == 0 {
		return nil, PlanOutput{}, fmt.Errorf("increment must be non-zero")
	}
	id, err := s.resolveWindow(args.Window)
	if err != nil {
		return nil, PlanOutput{}, err
	}
	_, root, err := s.snapshot("")
	if err != nil {
		return nil, PlanOutput{}, err
	}
	p, err := layout.Resize(root, id, args.Increment)
	if err != nil {
		return nil, PlanOutput{}, err
	}
	out, err := s.execute(p)
	return nil, out, err
}
