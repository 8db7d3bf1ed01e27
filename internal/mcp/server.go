// Package mcp exposes the tree reconstruction and rewrite operations as MCP
// tools over stdio, so agent tooling can drive the same plan pipeline as
// the CLI.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boazy/ybb/internal/config"
	"github.com/boazy/ybb/internal/yabai"
)

const (
	ServerName    = "ybb"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for yabai tree operations.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	client    *yabai.Client
}

// NewServer creates an MCP server backed by the yabai client.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		config: cfg,
		client: yabai.NewClient(cfg.YabaiPath, logger),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "space_tree",
		Description: "Reconstruct the binary split tree of a bsp space from its window geometry. Returns nested split/stack/window nodes with frames.",
	}, s.handleSpaceTree)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List all windows of a space with their frames and stack indices.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "stack_window",
		Description: "Collapse the window's run of same-axis split siblings into a stack, preserving order. With toggle, an already stacked window's stack is unrolled into a balanced run on the opposite axis instead.",
	}, s.handleStackWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "switch_split",
		Description: "Flip the split axis of the window's run of same-axis siblings while preserving order and proportional sizing.",
	}, s.handleSwitchSplit)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_window",
		Description: "Resize a window by moving the boundary shared with its split sibling. Positive increments grow the window, negative shrink it; the sibling compensates exactly.",
	}, s.handleResizeWindow)
}
