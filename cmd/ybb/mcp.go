package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/boazy/ybb/internal/config"
	"github.com/boazy/ybb/internal/mcp"
)

func runMCP(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ybb mcp serve")
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stdout, "Usage: ybb mcp serve")
		return 0
	}
	if args[0] != "serve" {
		fmt.Fprintf(os.Stderr, "Unknown mcp subcommand: %s\n", args[0])
		return 2
	}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	server := mcp.NewServer(cfg, newLogger(*verbose))
	if err := server.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
