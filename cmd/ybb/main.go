package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "space":
		os.Exit(runSpace(os.Args[2:]))
	case "window":
		os.Exit(runWindow(os.Args[2:]))
	case "config":
		os.Exit(runConfigCmd(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ybb <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  space tree          Reconstruct and print the space's split tree")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  window list         List a space's windows with frames and stack indices")
	fmt.Fprintln(w, "  window stack        Collapse same-axis siblings into a stack (or toggle back)")
	fmt.Fprintln(w, "  window switch-split Flip the split axis of the window's sibling run")
	fmt.Fprintln(w, "  window resize       Resize a window against its split sibling")
	fmt.Fprintln(w, "  window close        Close a window (or all others with --except)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'ybb <command> --help' for command-specific options.")
}

// newLogger builds the stderr logger; verbose enables debug output
// including every yabai invocation.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
