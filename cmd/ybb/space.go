package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boazy/ybb/internal/config"
	"github.com/boazy/ybb/internal/render"
	"github.com/boazy/ybb/internal/tree"
	"github.com/boazy/ybb/internal/yabai"
)

func printSpaceUsage(w *os.File) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ybb space tree [--space SEL] [--output-format json|tree] [--pretty-print]")
	fmt.Fprintln(w, "                 [--nerd-font] [--color auto|always|never] [--verbose]")
}

func runSpace(args []string) int {
	if len(args) == 0 {
		printSpaceUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printSpaceUsage(os.Stdout)
		return 0
	}
	if args[0] != "tree" {
		fmt.Fprintf(os.Stderr, "Unknown space command: %s\n\n", args[0])
		printSpaceUsage(os.Stderr)
		return 2
	}

	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ybb space tree [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Reconstruct the binary split tree of a bsp space and print it.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	space := fs.String("space", yabai.FocusedSelector, "Space selector")
	outputFormat := fs.String("output-format", "json", "Output format (json or tree)")
	prettyPrint := fs.Bool("pretty-print", false, "Shorthand for --output-format tree")
	nerdFont := fs.Bool("nerd-font", false, "Use Nerd Font icons in tree output")
	colorMode := fs.String("color", "", "Color output mode (auto, always, never)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "space tree takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if *colorMode == "" {
		*colorMode = cfg.Color
	}
	useNerdFont := *nerdFont || cfg.NerdFont

	client := yabai.NewClient(cfg.YabaiPath, newLogger(*verbose))

	spaceData, err := client.Space(*space)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if spaceData.Type != "bsp" {
		fmt.Fprintf(os.Stderr, "space %q is not a bsp space (type: %s)\n", *space, spaceData.Type)
		return 1
	}

	windows, err := client.Windows(*space)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	root, err := tree.Reconstruct(windows, cfg.Tolerance)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	format := *outputFormat
	if *prettyPrint {
		format = "tree"
	}

	switch format {
	case "json":
		if err := render.JSON(os.Stdout, root); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case "tree":
		render.ApplyColorMode(render.ColorMode(*colorMode))
		fmt.Println(render.Tree(root, useNerdFont))
	default:
		fmt.Fprintf(os.Stderr, "unknown output format: %s\n", format)
		return 2
	}
	return 0
}
