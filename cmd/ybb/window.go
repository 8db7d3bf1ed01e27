package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/boazy/ybb/internal/config"
	"github.com/boazy/ybb/internal/layout"
	"github.com/boazy/ybb/internal/plan"
	"github.com/boazy/ybb/internal/render"
	"github.com/boazy/ybb/internal/tree"
	"github.com/boazy/ybb/internal/yabai"
)

func printWindowUsage(w *os.File) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  ybb window list [--space SEL] [--output-format table|json]")
	fmt.Fprintln(w, "  ybb window stack [--window SEL] [--toggle]")
	fmt.Fprintln(w, "  ybb window switch-split [--window SEL]")
	fmt.Fprintln(w, "  ybb window resize <increment> [--window SEL]")
	fmt.Fprintln(w, "  ybb window close [--window SEL] [--except]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'ybb window <command> --help' for command-specific options.")
}

func runWindow(args []string) int {
	if len(args) == 0 {
		printWindowUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printWindowUsage(os.Stdout)
		return 0
	}

	switch args[0] {
	case "list":
		return runWindowList(args[1:])
	case "stack":
		return runWindowStack(args[1:])
	case "switch-split":
		return runWindowSwitchSplit(args[1:])
	case "resize":
		return runWindowResize(args[1:])
	case "close":
		return runWindowClose(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown window command: %s\n\n", args[0])
		printWindowUsage(os.Stderr)
		return 2
	}
}

// windowSession bundles the per-command setup: config, client, and the
// fresh snapshot/tree of the focused space. Every command re-queries; the
// manager is the sole source of truth and is mutated out of band.
type windowSession struct {
	cfg    *config.Config
	client *yabai.Client
	root   tree.Node
}

func newWindowSession(verbose bool) (*windowSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	client := yabai.NewClient(cfg.YabaiPath, newLogger(verbose))

	windows, err := client.Windows(yabai.FocusedSelector)
	if err != nil {
		return nil, err
	}
	root, err := tree.Reconstruct(windows, cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	return &windowSession{cfg: cfg, client: client, root: root}, nil
}

// resolveTarget resolves a window selector to its id via a fresh query.
func (s *windowSession) resolveTarget(sel string) (int, error) {
	w, err := s.client.Window(sel)
	if err != nil {
		return 0, err
	}
	return w.ID, nil
}

func runWindowList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ybb window list [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List all windows of a space with their frames and stack indices.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	space := fs.String("space", yabai.FocusedSelector, "Space selector")
	outputFormat := fs.String("output-format", "table", "Output format (table or json)")
	colorMode := fs.String("color", "", "Color output mode (auto, always, never)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "window list takes no arguments")
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
	client := yabai.NewClient(cfg.YabaiPath, newLogger(*verbose))

	windows, err := client.Windows(*space)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	switch *outputFormat {
	case "json":
		if err := render.WindowsJSON(os.Stdout, windows); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	case "table":
		render.ApplyColorMode(render.ColorMode(*colorMode))
		fmt.Println(render.WindowTable(windows))
	default:
		fmt.Fprintf(os.Stderr, "unknown output format: %s\n", *outputFormat)
		return 2
	}
	return 0
}

func runWindowStack(args []string) int {
	fs := flag.NewFlagSet("stack", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ybb window stack [--window SEL] [--toggle]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Collapse the window's run of same-axis split siblings into a stack.")
		fmt.Fprintln(os.Stderr, "With --toggle, an already stacked window's stack unrolls into a")
		fmt.Fprintln(os.Stderr, "balanced run on the opposite axis instead.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	window := fs.String("window", yabai.FocusedSelector, "Window selector")
	toggle := fs.Bool("toggle", false, "Toggle between stacking and unstacking")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	return runPlanned(*verbose, func(s *windowSession) (plan.Plan, error) {
		id, err := s.resolveTarget(*window)
		if err != nil {
			return plan.Plan{}, err
		}
		return layout.Stack(s.root, id, *toggle)
	})
}

func runWindowSwitchSplit(args []string) int {
	fs := flag.NewFlagSet("switch-split", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ybb window switch-split [--window SEL]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flip the split axis of the window's run of same-axis siblings,")
		fmt.Fprintln(os.Stderr, "preserving member order and proportional sizing.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	window := fs.String("window", yabai.FocusedSelector, "Window selector")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	return runPlanned(*verbose, func(s *windowSession) (plan.Plan, error) {
		id, err := s.resolveTarget(*window)
		if err != nil {
			return plan.Plan{}, err
		}
		return layout.SwitchSplit(s.root, id)
	})
}

var incrementToken = regexp.MustCompile(`^[+-]?[0-9]+$`)

// splitIncrement pulls the signed increment out of the argument list so the
// flag parser does not mistake a leading -N for an unknown flag. The value
// of --window is skipped, so a numeric window selector is never taken for
// the increment. Remaining arguments pass through in order.
func splitIncrement(args []string) (token string, rest []string) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if token == "" && incrementToken.MatchString(a) {
			token = a
			continue
		}
		rest = append(rest, a)
		if (a == "--window" || a == "-window") && i+1 < len(args) {
			i++
			rest = append(rest, args[i])
		}
	}
	return token, rest
}

func runWindowResize(args []string) int {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ybb window resize <increment> [--window SEL]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Resize the window against its split sibling. A bare or +N increment")
		fmt.Fprintln(os.Stderr, "grows by that many pixels, -N shrinks; the sibling compensates.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	window := fs.String("window", yabai.FocusedSelector, "Window selector")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	token, rest := splitIncrement(args)
	if err := fs.Parse(rest); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if token == "" || fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "resize requires exactly one <increment> argument")
		fs.Usage()
		return 2
	}
	delta, err := strconv.Atoi(token)
	if err != nil || delta == 0 {
		fmt.Fprintf(os.Stderr, "invalid increment %q: expected a non-zero signed integer\n", token)
		return 2
	}

	return runPlanned(*verbose, func(s *windowSession) (plan.Plan, error) {
		id, err := s.resolveTarget(*window)
		if err != nil {
			return plan.Plan{}, err
		}
		return layout.Resize(s.root, id, delta)
	})
}

// runPlanned performs the shared query→reconstruct→plan→execute sequence.
func runPlanned(verbose bool, planFn func(*windowSession) (plan.Plan, error)) int {
	s, err := newWindowSession(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	p, err := planFn(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := p.Execute(s.client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runWindowClose(args []string) int {
	fs := flag.NewFlagSet("close", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ybb window close [--window SEL] [--except]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Close the window. With --except, close every other window in the")
		fmt.Fprintln(os.Stderr, "window's space instead, reporting per-window failures as warnings.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	window := fs.String("window", yabai.FocusedSelector, "Window selector")
	exceptMode := fs.Bool("except", false, "Close all other windows in the space instead")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
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
	client := yabai.NewClient(cfg.YabaiPath, newLogger(*verbose))

	target, err := client.Window(*window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if !*exceptMode {
		if err := client.Close(target.ID); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	windows, err := client.Windows(strconv.Itoa(target.Space))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Bulk operation: attempt every close, collect failures as warnings.
	failures := closeOthersPlan(windows, target.ID).ExecuteCollect(client)
	for _, fail := range failures {
		fmt.Fprintf(os.Stderr, "warning: %v\n", fail)
	}
	if len(failures) > 0 {
		return 1
	}
	return 0
}

// closeOthersPlan plans closing every window of the snapshot except keep.
func closeOthersPlan(windows []yabai.Window, keep int) plan.Plan {
	var p plan.Plan
	for _, w := range windows {
		if w.ID == keep {
			continue
		}
		p.Add(plan.CloseOp{Window: w.ID})
	}
	return p
}
