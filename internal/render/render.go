// Package render turns a reconstructed tree into console output: a styled
// box-drawing tree or indented JSON of the serializable view.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/boazy/ybb/internal/geometry"
	"github.com/boazy/ybb/internal/tree"
)

// ColorMode controls whether styled output is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ApplyColorMode resolves the mode against the output terminal and pins the
// lipgloss color profile accordingly. Auto keeps styling only when stdout
// is a terminal.
func ApplyColorMode(mode ColorMode) {
	switch mode {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// Nerd Font icons matching the manager's split vocabulary.
const (
	iconVertical   = ""
	iconHorizontal = ""
	iconStack      = ""
	iconWindow     = ""
)

var (
	appStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	idStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sepStyle        = lipgloss.NewStyle().Faint(true)
	stackStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	verticalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	horizontalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	windowIconStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	stackIconStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Tree renders the tree as box-drawing text. Single-window stacks render as
// the window itself.
func Tree(root tree.Node, nerdFont bool) string {
	root = unwrap(root)
	lines := []string{label(root, nerdFont)}
	lines = append(lines, renderChildren(root, "", nerdFont)...)
	return strings.Join(lines, "\n")
}

func unwrap(n tree.Node) tree.Node {
	if s, ok := n.(*tree.Stack); ok && len(s.Windows) == 1 {
		return s.Windows[0]
	}
	return n
}

func childrenOf(n tree.Node) []tree.Node {
	switch v := n.(type) {
	case *tree.Split:
		return []tree.Node{unwrap(v.First), unwrap(v.Second)}
	case *tree.Stack:
		children := make([]tree.Node, len(v.Windows))
		for i, w := range v.Windows {
			children[i] = w
		}
		return children
	}
	return nil
}

func renderChildren(n tree.Node, prefix string, nerdFont bool) []string {
	children := childrenOf(n)
	var lines []string
	for i, child := range children {
		last := i == len(children)-1
		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}
		lines = append(lines, prefix+connector+label(child, nerdFont))
		lines = append(lines, renderChildren(child, childPrefix, nerdFont)...)
	}
	return lines
}

func label(n tree.Node, nerdFont bool) string {
	switch v := n.(type) {
	case *tree.Window:
		var b strings.Builder
		if nerdFont {
			b.WriteString(windowIconStyle.Render(iconWindow) + " ")
		}
		b.WriteString(appStyle.Render(v.App))
		b.WriteString(sepStyle.Render(": "))
		b.WriteString(titleStyle.Render(v.Title))
		b.WriteString(idStyle.Render(fmt.Sprintf(" (%d)", v.ID)))
		return b.String()
	case *tree.Stack:
		head := "stack"
		if nerdFont {
			head = stackIconStyle.Render(iconStack)
		}
		return head + " " + stackStyle.Render(fmt.Sprintf("(%d windows)", len(v.Windows)))
	case *tree.Split:
		if v.Axis == geometry.Vertical {
			if nerdFont {
				return verticalStyle.Render(iconVertical)
			}
			return verticalStyle.Render(string(v.Axis))
		}
		if nerdFont {
			return horizontalStyle.Render(iconHorizontal)
		}
		return horizontalStyle.Render(string(v.Axis))
	}
	return ""
}

// JSON writes the serializable tree view with two-space indentation.
func JSON(w io.Writer, root tree.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree.Serialize(root))
}
