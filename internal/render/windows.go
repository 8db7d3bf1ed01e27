package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/boazy/ybb/internal/yabai"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// WindowTable renders a space snapshot as a bordered table, one row per
// window in query order.
func WindowTable(windows []yabai.Window) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(sepStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "APP", "TITLE", "X", "Y", "W", "H", "STACK")

	for _, w := range windows {
		stack := ""
		if w.StackIndex > 0 {
			stack = strconv.Itoa(w.StackIndex)
		}
		t.Row(
			strconv.Itoa(w.ID),
			w.App,
			w.Title,
			fmt.Sprintf("%.0f", w.Frame.X),
			fmt.Sprintf("%.0f", w.Frame.Y),
			fmt.Sprintf("%.0f", w.Frame.W),
			fmt.Sprintf("%.0f", w.Frame.H),
			stack,
		)
	}
	return t.Render()
}

// WindowsJSON writes the snapshot with two-space indentation, preserving
// the manager's own field names.
func WindowsJSON(w io.Writer, windows []yabai.Window) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(windows)
}
