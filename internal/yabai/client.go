// Package yabai wraps the yabai command-line interface: queries decode the
// manager's JSON output into immutable snapshots, commands drive its
// window primitives. It is the single process boundary of the program.
package yabai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// FocusedSelector targets the focused window or space. Yabai selects the
// focused entity when the selector argument is omitted entirely, so the
// client drops it from the argv.
const FocusedSelector = "focused"

// Runner executes the yabai binary and returns its stdout. Injectable so
// tests can assert the exact argv without a running window manager.
type Runner func(path string, args ...string) ([]byte, error)

func execRunner(path string, args ...string) ([]byte, error) {
	cmd := exec.Command(path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return stdout.Bytes(), nil
}

// CommandError reports a failed yabai invocation, carrying the attempted
// argv so callers can surface enough context to diagnose.
type CommandError struct {
	Args []string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("yabai %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Client issues yabai queries and commands.
type Client struct {
	path string
	run  Runner
	log  *slog.Logger
}

// NewClient returns a client invoking the yabai binary at path ("yabai"
// resolves through PATH).
func NewClient(path string, logger *slog.Logger) *Client {
	if path == "" {
		path = "yabai"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{path: path, run: execRunner, log: logger}
}

// WithRunner replaces the process runner. Test seam.
func (c *Client) WithRunner(run Runner) *Client {
	c.run = run
	return c
}

func (c *Client) call(args ...string) ([]byte, error) {
	c.log.Debug("yabai", "args", strings.Join(args, " "))
	out, err := c.run(c.path, args...)
	if err != nil {
		return nil, &CommandError{Args: args, Err: err}
	}
	return out, nil
}

// appendSelector adds sel to the argv unless it targets the focused entity.
func appendSelector(args []string, sel string) []string {
	if sel != "" && sel != FocusedSelector {
		args = append(args, sel)
	}
	return args
}

// Windows queries all windows of the selected space. Pass FocusedSelector
// (or "") for the focused space. Results reflect live state; nothing is
// cached between calls.
func (c *Client) Windows(space string) ([]Window, error) {
	args := appendSelector([]string{"-m", "query", "--windows", "--space"}, space)
	out, err := c.call(args...)
	if err != nil {
		return nil, err
	}
	var windows []Window
	if err := json.Unmarshal(out, &windows); err != nil {
		return nil, fmt.Errorf("decode window list: %w", err)
	}
	return windows, nil
}

// Window queries a single window by selector.
func (c *Client) Window(sel string) (*Window, error) {
	args := appendSelector([]string{"-m", "query", "--windows", "--window"}, sel)
	out, err := c.call(args...)
	if err != nil {
		return nil, err
	}
	var w Window
	if err := json.Unmarshal(out, &w); err != nil {
		return nil, fmt.Errorf("decode window: %w", err)
	}
	return &w, nil
}

// Space queries a single space by selector.
func (c *Client) Space(sel string) (*Space, error) {
	args := appendSelector([]string{"-m", "query", "--spaces", "--space"}, sel)
	out, err := c.call(args...)
	if err != nil {
		return nil, err
	}
	var s Space
	if err := json.Unmarshal(out, &s); err != nil {
		return nil, fmt.Errorf("decode space: %w", err)
	}
	return &s, nil
}

func windowArgs(id int, rest ...string) []string {
	return append([]string{"-m", "window", strconv.Itoa(id)}, rest...)
}

// SetInsertDirection sets the splitting mode of a window ("stack", "north",
// "south", "east", "west") for the next warp into it.
func (c *Client) SetInsertDirection(id int, direction string) error {
	_, err := c.call(windowArgs(id, "--insert", direction)...)
	return err
}

// Warp re-inserts the window at the position of the target window.
func (c *Client) Warp(id, target int) error {
	_, err := c.call(windowArgs(id, "--warp", strconv.Itoa(target))...)
	return err
}

// StackOnto stacks the window onto the target: the target's insertion point
// is set to stack mode, then the window is warped into it.
func (c *Client) StackOnto(id, target int) error {
	if err := c.SetInsertDirection(target, "stack"); err != nil {
		return err
	}
	return c.Warp(id, target)
}

// ToggleFloat toggles the window's floating state.
func (c *Client) ToggleFloat(id int) error {
	_, err := c.call(windowArgs(id, "--toggle", "float")...)
	return err
}

// Detach takes the window out of its stack while keeping its rectangle.
// Toggling the floating state twice is the reliable way to detach under
// yabai; see https://github.com/koekeishiya/yabai/issues/671.
func (c *Client) Detach(id int) error {
	if err := c.ToggleFloat(id); err != nil {
		return err
	}
	return c.ToggleFloat(id)
}

// ResizeEdge drags one edge of the window by (dx, dy) pixels.
func (c *Client) ResizeEdge(id int, edge string, dx, dy int) error {
	spec := fmt.Sprintf("%s:%d:%d", edge, dx, dy)
	_, err := c.call(windowArgs(id, "--resize", spec)...)
	return err
}

// MoveAbs places the window's top-left corner at (x, y).
func (c *Client) MoveAbs(id int, x, y float64) error {
	spec := fmt.Sprintf("abs:%d:%d", int(x), int(y))
	_, err := c.call(windowArgs(id, "--move", spec)...)
	return err
}

// ResizeAbs sets the window's size to w x h.
func (c *Client) ResizeAbs(id int, w, h float64) error {
	spec := fmt.Sprintf("abs:%d:%d", int(w), int(h))
	_, err := c.call(windowArgs(id, "--resize", spec)...)
	return err
}

// Close closes the window.
func (c *Client) Close(id int) error {
	_, err := c.call(windowArgs(id, "--close")...)
	return err
}
