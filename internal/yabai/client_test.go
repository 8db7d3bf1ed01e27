package yabai

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/boazy/ybb/internal/geometry"
)

// fakeRunner records every argv and replays canned stdout per call.
type fakeRunner struct {
	argv [][]string
	out  []string
	err  error
}

func (f *fakeRunner) run(path string, args ...string) ([]byte, error) {
	f.argv = append(f.argv, append([]string{path}, args...))
	if f.err != nil {
		return nil, f.err
	}
	var out string
	if len(f.out) > 0 {
		out, f.out = f.out[0], f.out[1:]
	}
	return []byte(out), nil
}

func newTestClient(f *fakeRunner) *Client {
	return NewClient("yabai", nil).WithRunner(f.run)
}

func (f *fakeRunner) assertCalls(t *testing.T, want ...string) {
	t.Helper()
	if len(f.argv) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(f.argv), f.argv)
	}
	for i, w := range want {
		if got := strings.Join(f.argv[i], " "); got != w {
			t.Fatalf("call %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestWindowsFocusedSpaceOmitsSelector(t *testing.T) {
	f := &fakeRunner{out: []string{"[]"}}
	if _, err := newTestClient(f).Windows(FocusedSelector); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertCalls(t, "yabai -m query --windows --space")
}

func TestWindowsPassesSpaceSelector(t *testing.T) {
	f := &fakeRunner{out: []string{"[]"}}
	if _, err := newTestClient(f).Windows("3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertCalls(t, "yabai -m query --windows --space 3")
}

func TestWindowsDecodesSnapshot(t *testing.T) {
	f := &fakeRunner{out: []string{`[
		{
			"id": 118,
			"app": "Terminal",
			"title": "bash",
			"frame": {"x": 0.0, "y": 0.0, "w": 450.0, "h": 600.0},
			"split-type": "vertical",
			"stack-index": 2,
			"is-visible": true,
			"is-floating": false,
			"is-minimized": false
		}
	]`}}

	windows, err := newTestClient(f).Windows("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	w := windows[0]
	if w.ID != 118 || w.App != "Terminal" || w.SplitType != "vertical" || w.StackIndex != 2 {
		t.Fatalf("snapshot decoded wrong: %+v", w)
	}
	if w.Frame != (geometry.Frame{X: 0, Y: 0, W: 450, H: 600}) {
		t.Fatalf("frame decoded wrong: %+v", w.Frame)
	}
	if !w.Tileable() {
		t.Fatalf("expected a visible managed window to be tileable")
	}
}

func TestTileableExcludesFloaters(t *testing.T) {
	w := Window{IsVisible: true, IsFloating: true}
	if w.Tileable() {
		t.Fatalf("floating windows are not tileable")
	}
	w = Window{IsVisible: false}
	if w.Tileable() {
		t.Fatalf("hidden windows are not tileable")
	}
}

func TestSpaceQuery(t *testing.T) {
	f := &fakeRunner{out: []string{`{"index": 2, "type": "bsp"}`}}
	s, err := newTestClient(f).Space("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Type != "bsp" || s.Index != 2 {
		t.Fatalf("space decoded wrong: %+v", s)
	}
	f.assertCalls(t, "yabai -m query --spaces --space 2")
}

func TestStackOntoInsertsThenWarps(t *testing.T) {
	f := &fakeRunner{}
	if err := newTestClient(f).StackOnto(200, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertCalls(t,
		"yabai -m window 100 --insert stack",
		"yabai -m window 200 --warp 100",
	)
}

func TestDetachTogglesFloatTwice(t *testing.T) {
	f := &fakeRunner{}
	if err := newTestClient(f).Detach(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertCalls(t,
		"yabai -m window 42 --toggle float",
		"yabai -m window 42 --toggle float",
	)
}

func TestResizeEdgeSpec(t *testing.T) {
	f := &fakeRunner{}
	if err := newTestClient(f).ResizeEdge(7, "right", 50, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertCalls(t, "yabai -m window 7 --resize right:50:0")
}

func TestMoveDispatchPlacesAndSizes(t *testing.T) {
	f := &fakeRunner{}
	if err := newTestClient(f).Move(7, geometry.Frame{X: 450, Y: 0, W: 450, H: 600}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertCalls(t,
		"yabai -m window 7 --move abs:450:0",
		"yabai -m window 7 --resize abs:450:600",
	)
}

func TestResizeDispatchMapsEdges(t *testing.T) {
	cases := []struct {
		edge   geometry.Edge
		pixels int
		want   string
	}{
		{geometry.EdgeRight, 50, "yabai -m window 7 --resize right:50:0"},
		{geometry.EdgeLeft, -50, "yabai -m window 7 --resize left:-50:0"},
		{geometry.EdgeBottom, 30, "yabai -m window 7 --resize bottom:0:30"},
		{geometry.EdgeTop, -30, "yabai -m window 7 --resize top:0:-30"},
	}
	for _, tc := range cases {
		f := &fakeRunner{}
		if err := newTestClient(f).Resize(7, tc.edge, tc.pixels); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.edge, err)
		}
		f.assertCalls(t, tc.want)
	}
}

func TestCloseWindow(t *testing.T) {
	f := &fakeRunner{}
	if err := newTestClient(f).Close(9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.assertCalls(t, "yabai -m window 9 --close")
}

func TestCommandFailureCarriesArgv(t *testing.T) {
	f := &fakeRunner{err: fmt.Errorf("could not locate window")}
	err := newTestClient(f).Close(9)

	var cerr *CommandError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if strings.Join(cerr.Args, " ") != "-m window 9 --close" {
		t.Fatalf("unexpected argv in error: %v", cerr.Args)
	}
	if !strings.Contains(err.Error(), "could not locate window") {
		t.Fatalf("expected the underlying cause in the message, got %q", err)
	}
}
