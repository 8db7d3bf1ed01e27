package yabai

import "github.com/boazy/ybb/internal/geometry"

// Window is one entry of `yabai -m query --windows`. Snapshots are captured
// fresh on every query and never mutated; all state changes go through
// commands followed by a re-query.
type Window struct {
	ID                 int            `json:"id"`
	PID                int            `json:"pid"`
	App                string         `json:"app"`
	Title              string         `json:"title"`
	Frame              geometry.Frame `json:"frame"`
	Role               string         `json:"role"`
	Subrole            string         `json:"subrole"`
	Display            int            `json:"display"`
	Space              int            `json:"space"`
	Level              int            `json:"level"`
	SubLevel           int            `json:"sub-level"`
	Layer              string         `json:"layer"`
	SubLayer           string         `json:"sub-layer"`
	Opacity            float64        `json:"opacity"`
	SplitType          string         `json:"split-type"`
	SplitChild         string         `json:"split-child"`
	StackIndex         int            `json:"stack-index"`
	CanMove            bool           `json:"can-move"`
	CanResize          bool           `json:"can-resize"`
	HasFocus           bool           `json:"has-focus"`
	IsNativeFullscreen bool           `json:"is-native-fullscreen"`
	IsVisible          bool           `json:"is-visible"`
	IsMinimized        bool           `json:"is-minimized"`
	IsHidden           bool           `json:"is-hidden"`
	IsFloating         bool           `json:"is-floating"`
	IsSticky           bool           `json:"is-sticky"`
}

// Tileable reports whether the window participates in the BSP layout of its
// space. Floating, minimized and invisible windows are excluded from tree
// reconstruction but remain in the snapshot for other consumers.
func (w Window) Tileable() bool {
	return w.IsVisible && !w.IsFloating && !w.IsMinimized
}

// Space is one entry of `yabai -m query --spaces`.
type Space struct {
	ID                 int    `json:"id"`
	UUID               string `json:"uuid"`
	Index              int    `json:"index"`
	Label              string `json:"label"`
	Type               string `json:"type"`
	Display            int    `json:"display"`
	Windows            []int  `json:"windows"`
	FirstWindow        int    `json:"first-window"`
	LastWindow         int    `json:"last-window"`
	HasFocus           bool   `json:"has-focus"`
	IsVisible          bool   `json:"is-visible"`
	IsNativeFullscreen bool   `json:"is-native-fullscreen"`
}
