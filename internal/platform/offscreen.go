// Package platform provides Window capability implementations the input
// tracker can forward cursor requests to: an in-memory offscreen window and
// a uinput-backed virtual pointer for Linux.
package platform

import (
	"fmt"
	"sync"

	"pollframe/internal/input"
)

// Offscreen is an in-memory window: every cursor request succeeds as long
// as it stays inside the window bounds. It stands in for a real platform
// surface in the demo and in tests.
type Offscreen struct {
	mu sync.Mutex

	width  float64
	height float64

	icon     input.CursorIcon
	grabbed  bool
	visible  bool
	position input.Point
}

// NewOffscreen creates an offscreen window of the given pixel size.
func NewOffscreen(width, height float64) *Offscreen {
	return &Offscreen{
		width:   width,
		height:  height,
		visible: true,
	}
}

// Resize changes the window bounds, clamping nothing retroactively.
func (o *Offscreen) Resize(width, height float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.width = width
	o.height = height
}

func (o *Offscreen) SetCursorIcon(icon input.CursorIcon) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.icon = icon
}

func (o *Offscreen) SetCursorGrab(grabbed bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.grabbed = grabbed
	return nil
}

func (o *Offscreen) SetCursorVisible(visible bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visible = visible
}

// SetCursorPosition accepts warps inside the window bounds and refuses
// anything outside, mimicking platform policy on out-of-surface warps.
func (o *Offscreen) SetCursorPosition(p input.Point) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if p.X < 0 || p.Y < 0 || p.X >= o.width || p.Y >= o.height {
		return fmt.Errorf("position (%.0f, %.0f) outside %gx%g window", p.X, p.Y, o.width, o.height)
	}
	o.position = p
	return nil
}

// CursorIcon returns the last icon set on the window.
func (o *Offscreen) CursorIcon() input.CursorIcon {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.icon
}

// CursorGrabbed returns the last grab state set on the window.
func (o *Offscreen) CursorGrabbed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.grabbed
}

// CursorVisible returns the last visibility set on the window.
func (o *Offscreen) CursorVisible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

// CursorPosition returns the last accepted warp target.
func (o *Offscreen) CursorPosition() input.Point {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.position
}
