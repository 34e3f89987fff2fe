// Package input tracks per-frame pointer state for a real-time host loop:
// absolute position, motion deltas, button press edges, and a local mirror
// of platform cursor properties.
//
// The tracker is plain single-threaded state. The host delivers raw events
// as they arrive, queries the snapshot during its update/draw phase, and
// calls EndFrame exactly once per tick. Hosts that poll input from another
// goroutine must funnel events onto the loop thread themselves; the tracker
// provides no locking.
package input

import "maps"

// Tracker converts a stream of raw pointer events into a frame-coherent
// snapshot. The zero value is not usable; create one with NewTracker.
type Tracker struct {
	lastPosition Point
	lastDelta    Point
	delta        Point

	buttons     map[Button]struct{}
	prevButtons map[Button]struct{}

	cursorIcon    CursorIcon
	cursorGrabbed bool
	cursorHidden  bool
}

// NewTracker returns a tracker with no buttons down, zero position and
// deltas, and default cursor properties.
func NewTracker() *Tracker {
	return &Tracker{
		buttons:     make(map[Button]struct{}),
		prevButtons: make(map[Button]struct{}),
	}
}

// SetLastPosition records the most recent absolute cursor sample.
func (t *Tracker) SetLastPosition(p Point) {
	t.lastPosition = p
}

// SetLastDelta records the displacement between the two most recent motion
// samples, as reported by the platform for a single event.
func (t *Tracker) SetLastDelta(p Point) {
	t.lastDelta = p
}

// AccumulateDelta adds one motion sample's displacement to the running
// frame delta. The host calls this once per motion event with the raw
// per-event delta; the sum is what Delta returns until ResetDelta.
func (t *Tracker) AccumulateDelta(p Point) {
	t.delta = t.delta.Add(p)
}

// Position returns the most recent absolute cursor position, in
// window-local pixels.
func (t *Tracker) Position() Point {
	return t.lastPosition
}

// Delta returns the accumulated cursor displacement since the last
// ResetDelta, in pixels.
func (t *Tracker) Delta() Point {
	return t.delta
}

// LastDelta returns the displacement between the latest two motion samples.
// Unlike Delta it is never reset, only overwritten by the next sample.
func (t *Tracker) LastDelta() Point {
	return t.lastDelta
}

// ResetDelta zeroes the accumulated frame delta. The host must call this
// once per frame boundary, after update and draw have consumed Delta;
// skipping it leaks the previous frame's motion into the next.
func (t *Tracker) ResetDelta() {
	t.delta = Point{}
}

// SetButton records a button as down or up. Within a frame the last write
// wins; setting the same state twice has no additional effect.
func (t *Tracker) SetButton(b Button, pressed bool) {
	if pressed {
		t.buttons[b] = struct{}{}
	} else {
		delete(t.buttons, b)
	}
}

// ButtonPressed reports whether b is currently down.
func (t *Tracker) ButtonPressed(b Button) bool {
	_, ok := t.buttons[b]
	return ok
}

// ButtonJustPressed reports whether b went down this frame: down now and
// not down at the last AdvanceFrame.
func (t *Tracker) ButtonJustPressed(b Button) bool {
	_, now := t.buttons[b]
	_, before := t.prevButtons[b]
	return now && !before
}

// ButtonJustReleased reports whether b went up this frame: up now and
// down at the last AdvanceFrame.
func (t *Tracker) ButtonJustReleased(b Button) bool {
	_, now := t.buttons[b]
	_, before := t.prevButtons[b]
	return !now && before
}

// AdvanceFrame commits the current button set as the new previous-frame
// baseline. Call it exactly once per frame, after all events have been
// applied and all edge queries made: calling twice collapses every edge to
// false for the rest of the frame, and skipping it conflates edges across
// frames. A button pressed and released between two calls is observed only
// in its final state — intra-frame ordering is deliberately not preserved.
func (t *Tracker) AdvanceFrame() {
	t.prevButtons = maps.Clone(t.buttons)
}

// EndFrame is the per-tick synchronization point: AdvanceFrame followed by
// ResetDelta. Hosts running their own loop call it right after update and
// draw, before polling the next batch of events.
func (t *Tracker) EndFrame() {
	t.AdvanceFrame()
	t.ResetDelta()
}

// CursorIcon returns the mirrored cursor shape.
func (t *Tracker) CursorIcon() CursorIcon {
	return t.cursorIcon
}

// SetCursorIcon changes the cursor shape on the window and mirrors it.
func (t *Tracker) SetCursorIcon(w Window, icon CursorIcon) {
	w.SetCursorIcon(icon)
	t.cursorIcon = icon
}

// CursorGrabbed reports whether the cursor is mirrored as grabbed
// (confined to the window).
func (t *Tracker) CursorGrabbed() bool {
	return t.cursorGrabbed
}

// SetCursorGrabbed asks the platform to grab or release the cursor. The
// mirror is updated only when the platform accepts: after a failure
// CursorGrabbed still reports the prior state.
func (t *Tracker) SetCursorGrabbed(w Window, grabbed bool) error {
	if err := w.SetCursorGrab(grabbed); err != nil {
		return platformRejected("set cursor grab", err)
	}
	t.cursorGrabbed = grabbed
	return nil
}

// CursorHidden reports whether the cursor is mirrored as hidden.
func (t *Tracker) CursorHidden() bool {
	return t.cursorHidden
}

// SetCursorHidden hides or shows the cursor on the window and mirrors it.
func (t *Tracker) SetCursorHidden(w Window, hidden bool) {
	w.SetCursorVisible(!hidden)
	t.cursorHidden = hidden
}

// SetCursorPosition warps the cursor on the window. The tracked position
// is updated only when the platform accepts the warp; on failure Position
// keeps returning the prior sample.
func (t *Tracker) SetCursorPosition(w Window, p Point) error {
	if err := w.SetCursorPosition(p); err != nil {
		return platformRejected("set cursor position", err)
	}
	t.lastPosition = p
	return nil
}
