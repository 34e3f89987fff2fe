package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pollframe/internal/input"
	"pollframe/internal/platform"
)

func newTestModel() *DemoModel {
	tracker := input.NewTracker()
	window := platform.NewOffscreen(800, 600)
	return NewDemoModel(tracker, window, time.Second/60, 1.0)
}

func press(m *DemoModel, button tea.MouseButton, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button})
}

func release(m *DemoModel, button tea.MouseButton, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: button})
}

func tickFrame(m *DemoModel) {
	m.Update(FrameTickMsg(time.Now()))
}

func TestDemoModel_MousePressReachesTracker(t *testing.T) {
	m := newTestModel()

	press(m, tea.MouseButtonLeft, 10, 5)

	if !m.tracker.ButtonPressed(input.ButtonLeft) {
		t.Error("left button should be pressed after press event")
	}
	if !m.tracker.ButtonJustPressed(input.ButtonLeft) {
		t.Error("left button should be a press edge before the frame ends")
	}
	if got := m.tracker.Position(); got.X != 10 || got.Y != 5 {
		t.Errorf("position not recorded: got %v", got)
	}
}

func TestDemoModel_FrameTickAdvancesTracker(t *testing.T) {
	m := newTestModel()

	press(m, tea.MouseButtonLeft, 0, 0)
	tickFrame(m)

	if m.tracker.ButtonJustPressed(input.ButtonLeft) {
		t.Error("press edge should be consumed by the frame tick")
	}
	if !m.tracker.ButtonPressed(input.ButtonLeft) {
		t.Error("button should still read as held after the frame tick")
	}
	if m.frame != 1 {
		t.Errorf("expected frame counter 1, got %d", m.frame)
	}
}

func TestDemoModel_SnapshotTakenBeforeFrameAdvance(t *testing.T) {
	m := newTestModel()

	press(m, tea.MouseButtonRight, 0, 0)
	tickFrame(m)

	// The view snapshot was taken before EndFrame, so it still shows the edge
	// even though the tracker has moved on.
	var row *buttonRow
	for i := range m.snap.buttons {
		if m.snap.buttons[i].button == input.ButtonRight {
			row = &m.snap.buttons[i]
		}
	}
	if row == nil {
		t.Fatal("right button missing from snapshot")
	}
	if !row.justPressed {
		t.Error("snapshot should have captured the press edge")
	}
	if !strings.Contains(m.View(), "just pressed") {
		t.Error("view should render the press edge from the snapshot")
	}
}

func TestDemoModel_MotionAccumulatesDeltas(t *testing.T) {
	m := newTestModel()

	// First motion establishes the reference position, no delta yet.
	m.Update(tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if !m.tracker.Delta().IsZero() {
		t.Errorf("first sample should not produce a delta, got %v", m.tracker.Delta())
	}

	m.Update(tea.MouseMsg{X: 13, Y: 14, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m.Update(tea.MouseMsg{X: 14, Y: 14, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})

	if got := m.tracker.Delta(); got.X != 4 || got.Y != 4 {
		t.Errorf("frame delta should sum samples: got %v", got)
	}
	if got := m.tracker.LastDelta(); got.X != 1 || got.Y != 0 {
		t.Errorf("sample delta should be the latest displacement only: got %v", got)
	}

	tickFrame(m)
	if !m.tracker.Delta().IsZero() {
		t.Error("frame delta should reset at the frame boundary")
	}
	if got := m.tracker.LastDelta(); got.X != 1 || got.Y != 0 {
		t.Error("sample delta should survive the frame boundary")
	}
}

func TestDemoModel_SensitivityScalesSamples(t *testing.T) {
	tracker := input.NewTracker()
	m := NewDemoModel(tracker, platform.NewOffscreen(800, 600), time.Second/60, 2.0)

	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})

	if got := tracker.Delta(); got.X != 6 || got.Y != 2 {
		t.Errorf("sensitivity 2.0 should double the sample: got %v", got)
	}
}

func TestDemoModel_SameFrameClickSettles(t *testing.T) {
	m := newTestModel()

	press(m, tea.MouseButtonLeft, 0, 0)
	release(m, tea.MouseButtonLeft, 0, 0)
	tickFrame(m)

	if m.tracker.ButtonJustPressed(input.ButtonLeft) || m.tracker.ButtonJustReleased(input.ButtonLeft) {
		t.Error("a click completed within one frame must not leave an edge on the next")
	}
}

func TestDemoModel_GrabKeyTogglesMirror(t *testing.T) {
	m := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if !m.tracker.CursorGrabbed() {
		t.Error("g should toggle the grab mirror on via the offscreen window")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if m.tracker.CursorGrabbed() {
		t.Error("second g should toggle the grab mirror off")
	}
}

func TestDemoModel_IconKeyCycles(t *testing.T) {
	m := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	if m.tracker.CursorIcon() == input.CursorDefault {
		t.Error("i should cycle away from the default icon")
	}
}

func TestDemoModel_QuitKeys(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}
