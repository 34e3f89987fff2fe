package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pollframe/internal/input"
)

// keyMap binds the demo's cursor controls.
type keyMap struct {
	Grab   key.Binding
	Hide   key.Binding
	Icon   key.Binding
	Center key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Hide, k.Icon, k.Center, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var demoKeys = keyMap{
	Grab:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "toggle grab")),
	Hide:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "toggle hide")),
	Icon:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "cycle icon")),
	Center: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "warp to center")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// FrameTickMsg marks a frame boundary of the demo loop.
type FrameTickMsg time.Time

// resizableWindow lets window capabilities follow the terminal size.
type resizableWindow interface {
	Resize(width, height float64)
}

// watchedButtons is the set the demo displays. Extra numbered buttons still
// reach the tracker; they are just not rendered.
var watchedButtons = []input.Button{
	input.ButtonLeft,
	input.ButtonRight,
	input.ButtonMiddle,
	input.ButtonBack,
	input.ButtonForward,
}

// buttonRow is one row of the per-frame view snapshot.
type buttonRow struct {
	button       input.Button
	pressed      bool
	justPressed  bool
	justReleased bool
}

// frameSnapshot is the tracker state captured at the last frame boundary,
// so the view renders a coherent frame instead of racing incoming events.
type frameSnapshot struct {
	position  input.Point
	delta     input.Point
	lastDelta input.Point
	buttons   []buttonRow
}

// DemoModel is the demo's host loop. Terminal mouse events mutate the
// tracker as they arrive; a FrameTickMsg is the frame boundary where the
// snapshot is taken and EndFrame is called exactly once.
type DemoModel struct {
	tracker *input.Tracker
	window  input.Window

	tickRate    time.Duration
	sensitivity float64

	frame     uint64
	snap      frameSnapshot
	lastMouse input.Point
	haveMouse bool

	windowWidth  int
	windowHeight int

	message      string
	messageStyle lipgloss.Style

	keys keyMap
	help help.Model

	quitting bool
}

// NewDemoModel wires a tracker to a window capability. tickRate is the
// frame duration; sensitivity scales raw sample deltas before they reach
// the tracker.
func NewDemoModel(tracker *input.Tracker, window input.Window, tickRate time.Duration, sensitivity float64) *DemoModel {
	if tickRate <= 0 {
		tickRate = time.Second / 60
	}
	if sensitivity <= 0 {
		sensitivity = 1.0
	}
	return &DemoModel{
		tracker:      tracker,
		window:       window,
		tickRate:     tickRate,
		sensitivity:  sensitivity,
		windowWidth:  80,
		windowHeight: 24,
		messageStyle: LabelStyle,
		keys:         demoKeys,
		help:         help.New(),
	}
}

// Init schedules the first frame tick.
func (m *DemoModel) Init() tea.Cmd {
	return m.tick()
}

func (m *DemoModel) tick() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// Update handles messages for the demo model.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		if rw, ok := m.window.(resizableWindow); ok {
			rw.Resize(float64(msg.Width), float64(msg.Height))
		}

	case FrameTickMsg:
		// Frame boundary: edge queries first, then exactly one EndFrame.
		m.snap = m.snapshot()
		m.tracker.EndFrame()
		m.frame++
		return m, m.tick()
	}

	return m, nil
}

func (m *DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Grab):
		grabbed := !m.tracker.CursorGrabbed()
		if err := m.tracker.SetCursorGrabbed(m.window, grabbed); err != nil {
			m.setMessage(ErrorStyle, err.Error())
		} else {
			m.setMessage(ValueStyle, fmt.Sprintf("cursor grab: %v", grabbed))
		}

	case key.Matches(msg, m.keys.Hide):
		hidden := !m.tracker.CursorHidden()
		m.tracker.SetCursorHidden(m.window, hidden)
		m.setMessage(ValueStyle, fmt.Sprintf("cursor hidden: %v", hidden))

	case key.Matches(msg, m.keys.Icon):
		icons := input.CursorIcons()
		next := icons[(int(m.tracker.CursorIcon())+1)%len(icons)]
		m.tracker.SetCursorIcon(m.window, next)
		m.setMessage(ValueStyle, fmt.Sprintf("cursor icon: %s", next))

	case key.Matches(msg, m.keys.Center):
		center := input.Point{
			X: float64(m.windowWidth) / 2,
			Y: float64(m.windowHeight) / 2,
		}
		if err := m.tracker.SetCursorPosition(m.window, center); err != nil {
			m.setMessage(ErrorStyle, err.Error())
		} else {
			m.setMessage(ValueStyle, fmt.Sprintf("warped cursor to (%.0f, %.0f)", center.X, center.Y))
		}
	}

	return m, nil
}

// handleMouse feeds one raw terminal event into the tracker, computing the
// sample delta from consecutive positions since terminals only report
// absolute cells.
func (m *DemoModel) handleMouse(msg tea.MouseMsg) {
	pos := input.Point{X: float64(msg.X), Y: float64(msg.Y)}

	if m.haveMouse && pos != m.lastMouse {
		sample := pos.Sub(m.lastMouse).Scale(m.sensitivity)
		m.tracker.SetLastDelta(sample)
		m.tracker.AccumulateDelta(sample)
	}
	m.lastMouse = pos
	m.haveMouse = true
	m.tracker.SetLastPosition(pos)

	if button, ok := trackerButton(msg.Button); ok {
		switch msg.Action {
		case tea.MouseActionPress:
			m.tracker.SetButton(button, true)
		case tea.MouseActionRelease:
			m.tracker.SetButton(button, false)
		}
	}
}

// trackerButton maps a terminal mouse button to the tracker's vocabulary.
// Wheel pseudo-buttons and "none" (motion) do not map.
func trackerButton(b tea.MouseButton) (input.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonLeft, true
	case tea.MouseButtonRight:
		return input.ButtonRight, true
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle, true
	case tea.MouseButtonBackward:
		return input.ButtonBack, true
	case tea.MouseButtonForward:
		return input.ButtonForward, true
	default:
		return 0, false
	}
}

func (m *DemoModel) snapshot() frameSnapshot {
	snap := frameSnapshot{
		position:  m.tracker.Position(),
		delta:     m.tracker.Delta(),
		lastDelta: m.tracker.LastDelta(),
	}
	for _, b := range watchedButtons {
		snap.buttons = append(snap.buttons, buttonRow{
			button:       b,
			pressed:      m.tracker.ButtonPressed(b),
			justPressed:  m.tracker.ButtonJustPressed(b),
			justReleased: m.tracker.ButtonJustReleased(b),
		})
	}
	return snap
}

func (m *DemoModel) setMessage(style lipgloss.Style, text string) {
	m.messageStyle = style
	m.message = text
}

// View renders the last frame snapshot.
func (m *DemoModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render("pollframe demo"))
	b.WriteString(LabelStyle.Render(fmt.Sprintf("  frame %d", m.frame)))
	b.WriteString("\n\n")

	position := fmt.Sprintf("%s %s   %s %s   %s %s",
		LabelStyle.Render("position"), ValueStyle.Render(formatPoint(m.snap.position)),
		LabelStyle.Render("frame delta"), ValueStyle.Render(formatPoint(m.snap.delta)),
		LabelStyle.Render("sample delta"), ValueStyle.Render(formatPoint(m.snap.lastDelta)))
	b.WriteString(PanelStyle.Render(position))
	b.WriteString("\n")

	var rows []string
	for _, row := range m.snap.buttons {
		rows = append(rows, renderButtonRow(row))
	}
	b.WriteString(PanelStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	cursor := fmt.Sprintf("%s %s   %s %s   %s %s",
		LabelStyle.Render("icon"), ValueStyle.Render(m.tracker.CursorIcon().String()),
		LabelStyle.Render("grabbed"), renderFlag(m.tracker.CursorGrabbed()),
		LabelStyle.Render("hidden"), renderFlag(m.tracker.CursorHidden()))
	b.WriteString(PanelStyle.Render(cursor))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(m.messageStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func renderButtonRow(row buttonRow) string {
	state := LabelStyle.Render("up")
	switch {
	case row.justPressed:
		state = EdgeStyle.Render("just pressed")
	case row.justReleased:
		state = EdgeStyle.Render("just released")
	case row.pressed:
		state = PressedStyle.Render("held")
	}
	name := fmt.Sprintf("%-8s", row.button.String())
	return fmt.Sprintf("%s %s", LabelStyle.Render(name), state)
}

func renderFlag(on bool) string {
	if on {
		return PressedStyle.Render("yes")
	}
	return LabelStyle.Render("no")
}

func formatPoint(p input.Point) string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}
