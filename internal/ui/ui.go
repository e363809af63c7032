// Package ui provides the terminal front end using Bubble Tea: it renders
// the scene graph each frame and forwards gestures and commands to the
// state manager.
package ui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/state"
)

// chromeRows is the vertical space reserved for header and status bars.
const chromeRows = 3

// arrowStep is the orbit delta (degrees) applied per arrow key press.
const arrowStep = 5.0

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	width  int
	height int
	ready  bool

	// Drag tracking for pan gestures.
	dragging   bool
	dragMoved  bool
	lastMouseX int
	lastMouseY int

	statusMsg string
}

// New creates the root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{state: stateMgr}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles input events and routes them to the state manager.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = m.width > 20 && m.height > chromeRows+4

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "d":
		if m.state.ToggleLineMode() {
			m.statusMsg = "Draw mode: tap two stars to connect them"
		} else {
			m.statusMsg = "Draw mode off"
		}

	case "e":
		n := m.state.EraseAllLines()
		m.statusMsg = fmt.Sprintf("Erased %d lines", n)

	case "n":
		visible := !m.state.Snapshot().LabelsVisible
		m.state.SetLabelsVisible(visible)
		if visible {
			m.statusMsg = "Labels on"
		} else {
			m.statusMsg = "Labels off"
		}

	case "left":
		m.orbit(-arrowStep, 0)
	case "right":
		m.orbit(arrowStep, 0)
	case "up":
		m.orbit(0, arrowStep)
	case "down":
		m.orbit(0, -arrowStep)
	}

	return m, nil
}

// orbit delivers one discrete pan delta and consumes it immediately.
func (m Model) orbit(dx, dy float64) {
	m.state.Pan(dx, dy)
	m.state.ApplyPan()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return m, nil
	}

	// Canvas coordinates exclude the header row.
	canvasY := msg.Y - 1

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.dragMoved = false
		m.lastMouseX = msg.X
		m.lastMouseY = canvasY

	case tea.MouseActionMotion:
		if !m.dragging {
			break
		}
		dx := float64(msg.X - m.lastMouseX)
		dy := float64(canvasY - m.lastMouseY)
		if dx != 0 || dy != 0 {
			m.dragMoved = true
			// Dragging the field right turns the camera left, matching
			// grab-and-pull navigation; vertical likewise.
			m.state.Pan(-dx*2, dy*2)
			m.state.ApplyPan()
			m.lastMouseX = msg.X
			m.lastMouseY = canvasY
		}

	case tea.MouseActionRelease:
		wasDrag := m.dragMoved
		m.dragging = false
		m.dragMoved = false
		if wasDrag {
			break
		}
		// A press-release without motion is a tap.
		m.tap(msg.X, canvasY)
	}

	return m, nil
}

func (m *Model) tap(x, y int) {
	w, h := m.canvasSize()
	if w <= 0 || h <= 0 || y < 0 || y >= h {
		return
	}

	outcome := m.state.Tap(float64(x), float64(y), float64(w), float64(h))
	snap := m.state.Snapshot()

	switch outcome {
	case state.TapFocused:
		m.statusMsg = "Focused " + snap.SelectedName
	case state.TapBuffered:
		m.statusMsg = fmt.Sprintf("Picked %s — tap another star", snap.PendingName)
	case state.TapLineDrawn:
		m.statusMsg = fmt.Sprintf("Line drawn (%d total)", snap.LineCount)
	case state.TapSelfPick:
		m.statusMsg = "Already picked — tap a different star"
	case state.TapMiss:
		// Leaves prior selection untouched.
	}
}

func (m Model) canvasSize() (int, int) {
	return m.width, m.height - chromeRows
}

// View renders the header, the star field canvas, and the status bars.
func (m Model) View() string {
	if !m.ready {
		return "Star field requires a larger terminal"
	}

	w, h := m.canvasSize()
	snap := m.state.Snapshot()
	field := renderField(m.state.Graph(), w, h, snap.SelectedName)

	return m.renderHeader(snap) + "\n" + field.String() + "\n" + m.renderStatus(snap)
}

func (m Model) renderHeader(snap state.Snapshot) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorStarSelected))

	title := titleStyle.Render("Star Field")

	mode := dimStyle.Render("navigate")
	if snap.LineMode {
		mode = accentStyle.Render("draw")
	}

	labels := dimStyle.Render("labels off")
	if snap.LabelsVisible {
		labels = dimStyle.Render("labels on")
	}

	pose := dimStyle.Render(fmt.Sprintf("yaw %.0f° pitch %.0f°  %d stars  %d lines",
		pose2deg(snap.CameraPose.Yaw), pose2deg(snap.CameraPose.Pitch),
		snap.StarCount, snap.LineCount))

	return fmt.Sprintf("%s | %s | %s | %s", title, mode, labels, pose)
}

func (m Model) renderStatus(snap state.Snapshot) string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorStarSelected))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	line1 := m.statusMsg
	if line1 == "" && snap.SelectedInfo != "" {
		line1 = snap.SelectedInfo
	}
	if line1 == "" {
		line1 = "Tap a star to focus it"
	}

	help := "click: tap  drag: orbit  d: draw mode  e: erase lines  n: labels  q: quit"

	return accentStyle.Render(line1) + "\n" + dimStyle.Render(help)
}

func pose2deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
