package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/state"
)

func testModel(t *testing.T) (Model, *state.Manager) {
	t.Helper()
	mgr := state.NewManager(state.DefaultConfig())
	mgr.Reset([]catalog.Record{
		{Name: "Sol", Radius: 2, RA: 180, Dec: 0, Magnitude: 0, Size: 3},
	}, catalog.Stats{Total: 1, Loaded: 1})

	m := New(mgr)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), mgr
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m, _ := testModel(t)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q did not quit")
	}
}

func TestUpdate_ToggleDrawMode(t *testing.T) {
	m, mgr := testModel(t)

	m.Update(keyMsg("d"))
	if !mgr.Snapshot().LineMode {
		t.Fatal("d did not arm line mode")
	}

	m.Update(keyMsg("d"))
	if mgr.Snapshot().LineMode {
		t.Fatal("second d did not disarm line mode")
	}
}

func TestUpdate_LabelToggle(t *testing.T) {
	m, mgr := testModel(t)

	m.Update(keyMsg("n"))
	if mgr.Snapshot().LabelsVisible {
		t.Fatal("n did not hide labels")
	}
	m.Update(keyMsg("n"))
	if !mgr.Snapshot().LabelsVisible {
		t.Fatal("second n did not restore labels")
	}
}

func TestUpdate_ArrowOrbits(t *testing.T) {
	m, mgr := testModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if mgr.Snapshot().CameraPose.Yaw == 0 {
		t.Fatal("right arrow did not orbit")
	}
}

func TestUpdate_MouseTapFocuses(t *testing.T) {
	m, mgr := testModel(t)

	// Canvas row 10 is screen row 11 (header offset). Sol projects to
	// the center of the 80x21 canvas.
	press := tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	updated, _ := m.Update(press)
	updated, _ = updated.(Model).Update(release)
	_ = updated

	if got := mgr.Snapshot().SelectedName; got != "Sol" {
		t.Fatalf("SelectedName = %q after tap, want Sol", got)
	}
}

func TestUpdate_MouseDragOrbitsWithoutTapping(t *testing.T) {
	m, mgr := testModel(t)

	msgs := []tea.MouseMsg{
		{X: 40, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 45, Y: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		{X: 45, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	}

	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}

	snap := mgr.Snapshot()
	if snap.CameraPose.Yaw == 0 {
		t.Error("drag did not orbit the camera")
	}
	if snap.SelectedName != "" {
		t.Error("drag release was treated as a tap")
	}
}

func TestView_ShowsChrome(t *testing.T) {
	m, _ := testModel(t)

	view := m.View()
	for _, want := range []string{"Star Field", "navigate", "labels on", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// The view fills the terminal height exactly.
	if got := strings.Count(view, "\n") + 1; got != 24 {
		t.Errorf("view has %d rows, want 24", got)
	}
}

func TestView_TooSmall(t *testing.T) {
	mgr := state.NewManager(state.DefaultConfig())
	m := New(mgr)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 4})
	view := updated.(Model).View()
	if !strings.Contains(view, "larger terminal") {
		t.Errorf("small-terminal view = %q", view)
	}
}
