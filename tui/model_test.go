package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/termgrid/internal/watch"
)

func TestUpdateGridLoaded(t *testing.T) {
	m := NewModel("grid.yaml", watch.NewTestWatcher())
	m.err = errors.New("stale")

	updated, _ := m.Update(GridLoadedMsg{Output: "a b\n"})
	got := updated.(Model)

	if got.output != "a b\n" {
		t.Errorf("output = %q, want %q", got.output, "a b\n")
	}
	if got.err != nil {
		t.Errorf("err = %v, want nil after successful load", got.err)
	}
}

func TestUpdateLoadFailedKeepsOutput(t *testing.T) {
	m := NewModel("grid.yaml", watch.NewTestWatcher())
	m.output = "previous\n"

	updated, _ := m.Update(LoadFailedMsg{Err: errors.New("bad yaml")})
	got := updated.(Model)

	if got.output != "previous\n" {
		t.Errorf("output = %q, want previous render kept", got.output)
	}
	if got.err == nil {
		t.Error("err = nil, want load error recorded")
	}
}

func TestUpdateReloadIssuesCommands(t *testing.T) {
	m := NewModel("grid.yaml", watch.NewTestWatcher())

	_, cmd := m.Update(ReloadMsg{})
	if cmd == nil {
		t.Fatal("ReloadMsg produced no command")
	}
}

func TestUpdateQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c", "esc"} {
		t.Run(key, func(t *testing.T) {
			m := NewModel("grid.yaml", watch.NewTestWatcher())

			var msg tea.KeyMsg
			switch key {
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			updated, cmd := m.Update(msg)
			if !updated.(Model).quitting {
				t.Error("model not quitting")
			}
			if cmd == nil {
				t.Error("expected tea.Quit command")
			}
		})
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := NewModel("grid.yaml", watch.NewTestWatcher())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := updated.(Model)

	if got.width != 80 || got.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", got.width, got.height)
	}
}

func TestViewShowsErrorAndOutput(t *testing.T) {
	m := NewModel("grid.yaml", watch.NewTestWatcher())
	m.output = "xy\n"
	m.err = errors.New("boom")

	view := m.View()
	if !strings.Contains(view, "boom") {
		t.Error("view does not show the error")
	}
	if !strings.Contains(view, "xy") {
		t.Error("view does not show the last render")
	}
}

func TestViewQuitting(t *testing.T) {
	m := NewModel("grid.yaml", watch.NewTestWatcher())
	m.quitting = true

	if got := m.View(); got != "" {
		t.Errorf("View() = %q, want empty while quitting", got)
	}
}
