package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, loadCmd(m.path)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case GridLoadedMsg:
		m.output = msg.Output
		m.err = nil
		return m, nil

	case LoadFailedMsg:
		m.err = msg.Err
		return m, nil

	case ReloadMsg:
		// Re-render, then go back to waiting for the next change.
		return m, tea.Batch(loadCmd(m.path), waitForReload(m.watcher))

	case WatchErrorMsg:
		m.err = msg.Err
		return m, waitForWatchError(m.watcher)
	}

	return m, nil
}
