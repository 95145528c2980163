// Package tui provides a live terminal preview of a grid definition file,
// re-rendering whenever the file changes on disk.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/termgrid/internal/gridfile"
	"github.com/young1lin/termgrid/internal/watch"
)

// Model represents the preview state.
type Model struct {
	// Grid file being previewed
	path    string
	watcher watch.Interface

	// Last successful render and last load error. A failed reload keeps the
	// previous output on screen next to the error.
	output string
	err    error

	// Terminal size
	width  int
	height int

	quitting bool

	styles Styles
}

// Styles contains the Lipgloss styles for the preview UI.
type Styles struct {
	Border lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the default preview styles.
func DefaultStyles() Styles {
	var styles Styles

	styles.Border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("239"))

	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	styles.Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	return styles
}

// NewModel creates a preview model for a grid file. The watcher drives
// reloads; tests can pass a watch.TestWatcher.
func NewModel(path string, watcher watch.Interface) Model {
	return Model{
		path:    path,
		watcher: watcher,
		styles:  DefaultStyles(),
	}
}

// Init loads the file and starts listening for changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCmd(m.path), waitForReload(m.watcher), waitForWatchError(m.watcher))
}

// loadCmd loads and renders the grid file.
func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		g, err := gridfile.Load(path)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return GridLoadedMsg{Output: g.Render()}
	}
}

// waitForReload blocks until the watcher reports a file change.
func waitForReload(w watch.Interface) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Reloads(); ok {
			return ReloadMsg{}
		}
		return nil
	}
}

// waitForWatchError blocks until the watcher reports an error.
func waitForWatchError(w watch.Interface) tea.Cmd {
	return func() tea.Msg {
		if err, ok := <-w.Errors(); ok {
			return WatchErrorMsg{Err: err}
		}
		return nil
	}
}
