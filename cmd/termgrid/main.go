// Command termgrid renders a YAML grid definition to aligned plain text.
//
// Usage:
//
//	termgrid grid.yaml        render the file to stdout
//	termgrid < grid.yaml      render stdin to stdout
//	termgrid -watch grid.yaml live preview, re-rendered on every save
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/termgrid/internal/gridfile"
	"github.com/young1lin/termgrid/internal/watch"
	"github.com/young1lin/termgrid/tui"
)

func main() {
	watchFlag := flag.Bool("watch", false, "preview the grid and re-render when the file changes")
	flag.Parse()

	if err := run(*watchFlag, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "termgrid: %v\n", err)
		os.Exit(1)
	}
}

func run(watchMode bool, path string) error {
	if watchMode {
		if path == "" {
			return fmt.Errorf("-watch requires a grid file argument")
		}
		return runPreview(path)
	}

	if path == "" {
		return renderStdin()
	}

	g, err := gridfile.Load(path)
	if err != nil {
		return err
	}
	fmt.Print(g.Render())
	return nil
}

func renderStdin() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	g, err := gridfile.Parse(data)
	if err != nil {
		return err
	}
	fmt.Print(g.Render())
	return nil
}

func runPreview(path string) error {
	watcher, err := watch.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer watcher.Close()

	p := tea.NewProgram(tui.NewModel(path, watcher))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
