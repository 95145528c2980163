package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View renders the preview UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	header := m.styles.Title.Render("termgrid") + " " + m.styles.Muted.Render(m.path)
	sections = append(sections, header)

	if m.err != nil {
		sections = append(sections, m.styles.Error.Render("error: "+m.err.Error()))
	}

	if m.output != "" {
		sections = append(sections, m.renderOutput())
	} else if m.err == nil {
		sections = append(sections, m.styles.Muted.Render("loading..."))
	}

	sections = append(sections, m.styles.Muted.Render("r reload • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderOutput frames the rendered grid, fitting it to the terminal. The
// grid itself counts codepoints; fitting to the terminal is a display-width
// concern, so truncation here goes through runewidth.
func (m Model) renderOutput() string {
	lines := strings.Split(strings.TrimSuffix(m.output, "\n"), "\n")

	if m.width > 0 {
		// Border and padding eat four columns.
		maxWidth := m.width - 4
		if maxWidth < 1 {
			maxWidth = 1
		}
		for i, line := range lines {
			lines[i] = runewidth.Truncate(line, maxWidth, "")
		}
	}

	return m.styles.Border.Render(strings.Join(lines, "\n"))
}
