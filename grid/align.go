package grid

import (
	"strings"
	"unicode/utf8"
)

// splitLines splits cell content into its constituent lines. A single
// trailing line terminator does not produce a trailing empty line, so a
// rendered grid embedded as content contributes exactly as many lines as it
// has terminators. Empty content is one empty line.
func splitLines(content string) []string {
	if content == "" {
		return []string{""}
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// cellLine renders one output line of a cell: the padded content line when
// lineIndex falls inside the span of lines the vertical alignment assigns to
// this cell, otherwise a run of blank chars.
func cellLine(h HAlign, v VAlign, width int, lines []string, maxLines, lineIndex int, blank rune) string {
	start := 0
	switch v {
	case VAlignBottom:
		start = maxLines - len(lines)
	case VAlignMiddle:
		start = (maxLines - len(lines)) / 2
	}
	if lineIndex >= start && lineIndex < start+len(lines) {
		return pad(h, lines[lineIndex-start], width, blank)
	}
	return strings.Repeat(string(blank), width)
}

// pad aligns s within width codepoints, filling the remainder with blank.
// Content longer than width is truncated, never wrapped.
func pad(h HAlign, s string, width int, blank rune) string {
	length := utf8.RuneCountInString(s)
	if length >= width {
		return truncate(s, width)
	}
	blanks := width - length
	switch h {
	case HAlignRight:
		return strings.Repeat(string(blank), blanks) + s
	case HAlignCenter:
		left := blanks / 2
		right := blanks - left
		return strings.Repeat(string(blank), left) + s + strings.Repeat(string(blank), right)
	case HAlignFill:
		if length == 0 {
			// Nothing to repeat; treat the cell as blank.
			return strings.Repeat(string(blank), width)
		}
		return truncate(strings.Repeat(s, width/length+1), width)
	default:
		return s + strings.Repeat(string(blank), blanks)
	}
}

// truncate cuts s to at most n codepoints. The cut always lands on a rune
// boundary, so multi-byte characters are never split.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
