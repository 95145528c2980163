package grid

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRowRenderBasics(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want string
	}{
		{
			name: "two cells no padding",
			row: BuildRow([]Cell{NewCell("1", 1), NewCell("1", 1)}).
				DefaultBlankChar('.').
				ColumnWidth(3).
				PaddingSize(0).
				Build(),
			want: "1..1..\n",
		},
		{
			name: "two cells padding one",
			row: BuildRow([]Cell{NewCell("1", 1), NewCell("1", 1)}).
				DefaultBlankChar('.').
				ColumnWidth(3).
				Build(),
			want: "1.. 1..\n",
		},
		{
			name: "zero cells render nothing",
			row:  NewRow(nil),
			want: "",
		},
		{
			name: "padding gap stays plain spaces",
			row: BuildRow([]Cell{NewCell("a", 1), NewCell("b", 1)}).
				DefaultBlankChar('#').
				ColumnWidth(2).
				PaddingSize(2).
				Build(),
			want: "a#  b#\n",
		},
		{
			name: "hard defaults width 1 padding 1",
			row:  NewRow([]Cell{NewCell("ab", 1), NewCell("c", 1)}),
			want: "a c\n",
		},
		{
			name: "multi-line top placement",
			row: BuildRow([]Cell{NewCell("1", 1), NewCell("1\n111\n1", 1)}).
				DefaultHAlign(HAlignCenter).
				DefaultBlankChar('.').
				ColumnWidth(6).
				Build(),
			want: "..1... ..1...\n...... .111..\n...... ..1...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Render(); got != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRowSpanWidthFormula(t *testing.T) {
	// A span-N cell must be exactly N*W + P*(N-1) wide.
	for _, span := range []int{1, 2, 3, 6} {
		row := BuildRow([]Cell{NewCell("x", span)}).
			ColumnWidth(3).
			PaddingSize(2).
			Build()
		line := strings.TrimSuffix(row.Render(), "\n")
		want := span*3 + 2*(span-1)
		if got := utf8.RuneCountInString(line); got != want {
			t.Errorf("span %d: line width %d, want %d", span, got, want)
		}
	}
}

func TestRowSingleCellWidthProperty(t *testing.T) {
	// One cell, one line: exactly W codepoints plus the terminator.
	for _, width := range []int{1, 2, 5, 13} {
		row := BuildRow([]Cell{NewCell("x", 1)}).ColumnWidth(width).Build()
		got := row.Render()
		if !strings.HasSuffix(got, "\n") {
			t.Fatalf("width %d: output %q does not end with terminator", width, got)
		}
		if n := utf8.RuneCountInString(got) - 1; n != width {
			t.Errorf("width %d: rendered %d codepoints", width, n)
		}
	}
}

func TestRowDefaultPrecedence(t *testing.T) {
	// Cell settings beat row defaults; row defaults fill the rest.
	row := BuildRow([]Cell{
		NewCell("a", 1),
		BuildCell("b", 1).HAlign(HAlignRight).BlankChar('-').Build(),
	}).
		DefaultHAlign(HAlignCenter).
		DefaultBlankChar('.').
		ColumnWidth(3).
		Build()

	want := ".a. --b\n"
	if got := row.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNewEmptyRowAndFillRow(t *testing.T) {
	empty := BuildRow(NewEmptyRow(2).Cells).
		DefaultBlankChar('.').
		ColumnWidth(3).
		Build()
	if got, want := empty.Render(), ".......\n"; got != want {
		t.Errorf("empty row = %q, want %q", got, want)
	}

	fill := BuildRow(NewFillRow("-", 2).Cells).
		ColumnWidth(3).
		Build()
	if got, want := fill.Render(), "-------\n"; got != want {
		t.Errorf("fill row = %q, want %q", got, want)
	}
}

func TestRowStringMatchesRender(t *testing.T) {
	row := BuildRow([]Cell{NewCell("a", 1)}).ColumnWidth(4).Build()
	if row.String() != row.Render() {
		t.Error("String() and Render() disagree")
	}
}
