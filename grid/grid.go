// Package grid renders two-dimensional grids of text cells into aligned,
// padded plain text for terminal display.
//
// A Grid is a sequence of Rows, a Row a sequence of Cells. Cells can span
// multiple columns, align horizontally and vertically, and hold multi-line
// content. Settings cascade cell -> row defaults -> grid defaults -> hard
// default, resolved per property at render time.
//
// Rendering is a pure text-in/text-out computation with no side effects, so
// the output of one grid can be embedded verbatim as the content of a cell
// in another; the renderer treats it as ordinary multi-line content. Widths
// count Unicode codepoints, not bytes and not display cells.
package grid

import "strings"

// Grid is a vertical sequence of Rows.
type Grid struct {
	// Defaults apply to cells of rows that do not set the equivalent field.
	Defaults Options

	// ColumnWidth is the width in codepoints of each column, used by rows
	// that do not set their own.
	ColumnWidth *int

	// PaddingSize is the number of spaces between columns, used by rows that
	// do not set their own.
	PaddingSize *int

	// Rows holds the rows of the grid in top-to-bottom order.
	Rows []Row
}

// NewGrid creates a Grid from its rows.
func NewGrid(rows []Row) Grid {
	return Grid{Rows: rows}
}

// Render renders the grid to text. Every output line ends with a line
// terminator, so the result prints directly to a terminal. A grid with no
// rows renders to the empty string.
func (g Grid) Render() string {
	var sb strings.Builder
	for _, row := range g.Rows {
		row.render(&sb, g.Defaults, g.ColumnWidth, g.PaddingSize)
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (g Grid) String() string {
	return g.Render()
}

// GridBuilder configures a Grid through chained setters.
type GridBuilder struct {
	grid Grid
}

// BuildGrid starts a GridBuilder from rows.
func BuildGrid(rows []Row) *GridBuilder {
	return &GridBuilder{grid: NewGrid(rows)}
}

// DefaultColSpan sets the default column span for all cells of the grid.
// Panics if colSpan is 0.
func (b *GridBuilder) DefaultColSpan(colSpan int) *GridBuilder {
	if colSpan == 0 {
		panic("grid: column span cannot be 0")
	}
	b.grid.Defaults.ColSpan = ptr(colSpan)
	return b
}

// DefaultHAlign sets the default horizontal alignment for all cells of the
// grid.
func (b *GridBuilder) DefaultHAlign(h HAlign) *GridBuilder {
	b.grid.Defaults.HAlign = ptr(h)
	return b
}

// DefaultVAlign sets the default vertical alignment for all cells of the
// grid.
func (b *GridBuilder) DefaultVAlign(v VAlign) *GridBuilder {
	b.grid.Defaults.VAlign = ptr(v)
	return b
}

// DefaultBlankChar sets the default padding character for all cells of the
// grid.
func (b *GridBuilder) DefaultBlankChar(r rune) *GridBuilder {
	b.grid.Defaults.BlankChar = ptr(r)
	return b
}

// ColumnWidth sets the width of each column in the grid.
func (b *GridBuilder) ColumnWidth(width int) *GridBuilder {
	b.grid.ColumnWidth = ptr(width)
	return b
}

// PaddingSize sets the padding between columns in the grid.
func (b *GridBuilder) PaddingSize(size int) *GridBuilder {
	b.grid.PaddingSize = ptr(size)
	return b
}

// Build returns the configured Grid.
func (b *GridBuilder) Build() Grid {
	return b.grid
}
