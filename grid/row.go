package grid

import "strings"

// Row is a horizontal sequence of Cells rendered together. A row renders to
// as many output lines as its tallest cell has content lines.
type Row struct {
	// Defaults apply to cells that do not set the equivalent field.
	Defaults Options

	// ColumnWidth is the width in codepoints of each column. Nil defers to
	// the grid, then 1.
	ColumnWidth *int

	// PaddingSize is the number of spaces between columns. Nil defers to the
	// grid, then 1.
	PaddingSize *int

	// Cells holds the cells of the row in left-to-right order.
	Cells []Cell
}

// NewRow creates a Row from its cells.
func NewRow(cells []Cell) Row {
	return Row{Cells: cells}
}

// NewEmptyRow creates a Row holding a single empty cell spanning colSpan
// columns.
func NewEmptyRow(colSpan int) Row {
	return NewRow([]Cell{NewEmptyCell(colSpan)})
}

// NewFillRow creates a Row holding a single cell whose content repeats
// across colSpan columns.
func NewFillRow(content string, colSpan int) Row {
	return NewRow([]Cell{NewFillCell(content, colSpan)})
}

// render writes the row's output lines to sb. The caller passes grid-level
// defaults and layout as fallback values; width and padding resolve against
// the row's own fields before the hard defaults.
func (r Row) render(sb *strings.Builder, defaults Options, columnWidth, paddingSize *int) {
	width := resolve(DefaultColumnWidth, columnWidth, r.ColumnWidth)
	padding := resolve(DefaultPaddingSize, paddingSize, r.PaddingSize)

	cellLines := make([][]string, len(r.Cells))
	maxLines := 0
	for i, c := range r.Cells {
		cellLines[i] = splitLines(c.Content)
		if len(cellLines[i]) > maxLines {
			maxLines = len(cellLines[i])
		}
	}

	// The gap between cells is always plain spaces, never the blank char.
	gap := strings.Repeat(" ", padding)

	for lineIndex := 0; lineIndex < maxLines; lineIndex++ {
		for i, c := range r.Cells {
			span := resolve(DefaultColSpan, c.ColSpan, r.Defaults.ColSpan, defaults.ColSpan)
			h := resolve(HAlignLeft, c.HAlign, r.Defaults.HAlign, defaults.HAlign)
			v := resolve(VAlignTop, c.VAlign, r.Defaults.VAlign, defaults.VAlign)
			blank := resolve(DefaultBlankChar, c.BlankChar, r.Defaults.BlankChar, defaults.BlankChar)

			// A span-N cell absorbs the padding between the columns it
			// spans, so it lines up with N separate columns exactly.
			cellWidth := span*width + padding*(span-1)

			if i != 0 {
				sb.WriteString(gap)
			}
			sb.WriteString(cellLine(h, v, cellWidth, cellLines[i], maxLines, lineIndex, blank))
		}
		sb.WriteByte('\n')
	}
}

// Render renders the row on its own, using only its own defaults and layout.
func (r Row) Render() string {
	var sb strings.Builder
	r.render(&sb, r.Defaults, r.ColumnWidth, r.PaddingSize)
	return sb.String()
}

// String implements fmt.Stringer.
func (r Row) String() string {
	return r.Render()
}

// RowBuilder configures a Row through chained setters.
type RowBuilder struct {
	row Row
}

// BuildRow starts a RowBuilder from cells.
func BuildRow(cells []Cell) *RowBuilder {
	return &RowBuilder{row: NewRow(cells)}
}

// DefaultColSpan sets the default column span for cells of the row.
// Panics if colSpan is 0.
func (b *RowBuilder) DefaultColSpan(colSpan int) *RowBuilder {
	if colSpan == 0 {
		panic("grid: column span cannot be 0")
	}
	b.row.Defaults.ColSpan = ptr(colSpan)
	return b
}

// DefaultHAlign sets the default horizontal alignment for cells of the row.
func (b *RowBuilder) DefaultHAlign(h HAlign) *RowBuilder {
	b.row.Defaults.HAlign = ptr(h)
	return b
}

// DefaultVAlign sets the default vertical alignment for cells of the row.
func (b *RowBuilder) DefaultVAlign(v VAlign) *RowBuilder {
	b.row.Defaults.VAlign = ptr(v)
	return b
}

// DefaultBlankChar sets the default padding character for cells of the row.
func (b *RowBuilder) DefaultBlankChar(r rune) *RowBuilder {
	b.row.Defaults.BlankChar = ptr(r)
	return b
}

// ColumnWidth sets the width of each column in the row.
func (b *RowBuilder) ColumnWidth(width int) *RowBuilder {
	b.row.ColumnWidth = ptr(width)
	return b
}

// PaddingSize sets the padding between columns in the row.
func (b *RowBuilder) PaddingSize(size int) *RowBuilder {
	b.row.PaddingSize = ptr(size)
	return b
}

// Cells replaces the cells of the row.
func (b *RowBuilder) Cells(cells []Cell) *RowBuilder {
	b.row.Cells = cells
	return b
}

// Build returns the configured Row.
func (b *RowBuilder) Build() Row {
	return b.row
}
