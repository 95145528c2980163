package grid

// Cell is the smallest content unit of a grid. Its content may contain line
// breaks, including the full output of another rendered Grid.
type Cell struct {
	// Content is the text of the cell. Multi-line content makes the owning
	// row render multiple output lines.
	Content string

	// ColSpan is the number of columns this cell spreads into. Nil defers to
	// the row's defaults, then the grid's, then 1.
	ColSpan *int

	// HAlign overrides the horizontal alignment for this cell.
	HAlign *HAlign

	// VAlign overrides the vertical alignment for this cell.
	VAlign *VAlign

	// BlankChar overrides the padding character for this cell.
	BlankChar *rune
}

// NewCell creates a Cell from its content and column span.
// Panics if colSpan is 0; a zero span is a programming error, not a value
// that can be coerced.
func NewCell(content string, colSpan int) Cell {
	if colSpan == 0 {
		panic("grid: column span cannot be 0")
	}
	return Cell{Content: content, ColSpan: ptr(colSpan)}
}

// NewEmptyCell creates a Cell with empty content spanning colSpan columns.
func NewEmptyCell(colSpan int) Cell {
	return NewCell("", colSpan)
}

// NewFillCell creates a Cell whose content repeats to fill its entire width.
func NewFillCell(content string, colSpan int) Cell {
	return BuildCell(content, colSpan).HAlign(HAlignFill).Build()
}

// CellBuilder configures a Cell through chained setters.
type CellBuilder struct {
	cell Cell
}

// BuildCell starts a CellBuilder from content and column span.
// Panics if colSpan is 0.
func BuildCell(content string, colSpan int) *CellBuilder {
	return &CellBuilder{cell: NewCell(content, colSpan)}
}

// Content sets the content of the cell.
func (b *CellBuilder) Content(content string) *CellBuilder {
	b.cell.Content = content
	return b
}

// ColSpan sets the column span of the cell. Panics if colSpan is 0.
func (b *CellBuilder) ColSpan(colSpan int) *CellBuilder {
	if colSpan == 0 {
		panic("grid: column span cannot be 0")
	}
	b.cell.ColSpan = ptr(colSpan)
	return b
}

// HAlign sets the horizontal alignment of the cell.
func (b *CellBuilder) HAlign(h HAlign) *CellBuilder {
	b.cell.HAlign = ptr(h)
	return b
}

// VAlign sets the vertical alignment of the cell.
func (b *CellBuilder) VAlign(v VAlign) *CellBuilder {
	b.cell.VAlign = ptr(v)
	return b
}

// BlankChar sets the padding character of the cell.
func (b *CellBuilder) BlankChar(r rune) *CellBuilder {
	b.cell.BlankChar = ptr(r)
	return b
}

// Build returns the configured Cell.
func (b *CellBuilder) Build() Cell {
	return b.cell
}
