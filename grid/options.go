package grid

// Hard defaults used when no level of the grid provides a value.
const (
	DefaultColSpan     = 1
	DefaultColumnWidth = 1
	DefaultPaddingSize = 1
	DefaultBlankChar   = ' '
)

// HAlign controls the horizontal alignment of a cell's content.
type HAlign int

const (
	// HAlignLeft aligns content to the left edge of the cell. (default)
	HAlignLeft HAlign = iota

	// HAlignRight aligns content to the right edge of the cell.
	HAlignRight

	// HAlignCenter centers content within the cell. When the blank count is
	// odd, the extra blank goes to the right.
	HAlignCenter

	// HAlignFill repeats the content until it covers the entire cell width.
	// Empty content has nothing to repeat and renders as blank chars instead.
	HAlignFill
)

// VAlign controls which output lines a cell's content occupies when other
// cells in the same row have more lines.
type VAlign int

const (
	// VAlignTop places content on the first lines of the row. (default)
	VAlignTop VAlign = iota

	// VAlignBottom places content on the last lines of the row.
	VAlignBottom

	// VAlignMiddle centers content vertically, rounding up when the extra
	// blank line count is odd.
	VAlignMiddle
)

// Options holds default cell settings for a Row or Grid. A nil field means
// "unset" and defers to the next level of the fallback chain.
type Options struct {
	// ColSpan is the default number of columns a cell spans.
	ColSpan *int

	// HAlign is the default horizontal alignment for cells.
	HAlign *HAlign

	// VAlign is the default vertical alignment for cells.
	VAlign *VAlign

	// BlankChar is the default fill character for padding and empty space.
	BlankChar *rune
}

// resolve returns the first non-nil value in the chain, or fallback when the
// whole chain is unset. Each tunable property resolves independently through
// cell -> row defaults -> grid defaults -> hard default.
func resolve[T any](fallback T, chain ...*T) T {
	for _, v := range chain {
		if v != nil {
			return *v
		}
	}
	return fallback
}

func ptr[T any](v T) *T {
	return &v
}
