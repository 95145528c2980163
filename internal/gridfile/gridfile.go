// Package gridfile loads grid definitions from YAML documents so grids can
// be rendered from files instead of code.
package gridfile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/young1lin/termgrid/grid"
)

// Document is the YAML form of a grid definition.
type Document struct {
	ColumnWidth *int     `yaml:"columnWidth"`
	PaddingSize *int     `yaml:"paddingSize"`
	Defaults    Defaults `yaml:"defaults"`
	Rows        []Row    `yaml:"rows"`
}

// Defaults is the YAML form of per-level default cell settings.
type Defaults struct {
	ColSpan   *int   `yaml:"colSpan"`
	HAlign    string `yaml:"hAlign"`
	VAlign    string `yaml:"vAlign"`
	BlankChar string `yaml:"blankChar"`
}

// Row is the YAML form of one grid row.
type Row struct {
	ColumnWidth *int     `yaml:"columnWidth"`
	PaddingSize *int     `yaml:"paddingSize"`
	Defaults    Defaults `yaml:"defaults"`
	Cells       []Cell   `yaml:"cells"`
}

// Cell is the YAML form of one cell.
type Cell struct {
	Content   string `yaml:"content"`
	ColSpan   *int   `yaml:"colSpan"`
	HAlign    string `yaml:"hAlign"`
	VAlign    string `yaml:"vAlign"`
	BlankChar string `yaml:"blankChar"`
}

// Load reads and parses a grid definition file.
func Load(path string) (grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("read grid file: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML grid definition into a renderable grid.
func Parse(data []byte) (grid.Grid, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return grid.Grid{}, fmt.Errorf("parse grid file: %w", err)
	}
	return doc.Grid()
}

// Grid converts the document into a grid.Grid, validating alignments, blank
// chars and column spans. Spans below 1 are rejected here so bad file input
// never reaches the library's construction panic.
func (d Document) Grid() (grid.Grid, error) {
	defaults, err := d.Defaults.options()
	if err != nil {
		return grid.Grid{}, fmt.Errorf("defaults: %w", err)
	}

	g := grid.Grid{
		Defaults:    defaults,
		ColumnWidth: d.ColumnWidth,
		PaddingSize: d.PaddingSize,
	}

	for i, r := range d.Rows {
		row, err := r.row()
		if err != nil {
			return grid.Grid{}, fmt.Errorf("row %d: %w", i, err)
		}
		g.Rows = append(g.Rows, row)
	}
	return g, nil
}

func (r Row) row() (grid.Row, error) {
	defaults, err := r.Defaults.options()
	if err != nil {
		return grid.Row{}, fmt.Errorf("defaults: %w", err)
	}

	row := grid.Row{
		Defaults:    defaults,
		ColumnWidth: r.ColumnWidth,
		PaddingSize: r.PaddingSize,
	}

	for i, c := range r.Cells {
		cell, err := c.cell()
		if err != nil {
			return grid.Row{}, fmt.Errorf("cell %d: %w", i, err)
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

func (c Cell) cell() (grid.Cell, error) {
	if err := validateSpan(c.ColSpan); err != nil {
		return grid.Cell{}, err
	}
	h, err := parseHAlign(c.HAlign)
	if err != nil {
		return grid.Cell{}, err
	}
	v, err := parseVAlign(c.VAlign)
	if err != nil {
		return grid.Cell{}, err
	}
	blank, err := parseBlankChar(c.BlankChar)
	if err != nil {
		return grid.Cell{}, err
	}
	return grid.Cell{
		Content:   c.Content,
		ColSpan:   c.ColSpan,
		HAlign:    h,
		VAlign:    v,
		BlankChar: blank,
	}, nil
}

func (d Defaults) options() (grid.Options, error) {
	if err := validateSpan(d.ColSpan); err != nil {
		return grid.Options{}, err
	}
	h, err := parseHAlign(d.HAlign)
	if err != nil {
		return grid.Options{}, err
	}
	v, err := parseVAlign(d.VAlign)
	if err != nil {
		return grid.Options{}, err
	}
	blank, err := parseBlankChar(d.BlankChar)
	if err != nil {
		return grid.Options{}, err
	}
	return grid.Options{ColSpan: d.ColSpan, HAlign: h, VAlign: v, BlankChar: blank}, nil
}

func validateSpan(span *int) error {
	if span != nil && *span < 1 {
		return fmt.Errorf("colSpan must be at least 1, got %d", *span)
	}
	return nil
}

func parseHAlign(name string) (*grid.HAlign, error) {
	if name == "" {
		return nil, nil
	}
	var h grid.HAlign
	switch strings.ToLower(name) {
	case "left":
		h = grid.HAlignLeft
	case "right":
		h = grid.HAlignRight
	case "center":
		h = grid.HAlignCenter
	case "fill":
		h = grid.HAlignFill
	default:
		return nil, fmt.Errorf("unknown horizontal alignment %q", name)
	}
	return &h, nil
}

func parseVAlign(name string) (*grid.VAlign, error) {
	if name == "" {
		return nil, nil
	}
	var v grid.VAlign
	switch strings.ToLower(name) {
	case "top":
		v = grid.VAlignTop
	case "bottom":
		v = grid.VAlignBottom
	case "middle":
		v = grid.VAlignMiddle
	default:
		return nil, fmt.Errorf("unknown vertical alignment %q", name)
	}
	return &v, nil
}

func parseBlankChar(s string) (*rune, error) {
	if s == "" {
		return nil, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if (r == utf8.RuneError && size == 1) || size != len(s) {
		return nil, fmt.Errorf("blankChar must be a single character, got %q", s)
	}
	return &r, nil
}
