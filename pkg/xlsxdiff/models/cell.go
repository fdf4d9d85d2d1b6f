// Package models defines data structures for sheet comparison.
package models

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cell represents a single cell inside a sheet's used bounding box.
// A nil *Cell stands for an absent cell (a column gap in the alignment).
type Cell struct {
	// Value is the raw stored representation. Formula cells keep their
	// formula text including the leading "=".
	Value string `json:"value" yaml:"value"`
	// IsFormula is set when the cell holds a formula.
	IsFormula bool `json:"is_formula,omitempty" yaml:"is_formula,omitempty"`
	// Comment is the cell note text (nil if the cell has none).
	Comment *string `json:"comment,omitempty" yaml:"comment,omitempty"`
	// Format is the style snapshot (nil if unknown).
	Format *FormatSignature `json:"format,omitempty" yaml:"format,omitempty"`
}

// NewCell builds a cell from its text. Text starting with "=" is
// classified as a formula.
func NewCell(value string) *Cell {
	return &Cell{Value: value, IsFormula: strings.HasPrefix(value, "=")}
}

// Text returns the trimmed value; empty for an absent cell.
func (c *Cell) Text() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

// CommentText returns the comment or nil for an absent cell.
func (c *Cell) CommentText() *string {
	if c == nil {
		return nil
	}
	return c.Comment
}

// FormatSignature returns the style snapshot or nil for an absent cell.
func (c *Cell) FormatSignature() *FormatSignature {
	if c == nil {
		return nil
	}
	return c.Format
}

// CellRef is a 1-based cell coordinate. It marshals as an A1 reference.
type CellRef struct {
	Row int
	Col int
}

// NewCellRef returns a pointer to the coordinate, for use in diff records.
func NewCellRef(row, col int) *CellRef {
	return &CellRef{Row: row, Col: col}
}

// String returns the A1 reference, e.g. "B3".
func (r CellRef) String() string {
	name, err := excelize.CoordinatesToCellName(r.Col, r.Row)
	if err != nil {
		return "?"
	}
	return name
}

// MarshalText implements encoding.TextMarshaler.
func (r CellRef) MarshalText() ([]byte, error) {
	name, err := excelize.CoordinatesToCellName(r.Col, r.Row)
	if err != nil {
		return nil, err
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *CellRef) UnmarshalText(text []byte) error {
	col, row, err := excelize.CellNameToCoordinates(string(text))
	if err != nil {
		return err
	}
	r.Row, r.Col = row, col
	return nil
}
