package models

// Bounds represents the used bounding box of a sheet: the minimal
// rectangle containing at least one non-empty cell.
type Bounds struct {
	// MinRow is the first used row (1-based).
	MinRow int `json:"min_row" yaml:"min_row"`
	// MinCol is the first used column (1-based).
	MinCol int `json:"min_col" yaml:"min_col"`
	// MaxRow is the last used row (1-based, inclusive). Zero for an empty sheet.
	MaxRow int `json:"max_row" yaml:"max_row"`
	// MaxCol is the last used column (1-based, inclusive). Zero for an empty sheet.
	MaxCol int `json:"max_col" yaml:"max_col"`
}

// EmptyBounds is the degenerate box of a sheet without non-empty cells.
var EmptyBounds = Bounds{MinRow: 1, MinCol: 1}

// Empty reports whether the box contains no cells.
func (b Bounds) Empty() bool {
	return b.MaxRow < b.MinRow || b.MaxCol < b.MinCol
}

// RowCount returns the number of rows spanned by the box.
func (b Bounds) RowCount() int {
	if b.Empty() {
		return 0
	}
	return b.MaxRow - b.MinRow + 1
}

// ColCount returns the number of columns spanned by the box.
func (b Bounds) ColCount() int {
	if b.Empty() {
		return 0
	}
	return b.MaxCol - b.MinCol + 1
}

// Contains reports whether the 1-based coordinates lie inside the box.
func (b Bounds) Contains(row, col int) bool {
	return !b.Empty() && row >= b.MinRow && row <= b.MaxRow && col >= b.MinCol && col <= b.MaxCol
}
