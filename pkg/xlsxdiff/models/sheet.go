package models

import "strings"

// RowSeparator joins cell texts in a row signature. It is stripped from
// cell text first, so it never occurs inside a part.
const RowSeparator = "\x1f"

// Row is one sheet row restricted to the grid's column span.
type Row struct {
	// Index is the sheet row number (1-based).
	Index int `json:"index" yaml:"index"`
	// Cells holds one entry per column from Bounds.MinCol to Bounds.MaxCol.
	Cells []*Cell `json:"cells" yaml:"cells"`
}

// Grid is the in-memory model of one sheet's used region.
type Grid struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// Bounds is the used bounding box.
	Bounds Bounds `json:"bounds" yaml:"bounds"`
	// Rows holds one entry per row from Bounds.MinRow to Bounds.MaxRow.
	Rows []Row `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// NewGrid builds a grid anchored at A1 from row-major cell texts. Rows
// shorter than the widest one are padded with empty cells.
func NewGrid(name string, values [][]string) *Grid {
	width := 0
	for _, row := range values {
		width = max(width, len(row))
	}
	g := &Grid{Name: name, Bounds: EmptyBounds}
	if len(values) == 0 || width == 0 {
		return g
	}
	g.Bounds = Bounds{MinRow: 1, MinCol: 1, MaxRow: len(values), MaxCol: width}
	for i, row := range values {
		cells := make([]*Cell, width)
		for j := range cells {
			v := ""
			if j < len(row) {
				v = row[j]
			}
			cells[j] = NewCell(v)
		}
		g.Rows = append(g.Rows, Row{Index: i + 1, Cells: cells})
	}
	return g
}

// Cell returns the cell at 1-based coordinates, or nil outside the box.
func (g *Grid) Cell(row, col int) *Cell {
	if g == nil || !g.Bounds.Contains(row, col) {
		return nil
	}
	r := g.Rows[row-g.Bounds.MinRow]
	idx := col - g.Bounds.MinCol
	if idx >= len(r.Cells) {
		return nil
	}
	return r.Cells[idx]
}

// RowNumbers returns the sheet row numbers covered by the box.
func (g *Grid) RowNumbers() []int {
	if g == nil {
		return nil
	}
	nums := make([]int, 0, g.Bounds.RowCount())
	for r := g.Bounds.MinRow; r <= g.Bounds.MaxRow && !g.Bounds.Empty(); r++ {
		nums = append(nums, r)
	}
	return nums
}

// ColNumbers returns the sheet column numbers covered by the box.
func (g *Grid) ColNumbers() []int {
	if g == nil {
		return nil
	}
	nums := make([]int, 0, g.Bounds.ColCount())
	for c := g.Bounds.MinCol; c <= g.Bounds.MaxCol && !g.Bounds.Empty(); c++ {
		nums = append(nums, c)
	}
	return nums
}

// CellTexts returns the trimmed text of every cell of a row, in column order.
func (g *Grid) CellTexts(row int) []string {
	texts := make([]string, 0, g.Bounds.ColCount())
	for _, col := range g.ColNumbers() {
		texts = append(texts, g.Cell(row, col).Text())
	}
	return texts
}

// RowSignature concatenates the row's cell texts with RowSeparator.
func (g *Grid) RowSignature(row int) string {
	texts := g.CellTexts(row)
	for i, t := range texts {
		texts[i] = strings.ReplaceAll(t, RowSeparator, "")
	}
	return strings.Join(texts, RowSeparator)
}
