package parser

import "github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"

// FindBounds finds the used bounding box of row-major cell values as
// returned by excelize GetRows. Indices in the result are 1-based.
func FindBounds(rows [][]string) models.Bounds {
	return FindBoundsFunc(rows, func(_, _ int, value string) bool {
		return value != ""
	})
}

// FindBoundsFunc is FindBounds with a custom test for used cells. used
// receives 1-based coordinates and the cell value.
func FindBoundsFunc(rows [][]string, used func(row, col int, value string) bool) models.Bounds {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if !used(rowIdx+1, colIdx+1, cell) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.EmptyBounds
	}
	return models.Bounds{
		MinRow: minRow + 1,
		MinCol: minCol + 1,
		MaxRow: maxRow + 1,
		MaxCol: maxCol + 1,
	}
}
