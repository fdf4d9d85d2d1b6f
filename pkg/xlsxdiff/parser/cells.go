// Package parser loads workbook sheets into grid models.
package parser

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// Loader reads sheets of one workbook. It caches format signatures by
// style ID, so cells sharing a style share one signature.
type Loader struct {
	f       *excelize.File
	formats map[int]*models.FormatSignature
}

// NewLoader creates a Loader for an open workbook.
func NewLoader(f *excelize.File) *Loader {
	return &Loader{
		f:       f,
		formats: make(map[int]*models.FormatSignature),
	}
}

// LoadGrid reads one sheet of f into a Grid.
func LoadGrid(f *excelize.File, sheetName string) (*models.Grid, error) {
	return NewLoader(f).Grid(sheetName)
}

// Grid reads the used region of a sheet: raw values, formulas, comments
// and format signatures. A formula cell counts as used even without a
// cached value. Values and comments are forced to valid UTF-8.
func (l *Loader) Grid(sheetName string) (*models.Grid, error) {
	rows, err := l.f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	formulas, err := l.formulas(sheetName, rows)
	if err != nil {
		return nil, err
	}

	g := &models.Grid{Name: sheetName}
	g.Bounds = FindBoundsFunc(rows, func(row, col int, value string) bool {
		_, isFormula := formulas[cellKey{row, col}]
		return value != "" || isFormula
	})
	if g.Bounds.Empty() {
		return g, nil
	}

	comments, err := l.comments(sheetName)
	if err != nil {
		return nil, err
	}

	for r := g.Bounds.MinRow; r <= g.Bounds.MaxRow; r++ {
		row := models.Row{Index: r, Cells: make([]*models.Cell, 0, g.Bounds.ColCount())}
		for c := g.Bounds.MinCol; c <= g.Bounds.MaxCol; c++ {
			cellName, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return nil, err
			}
			cell, err := l.cell(sheetName, cellName, rows, formulas, r, c)
			if err != nil {
				return nil, err
			}
			if text, ok := comments[cellName]; ok {
				cell.Comment = &text
			}
			row.Cells = append(row.Cells, cell)
		}
		g.Rows = append(g.Rows, row)
	}

	return g, nil
}

type cellKey struct {
	row, col int
}

// formulas collects the formula of every cell GetRows reported. Formula
// cells are always part of the row slice, with an empty value when the
// workbook holds no cached result.
func (l *Loader) formulas(sheetName string, rows [][]string) (map[cellKey]string, error) {
	result := make(map[cellKey]string)
	for r, row := range rows {
		for c := range row {
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			formula, err := l.f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("read formula %s: %w", cellName, err)
			}
			if formula != "" {
				result[cellKey{r + 1, c + 1}] = formula
			}
		}
	}
	return result, nil
}

func (l *Loader) cell(sheetName, cellName string, rows [][]string, formulas map[cellKey]string, r, c int) (*models.Cell, error) {
	value := ""
	if r-1 < len(rows) && c-1 < len(rows[r-1]) {
		value = rows[r-1][c-1]
	}
	cell := models.NewCell(validText(value))

	if formula, ok := formulas[cellKey{r, c}]; ok {
		cell.Value = "=" + strings.TrimPrefix(formula, "=")
		cell.IsFormula = true
	}

	styleID, err := l.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return nil, fmt.Errorf("read style %s: %w", cellName, err)
	}
	cell.Format = l.Format(styleID)

	return cell, nil
}

// Format returns the signature of a style ID. An unreadable style
// resolves to a signature with every attribute absent.
func (l *Loader) Format(styleID int) *models.FormatSignature {
	if sig, ok := l.formats[styleID]; ok {
		return sig
	}
	style, err := l.f.GetStyle(styleID)
	if err != nil {
		log.WithError(err).WithField("style", styleID).Warn("style unreadable, treating as absent")
		style = nil
	}
	sig := ExtractFormat(style)
	l.formats[styleID] = sig
	return sig
}

// comments maps cell names to comment text for a sheet.
func (l *Loader) comments(sheetName string) (map[string]string, error) {
	list, err := l.f.GetComments(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}
	result := make(map[string]string, len(list))
	for _, c := range list {
		text := c.Text
		if text == "" {
			var sb strings.Builder
			for _, run := range c.Paragraph {
				sb.WriteString(run.Text)
			}
			text = sb.String()
		}
		result[c.Cell] = validText(text)
	}
	return result, nil
}

// validText replaces invalid UTF-8 sequences with U+FFFD.
func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
