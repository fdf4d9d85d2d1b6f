package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// NoDiffsSheet is the only sheet of a summary without differences.
const NoDiffsSheet = "No_diffs"

type summarySheet struct {
	name   string
	header []any
	rows   [][]any
}

// WriteSummary writes a workbook with one sheet per non-empty category,
// or a single NoDiffsSheet when the result is empty.
func WriteSummary(path string, res *models.DiffResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := summarySheets(res)
	if len(sheets) == 0 {
		sheets = []summarySheet{{
			name:   NoDiffsSheet,
			header: []any{"info"},
			rows:   [][]any{{"No differences detected"}},
		}}
	}

	defaultSheet := f.GetSheetName(0)
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		if err := writeTable(f, s); err != nil {
			return fmt.Errorf("write summary sheet %s: %w", s.name, err)
		}
	}
	return f.SaveAs(path)
}

func writeTable(f *excelize.File, s summarySheet) error {
	if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
		return err
	}
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func summarySheets(res *models.DiffResult) []summarySheet {
	if res == nil {
		return nil
	}
	var sheets []summarySheet
	add := func(name string, header []any, changes []models.Change, row func(models.Change) []any) {
		if len(changes) == 0 {
			return
		}
		s := summarySheet{name: name, header: header}
		for _, c := range changes {
			s.rows = append(s.rows, row(c))
		}
		sheets = append(sheets, s)
	}
	values := func(c models.Change) []any {
		return []any{Coord(c.Primary), Coord(c.Secondary), Value(c.PrimaryValue), Value(c.SecondaryValue)}
	}

	add("Text", []any{"p_coord", "s_coord", "p_text", "s_text"}, res.Text, values)
	add("Formulas", []any{"p_coord", "s_coord", "p_formula", "s_formula"}, res.Formulas, values)
	add("Formatting", []any{"p_coord", "s_coord", "details"}, res.Formatting, func(c models.Change) []any {
		return []any{Coord(c.Primary), Coord(c.Secondary), Details(c.Fields)}
	})
	if h := res.Hidden; !h.Empty() {
		sheets = append(sheets, summarySheet{
			name:   "Hidden",
			header: []any{"rows_added", "rows_removed", "cols_added", "cols_removed"},
			rows: [][]any{{
				fmt.Sprint(h.RowsAdded), fmt.Sprint(h.RowsRemoved),
				fmt.Sprint(h.ColsAdded), fmt.Sprint(h.ColsRemoved),
			}},
		})
	}
	add("Comments", []any{"p_coord", "s_coord", "p_comment", "s_comment"}, res.Comments, values)
	return sheets
}
