package parser

import (
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "B2", "Item"))
	require.NoError(t, f.SetCellValue(sheet, "C2", "Amount"))
	require.NoError(t, f.SetCellValue(sheet, "B3", "Rent"))
	require.NoError(t, f.SetCellValue(sheet, "C3", 1200))
	require.NoError(t, f.SetCellValue(sheet, "B4", "Food"))
	require.NoError(t, f.SetCellValue(sheet, "C4", 350.5))
	require.NoError(t, f.SetCellFormula(sheet, "C5", "SUM(C3:C4)"))
	require.NoError(t, f.SetCellValue(sheet, "B5", "Total"))

	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Family: "Arial", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
		Border:    []excelize.Border{{Type: "bottom", Style: 1, Color: "000000"}},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "C2", bold))

	percent, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "C4", "C4", percent))

	require.NoError(t, f.AddComment(sheet, excelize.Comment{Cell: "C3", Author: "audit", Text: "needs review"}))

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadGrid(t *testing.T) {
	f, err := excelize.OpenFile(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	g, err := LoadGrid(f, "Sheet1")
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", g.Name)
	assert.Equal(t, 2, g.Bounds.MinRow)
	assert.Equal(t, 2, g.Bounds.MinCol)
	assert.Equal(t, 5, g.Bounds.MaxRow)
	assert.Equal(t, 3, g.Bounds.MaxCol)
	require.Len(t, g.Rows, 4)
	assert.Equal(t, 2, g.Rows[0].Index)
	assert.Len(t, g.Rows[0].Cells, 2)

	assert.Equal(t, "Item", g.Cell(2, 2).Value)
	assert.Equal(t, "1200", g.Cell(3, 3).Value)
	assert.False(t, g.Cell(3, 3).IsFormula)
	assert.Nil(t, g.Cell(1, 1), "cells outside the used box are not visited")

	total := g.Cell(5, 3)
	assert.True(t, total.IsFormula)
	assert.Equal(t, "=SUM(C3:C4)", total.Value)

	require.NotNil(t, g.Cell(3, 3).Comment)
	assert.Contains(t, *g.Cell(3, 3).Comment, "needs review")
	assert.Nil(t, g.Cell(3, 2).Comment)

	assert.Equal(t, "Item\x1fAmount", g.RowSignature(2))
}

func TestLoadGridFormats(t *testing.T) {
	f, err := excelize.OpenFile(writeFixture(t))
	require.NoError(t, err)
	defer f.Close()

	g, err := LoadGrid(f, "Sheet1")
	require.NoError(t, err)

	header := g.Cell(2, 2).Format
	require.NotNil(t, header)
	require.NotNil(t, header.Font.Bold)
	assert.True(t, *header.Font.Bold)
	require.NotNil(t, header.Font.Name)
	assert.Equal(t, "Arial", *header.Font.Name)
	require.NotNil(t, header.Fill.Pattern)
	assert.Equal(t, "solid", *header.Fill.Pattern)
	require.NotNil(t, header.Border.Bottom.Style)
	assert.Equal(t, "thin", *header.Border.Bottom.Style)
	assert.Nil(t, header.Border.Top.Style)
	require.NotNil(t, header.Alignment.Horizontal)
	assert.Equal(t, "center", *header.Alignment.Horizontal)
	require.NotNil(t, header.Alignment.Wrap)
	assert.True(t, *header.Alignment.Wrap)
	assert.Same(t, header, g.Cell(2, 3).Format, "cells sharing a style share a signature")

	plain := g.Cell(3, 2).Format
	require.NotNil(t, plain)
	assert.NotEqual(t, header, plain)
	require.NotNil(t, plain.NumberFormat)
	assert.Equal(t, "General", *plain.NumberFormat)

	percent := g.Cell(4, 3).Format
	require.NotNil(t, percent.NumberFormat)
	assert.Equal(t, "0.00%", *percent.NumberFormat)
}

func TestLoadGridEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	g, err := LoadGrid(f, "Sheet1")
	require.NoError(t, err)
	assert.True(t, g.Bounds.Empty())
	assert.Empty(t, g.Rows)
}

func TestLoadGridMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := LoadGrid(f, "Nope")
	assert.Error(t, err)
}

func TestExtractFormatNil(t *testing.T) {
	sig := ExtractFormat(nil)
	require.NotNil(t, sig)
	assert.Nil(t, sig.Font.Bold)
	assert.Nil(t, sig.Fill.Pattern)
	assert.Nil(t, sig.NumberFormat)
}

func TestExtractFormat(t *testing.T) {
	custom := "yyyy-mm-dd"
	theme := 4
	sig := ExtractFormat(&excelize.Style{
		Font:         &excelize.Font{Italic: true, Underline: "single", ColorTheme: &theme},
		Fill:         excelize.Fill{Type: "gradient", Color: []string{"FFFFFF", "000000"}},
		Border:       []excelize.Border{{Type: "left", Style: 6}, {Type: "diagonalUp", Style: 1}},
		CustomNumFmt: &custom,
	})

	assert.Equal(t, "yyyy-mm-dd", *sig.NumberFormat)
	assert.True(t, *sig.Font.Italic)
	assert.False(t, *sig.Font.Bold)
	assert.Nil(t, sig.Font.Size)
	assert.Nil(t, sig.Font.Name)
	assert.Equal(t, "single", *sig.Font.Underline)
	assert.Equal(t, "theme:4", *sig.Font.Color)
	assert.Equal(t, "gradient", *sig.Fill.Pattern)
	assert.Equal(t, "FFFFFF", *sig.Fill.FgColor)
	assert.Equal(t, "double", *sig.Border.Left.Style)
	assert.Nil(t, sig.Border.Left.Color)
	assert.Nil(t, sig.Alignment.Wrap)

	unknown := ExtractFormat(&excelize.Style{NumFmt: 170, Border: []excelize.Border{{Type: "top", Style: 99}}})
	assert.Equal(t, "numFmt:170", *unknown.NumberFormat)
	assert.Equal(t, "unknown:99", *unknown.Border.Top.Style)
}

func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	opened, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { opened.Close() })
	return opened
}

func TestLoadGridFormulaWithoutCachedValue(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "x"))
	require.NoError(t, f.SetCellFormula("Sheet1", "C3", "1+1"))
	f = saveAndOpen(t, f)

	g, err := LoadGrid(f, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, models.Bounds{MinRow: 1, MinCol: 1, MaxRow: 3, MaxCol: 3}, g.Bounds)

	sum := g.Cell(3, 3)
	require.NotNil(t, sum)
	assert.True(t, sum.IsFormula)
	assert.Equal(t, "=1+1", sum.Value)
	assert.False(t, g.Cell(1, 3).IsFormula)
}

func TestLoadGridFormulasOnly(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellFormula("Sheet1", "B2", "NOW()"))
	require.NoError(t, f.SetCellFormula("Sheet1", "B3", "B2+1"))
	f = saveAndOpen(t, f)

	g, err := LoadGrid(f, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, models.Bounds{MinRow: 2, MinCol: 2, MaxRow: 3, MaxCol: 2}, g.Bounds)
	assert.Equal(t, "=B2+1", g.Cell(3, 2).Value)
}

func TestLoadGridInvalidUTF8(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "caf\xe9"))
	require.NoError(t, f.AddComment("Sheet1", excelize.Comment{Cell: "A1", Author: "audit", Text: "bad \xff byte"}))
	f = saveAndOpen(t, f)

	g, err := LoadGrid(f, "Sheet1")
	require.NoError(t, err)

	cell := g.Cell(1, 1)
	require.NotNil(t, cell)
	assert.True(t, utf8.ValidString(cell.Value))
	assert.Contains(t, cell.Value, "\uFFFD")
	require.NotNil(t, cell.Comment)
	assert.True(t, utf8.ValidString(*cell.Comment))
	assert.Contains(t, *cell.Comment, "\uFFFD")
}

func TestValidText(t *testing.T) {
	assert.Equal(t, "caf\uFFFD", validText("caf\xe9"))
	assert.Equal(t, "a\uFFFDb", validText("a\xff\xfeb"))
	assert.Equal(t, "ok \u2713", validText("ok \u2713"))
}
