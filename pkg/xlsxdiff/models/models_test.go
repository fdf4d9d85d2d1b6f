package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellRefText(t *testing.T) {
	data, err := json.Marshal(Change{Primary: NewCellRef(12, 28)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"primary":"AB12"`)
	assert.Contains(t, string(data), `"secondary":null`)

	var c Change
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, &CellRef{Row: 12, Col: 28}, c.Primary)
	assert.Nil(t, c.Secondary)

	var bad CellRef
	assert.Error(t, bad.UnmarshalText([]byte("not a cell")))
	assert.Equal(t, "B3", CellRef{Row: 3, Col: 2}.String())
}

func TestNewCell(t *testing.T) {
	assert.True(t, NewCell("=SUM(A1:A2)").IsFormula)
	assert.False(t, NewCell(" =x").IsFormula)
	assert.Equal(t, "x", NewCell("  x \n").Text())

	var absent *Cell
	assert.Equal(t, "", absent.Text())
	assert.Nil(t, absent.CommentText())
	assert.Nil(t, absent.FormatSignature())
}

func TestBounds(t *testing.T) {
	assert.True(t, EmptyBounds.Empty())
	assert.Equal(t, 0, EmptyBounds.RowCount())
	assert.False(t, EmptyBounds.Contains(1, 1))

	b := Bounds{MinRow: 2, MinCol: 2, MaxRow: 5, MaxCol: 3}
	assert.Equal(t, 4, b.RowCount())
	assert.Equal(t, 2, b.ColCount())
	assert.True(t, b.Contains(5, 3))
	assert.False(t, b.Contains(1, 2))
	assert.False(t, b.Contains(2, 4))
}

func TestNewGrid(t *testing.T) {
	g := NewGrid("Data", [][]string{
		{"name", "qty"},
		{"apple"},
	})
	assert.Equal(t, Bounds{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 2}, g.Bounds)
	assert.Equal(t, []int{1, 2}, g.RowNumbers())
	assert.Equal(t, []int{1, 2}, g.ColNumbers())
	require.NotNil(t, g.Cell(2, 2))
	assert.Equal(t, "", g.Cell(2, 2).Value)
	assert.Nil(t, g.Cell(3, 1))
	assert.Equal(t, []string{"apple", ""}, g.CellTexts(2))
	assert.Equal(t, "name"+RowSeparator+"qty", g.RowSignature(1))

	empty := NewGrid("Empty", nil)
	assert.True(t, empty.Bounds.Empty())
	assert.Empty(t, empty.RowNumbers())
	assert.Empty(t, empty.ColNumbers())
}

func TestRowSignatureStripsSeparator(t *testing.T) {
	g := NewGrid("S", [][]string{{"a" + RowSeparator + "b", "c"}})
	assert.Equal(t, "ab"+RowSeparator+"c", g.RowSignature(1))
}

func TestDiffResult(t *testing.T) {
	res := NewDiffResult()
	assert.True(t, res.Empty())
	assert.NotNil(t, res.Hidden.ColsAdded)

	other := NewDiffResult()
	other.Text = []Change{{Primary: NewCellRef(1, 1)}}
	other.Comments = []Change{{Secondary: NewCellRef(2, 1)}}
	other.Hidden.RowsAdded = []int{4}
	res.Merge(other)

	assert.Equal(t, 2, res.Count())
	assert.Empty(t, res.Hidden.RowsAdded, "hidden lists are not merged")

	var nilResult *DiffResult
	assert.Equal(t, 0, nilResult.Count())
}

func TestWorkbookDiff(t *testing.T) {
	res := NewDiffResult()
	res.Hidden.RowsRemoved = []int{3, 4}
	wd := WorkbookDiff{Sheets: []SheetDiff{
		{Name: "A", Status: SheetBoth, Result: res},
		{Name: "B", Status: SheetFailed, Error: "too large"},
	}}
	assert.Equal(t, 2, wd.Count())
	require.Len(t, wd.Failed(), 1)
	assert.Equal(t, "B", wd.Failed()[0].Name)
}
