package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

func TestCellsFormulaVersusLiteral(t *testing.T) {
	res := &models.DiffResult{}
	Cells(models.NewCellRef(1, 1), models.NewCellRef(1, 1), models.NewCell("=1+1"), models.NewCell("2"), res)

	require.Len(t, res.Formulas, 1)
	assert.Empty(t, res.Text)
	assert.Equal(t, "=1+1", *res.Formulas[0].PrimaryValue)
	assert.Equal(t, "2", *res.Formulas[0].SecondaryValue)
	assert.Equal(t, "A1", res.Formulas[0].Primary.String())
}

func TestCellsFormulaTrimmed(t *testing.T) {
	res := &models.DiffResult{}
	p := &models.Cell{Value: "=SUM(A1:A3) ", IsFormula: true}
	s := &models.Cell{Value: "=SUM(A1:A3)", IsFormula: true}
	Cells(models.NewCellRef(4, 2), models.NewCellRef(4, 2), p, s, res)
	assert.True(t, res.Empty())
}

func TestCellsText(t *testing.T) {
	tests := []struct {
		name    string
		p, s    *models.Cell
		changes int
	}{
		{"equal", models.NewCell("total"), models.NewCell("total"), 0},
		{"whitespace only", models.NewCell(" total"), models.NewCell("total  "), 0},
		{"changed", models.NewCell("10"), models.NewCell("12"), 1},
		{"both empty", models.NewCell(""), models.NewCell("   "), 0},
		{"absent versus empty", nil, models.NewCell(""), 0},
		{"absent versus text", models.NewCell("kept"), nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &models.DiffResult{}
			Cells(models.NewCellRef(1, 1), models.NewCellRef(1, 1), tt.p, tt.s, res)
			assert.Len(t, res.Text, tt.changes)
			assert.Empty(t, res.Formulas)
		})
	}
}

func TestCellsTextKeepsRawValues(t *testing.T) {
	res := &models.DiffResult{}
	Cells(models.NewCellRef(2, 3), nil, models.NewCell(" old "), nil, res)

	require.Len(t, res.Text, 1)
	c := res.Text[0]
	assert.Equal(t, " old ", *c.PrimaryValue)
	assert.Nil(t, c.SecondaryValue)
	assert.Nil(t, c.Secondary)
	assert.Equal(t, "C2", c.Primary.String())
}

func TestCellsFormatOnly(t *testing.T) {
	p := models.NewCell("Revenue")
	p.Format = &models.FormatSignature{Font: models.Font{Bold: models.Ptr(false)}}
	s := models.NewCell("Revenue")
	s.Format = &models.FormatSignature{Font: models.Font{Bold: models.Ptr(true)}}

	res := &models.DiffResult{}
	Cells(models.NewCellRef(1, 1), models.NewCellRef(1, 1), p, s, res)

	assert.Empty(t, res.Text)
	require.Len(t, res.Formatting, 1)
	assert.Equal(t, []models.FieldChange{{Field: "font.bold", Primary: "false", Secondary: "true"}}, res.Formatting[0].Fields)
}

func TestCellsComments(t *testing.T) {
	tests := []struct {
		name    string
		p, s    *string
		changes int
	}{
		{"none", nil, nil, 0},
		{"same", models.Ptr("check"), models.Ptr("check"), 0},
		{"added", nil, models.Ptr("new note"), 1},
		{"removed", models.Ptr("old note"), nil, 1},
		{"edited", models.Ptr("v1"), models.Ptr("v2"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := models.NewCell("x"), models.NewCell("x")
			p.Comment, s.Comment = tt.p, tt.s
			res := &models.DiffResult{}
			Cells(models.NewCellRef(1, 1), models.NewCellRef(1, 1), p, s, res)
			require.Len(t, res.Comments, tt.changes)
			if tt.changes > 0 {
				assert.Equal(t, tt.p, res.Comments[0].PrimaryValue)
				assert.Equal(t, tt.s, res.Comments[0].SecondaryValue)
			}
		})
	}
}

func TestCellsCategoriesAreIndependent(t *testing.T) {
	p := &models.Cell{Value: "=A1*2", IsFormula: true, Comment: models.Ptr("doubled"), Format: &models.FormatSignature{NumberFormat: models.Ptr("General")}}
	s := &models.Cell{Value: "=A1*3", IsFormula: true, Format: &models.FormatSignature{NumberFormat: models.Ptr("0.00")}}

	res := &models.DiffResult{}
	Cells(models.NewCellRef(5, 2), models.NewCellRef(6, 2), p, s, res)

	assert.Len(t, res.Formulas, 1)
	assert.Len(t, res.Formatting, 1)
	assert.Len(t, res.Comments, 1)
	assert.Empty(t, res.Text)
}
