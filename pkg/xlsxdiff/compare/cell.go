// Package compare classifies aligned cell pairs and aggregates the
// differences of one sheet pair into a DiffResult.
package compare

import (
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// Cells compares one aligned cell pair and appends its differences to res.
// Either side may be nil for a column gap. The four categories are
// independent: value (formula or text), formatting and comment.
func Cells(pRef, sRef *models.CellRef, p, s *models.Cell, res *models.DiffResult) {
	if isFormula(p) || isFormula(s) {
		if p.Text() != s.Text() {
			res.Formulas = append(res.Formulas, change(pRef, sRef, value(p), value(s)))
		}
	} else if p.Text() != s.Text() {
		res.Text = append(res.Text, change(pRef, sRef, value(p), value(s)))
	}

	if fields := Formats(p.FormatSignature(), s.FormatSignature()); len(fields) > 0 {
		c := change(pRef, sRef, nil, nil)
		c.Fields = fields
		res.Formatting = append(res.Formatting, c)
	}

	pc, sc := p.CommentText(), s.CommentText()
	if (pc != nil || sc != nil) && !equal(pc, sc) {
		res.Comments = append(res.Comments, change(pRef, sRef, pc, sc))
	}
}

func isFormula(c *models.Cell) bool {
	return c != nil && c.IsFormula
}

func value(c *models.Cell) *string {
	if c == nil {
		return nil
	}
	v := c.Value
	return &v
}

func change(pRef, sRef *models.CellRef, pv, sv *string) models.Change {
	return models.Change{
		Primary:        pRef,
		Secondary:      sRef,
		PrimaryValue:   pv,
		SecondaryValue: sv,
	}
}
