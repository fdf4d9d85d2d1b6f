package models

// FieldChange is one differing format attribute.
type FieldChange struct {
	// Field is the dotted attribute path, e.g. "font.bold".
	Field string `json:"field" yaml:"field"`
	// Primary is the rendered primary value ("absent" when missing).
	Primary string `json:"primary" yaml:"primary"`
	// Secondary is the rendered secondary value ("absent" when missing).
	Secondary string `json:"secondary" yaml:"secondary"`
}

// Change is a single coordinate-addressed difference.
type Change struct {
	// Primary is the cell in the primary sheet (nil for a column gap).
	Primary *CellRef `json:"primary" yaml:"primary"`
	// Secondary is the cell in the secondary sheet (nil for a column gap).
	Secondary *CellRef `json:"secondary" yaml:"secondary"`
	// PrimaryValue is the primary text, formula or comment (nil if none).
	PrimaryValue *string `json:"primary_value" yaml:"primary_value"`
	// SecondaryValue is the secondary text, formula or comment (nil if none).
	SecondaryValue *string `json:"secondary_value" yaml:"secondary_value"`
	// Fields lists the differing attributes of a Formatting change.
	Fields []FieldChange `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Hidden records rows and columns present on one side only. Each list
// holds the sheet index on the side where the row or column exists.
type Hidden struct {
	RowsAdded   []int `json:"rows_added" yaml:"rows_added"`
	RowsRemoved []int `json:"rows_removed" yaml:"rows_removed"`
	ColsAdded   []int `json:"cols_added" yaml:"cols_added"`
	ColsRemoved []int `json:"cols_removed" yaml:"cols_removed"`
}

// Empty reports whether no row or column was added or removed.
func (h Hidden) Empty() bool {
	return len(h.RowsAdded) == 0 && len(h.RowsRemoved) == 0 && len(h.ColsAdded) == 0 && len(h.ColsRemoved) == 0
}

// DiffResult is the five-category outcome of one sheet-pair comparison.
// It is filled once by the comparison pass and not mutated afterwards.
type DiffResult struct {
	Text       []Change `json:"text,omitempty" yaml:"text,omitempty"`
	Formulas   []Change `json:"formulas,omitempty" yaml:"formulas,omitempty"`
	Formatting []Change `json:"formatting,omitempty" yaml:"formatting,omitempty"`
	Comments   []Change `json:"comments,omitempty" yaml:"comments,omitempty"`
	Hidden     Hidden   `json:"hidden" yaml:"hidden"`
}

// NewDiffResult returns an empty result whose hidden lists are non-nil.
func NewDiffResult() *DiffResult {
	return &DiffResult{
		Hidden: Hidden{
			RowsAdded:   []int{},
			RowsRemoved: []int{},
			ColsAdded:   []int{},
			ColsRemoved: []int{},
		},
	}
}

// Empty reports whether the result holds no difference in any category.
func (d *DiffResult) Empty() bool {
	return d.Count() == 0
}

// Count returns the total number of recorded differences.
func (d *DiffResult) Count() int {
	if d == nil {
		return 0
	}
	h := d.Hidden
	return len(d.Text) + len(d.Formulas) + len(d.Formatting) + len(d.Comments) +
		len(h.RowsAdded) + len(h.RowsRemoved) + len(h.ColsAdded) + len(h.ColsRemoved)
}

// Merge appends the cell-level categories of other to d.
func (d *DiffResult) Merge(other *DiffResult) {
	d.Text = append(d.Text, other.Text...)
	d.Formulas = append(d.Formulas, other.Formulas...)
	d.Formatting = append(d.Formatting, other.Formatting...)
	d.Comments = append(d.Comments, other.Comments...)
}
