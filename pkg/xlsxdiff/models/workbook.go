package models

// SheetStatus describes how a sheet name was resolved in both workbooks.
type SheetStatus string

const (
	// SheetBoth means the sheet exists in both workbooks and was aligned.
	SheetBoth SheetStatus = "both"
	// SheetPrimaryOnly means the sheet was removed in the secondary workbook.
	SheetPrimaryOnly SheetStatus = "primary_only"
	// SheetSecondaryOnly means the sheet was added in the secondary workbook.
	SheetSecondaryOnly SheetStatus = "secondary_only"
	// SheetFailed means the comparison was aborted (e.g. resource limit).
	SheetFailed SheetStatus = "failed"
)

// SheetDiff is the comparison outcome for one sheet name.
type SheetDiff struct {
	// Name is the sheet name.
	Name string `json:"name" yaml:"name"`
	// Status tells which side had the sheet or whether it failed.
	Status SheetStatus `json:"status" yaml:"status"`
	// Result is the diff (nil when Status is SheetFailed).
	Result *DiffResult `json:"result,omitempty" yaml:"result,omitempty"`
	// Error describes the failure (empty unless Status is SheetFailed).
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// WorkbookDiff represents the workbook-level container with per-sheet diffs.
type WorkbookDiff struct {
	// Primary is the primary workbook file name (no path).
	Primary string `json:"primary" yaml:"primary"`
	// Secondary is the secondary workbook file name (no path).
	Secondary string `json:"secondary" yaml:"secondary"`
	// Sheets holds one entry per compared sheet name, in comparison order.
	Sheets []SheetDiff `json:"sheets" yaml:"sheets"`
}

// Failed returns the sheets whose comparison was aborted.
func (w *WorkbookDiff) Failed() []SheetDiff {
	var failed []SheetDiff
	for _, s := range w.Sheets {
		if s.Status == SheetFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Count returns the total number of differences across all sheets.
func (w *WorkbookDiff) Count() int {
	n := 0
	for _, s := range w.Sheets {
		n += s.Result.Count()
	}
	return n
}
