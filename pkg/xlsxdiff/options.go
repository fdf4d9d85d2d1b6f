// Package xlsxdiff compares two workbooks sheet by sheet and reports
// text, formula, formatting, comment and row/column differences.
package xlsxdiff

import (
	"runtime"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/align"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/compare"
)

// Options configures comparison behavior.
type Options struct {
	// RowGap is the row-level gap penalty.
	// If nil, defaults to -0.15.
	RowGap *float64
	// ColumnGap is the column-level gap penalty.
	// If nil, defaults to -0.30.
	ColumnGap *float64
	// MaxCells bounds every alignment matrix (rows x rows, cols x cols).
	// If nil, defaults to compare.DefaultMaxCells; 0 disables the bound.
	MaxCells *int
	// Workers is the number of row pairs compared concurrently.
	// Zero uses one worker per CPU.
	Workers int
	// ReportColumnGaps records columns present on one side of a matched
	// row pair in Hidden.ColsAdded/ColsRemoved.
	ReportColumnGaps bool
	// Sheets restricts the comparison to the named sheets.
	// If empty, the union of both workbooks' sheet names is compared.
	Sheets []string
}

// DefaultOptions returns default comparison options.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// RowGapPenalty returns the row-level gap penalty.
func (o Options) RowGapPenalty() float64 {
	if o.RowGap != nil {
		return *o.RowGap
	}
	return align.RowGap
}

// ColumnGapPenalty returns the column-level gap penalty.
func (o Options) ColumnGapPenalty() float64 {
	if o.ColumnGap != nil {
		return *o.ColumnGap
	}
	return align.ColumnGap
}

// MaxAlignmentCells returns the alignment matrix bound.
func (o Options) MaxAlignmentCells() int {
	if o.MaxCells != nil {
		return *o.MaxCells
	}
	return compare.DefaultMaxCells
}

// WorkerCount returns the number of concurrent row-pair workers.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) sheetOptions() compare.Options {
	return compare.Options{
		RowGap:           o.RowGapPenalty(),
		ColumnGap:        o.ColumnGapPenalty(),
		MaxCells:         o.MaxAlignmentCells(),
		Workers:          o.WorkerCount(),
		ReportColumnGaps: o.ReportColumnGaps,
	}
}
