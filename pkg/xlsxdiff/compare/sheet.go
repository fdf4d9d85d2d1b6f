package compare

import (
	"context"
	"slices"
	"time"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/align"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// DefaultMaxCells bounds each alignment matrix (rows x rows or cols x cols).
const DefaultMaxCells = 16_000_000

// Options configures a sheet-pair comparison.
type Options struct {
	// RowGap is the gap penalty of the row-level alignment.
	RowGap float64
	// ColumnGap is the gap penalty of the per-row column alignment.
	ColumnGap float64
	// MaxCells bounds the size of every alignment matrix; <= 0 disables it.
	MaxCells int
	// Workers is the number of row pairs compared concurrently; <= 1 is sequential.
	Workers int
	// ReportColumnGaps records column gaps in Hidden.ColsAdded/ColsRemoved.
	ReportColumnGaps bool
}

// DefaultOptions returns the reference gap penalties and limits.
func DefaultOptions() Options {
	return Options{
		RowGap:    align.RowGap,
		ColumnGap: align.ColumnGap,
		MaxCells:  DefaultMaxCells,
		Workers:   1,
	}
}

type rowPair struct {
	primary   int
	secondary int
}

type rowDiff struct {
	cells       *models.DiffResult
	colsAdded   []int
	colsRemoved []int
}

// Sheets aligns two grids and compares every matched row pair. A nil
// grid stands for a missing sheet: all rows of the other side are
// reported as added or removed and nothing is aligned. The only error
// is a *align.LimitError (or the context's error); no partial result
// is returned with it.
func Sheets(ctx context.Context, primary, secondary *models.Grid, opts Options) (*models.DiffResult, error) {
	res := models.NewDiffResult()
	switch {
	case primary == nil && secondary == nil:
		return res, nil
	case primary == nil:
		res.Hidden.RowsAdded = append(res.Hidden.RowsAdded, secondary.RowNumbers()...)
		return res, nil
	case secondary == nil:
		res.Hidden.RowsRemoved = append(res.Hidden.RowsRemoved, primary.RowNumbers()...)
		return res, nil
	case primary.Bounds.Empty() && secondary.Bounds.Empty():
		return res, nil
	}

	pRows, sRows := primary.RowNumbers(), secondary.RowNumbers()
	pCols, sCols := primary.ColNumbers(), secondary.ColNumbers()
	if err := align.CheckLimit("rows", len(pRows), len(sRows), opts.MaxCells); err != nil {
		return nil, err
	}
	if err := align.CheckLimit("columns", len(pCols), len(sCols), opts.MaxCells); err != nil {
		return nil, err
	}

	start := time.Now()
	pairs, err := align.AlignLevel("rows", signatures(primary, pRows), signatures(secondary, sRows), align.Ratio, opts.RowGap, opts.MaxCells)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"sheet":     primary.Name,
		"primary":   len(pRows),
		"secondary": len(sRows),
		"elapsed":   time.Since(start),
	}).Debug("rows aligned")

	var matched []rowPair
	for _, p := range pairs {
		switch {
		case p.Inserted():
			res.Hidden.RowsAdded = append(res.Hidden.RowsAdded, sRows[p.B])
		case p.Deleted():
			res.Hidden.RowsRemoved = append(res.Hidden.RowsRemoved, pRows[p.A])
		default:
			matched = append(matched, rowPair{primary: pRows[p.A], secondary: sRows[p.B]})
		}
	}

	diffs, err := compareRowPairs(ctx, primary, secondary, matched, opts)
	if err != nil {
		return nil, err
	}

	for _, d := range diffs {
		res.Merge(d.cells)
		if opts.ReportColumnGaps {
			res.Hidden.ColsAdded = append(res.Hidden.ColsAdded, d.colsAdded...)
			res.Hidden.ColsRemoved = append(res.Hidden.ColsRemoved, d.colsRemoved...)
		}
	}
	res.Hidden.ColsAdded = sortedUnique(res.Hidden.ColsAdded)
	res.Hidden.ColsRemoved = sortedUnique(res.Hidden.ColsRemoved)

	log.WithFields(log.Fields{
		"sheet":   primary.Name,
		"matched": len(matched),
		"diffs":   res.Count(),
		"elapsed": time.Since(start),
	}).Debug("sheet compared")
	return res, nil
}

// compareRowPairs runs column alignment and cell comparison for every
// matched row pair. Results are stored by position, so the merge order
// does not depend on scheduling.
func compareRowPairs(ctx context.Context, primary, secondary *models.Grid, pairs []rowPair, opts Options) ([]*rowDiff, error) {
	diffs := make([]*rowDiff, len(pairs))

	if opts.Workers <= 1 {
		for i, p := range pairs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			d, err := compareRows(primary, secondary, p, opts)
			if err != nil {
				return nil, err
			}
			diffs[i] = d
		}
		return diffs, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Workers)
	for i, p := range pairs {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			d, err := compareRows(primary, secondary, p, opts)
			if err != nil {
				return err
			}
			diffs[i] = d
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return diffs, nil
}

func compareRows(primary, secondary *models.Grid, p rowPair, opts Options) (*rowDiff, error) {
	pCols, sCols := primary.ColNumbers(), secondary.ColNumbers()
	a := align.PrepareAll(primary.CellTexts(p.primary))
	b := align.PrepareAll(secondary.CellTexts(p.secondary))

	pairs, err := align.AlignLevel("columns", a, b, align.Ratio, opts.ColumnGap, opts.MaxCells)
	if err != nil {
		return nil, err
	}

	d := &rowDiff{cells: &models.DiffResult{}}
	for _, c := range pairs {
		var pRef, sRef *models.CellRef
		var pCell, sCell *models.Cell
		if c.A != align.None {
			pRef = models.NewCellRef(p.primary, pCols[c.A])
			pCell = primary.Cell(p.primary, pCols[c.A])
		} else {
			d.colsAdded = append(d.colsAdded, sCols[c.B])
		}
		if c.B != align.None {
			sRef = models.NewCellRef(p.secondary, sCols[c.B])
			sCell = secondary.Cell(p.secondary, sCols[c.B])
		} else {
			d.colsRemoved = append(d.colsRemoved, pCols[c.A])
		}
		Cells(pRef, sRef, pCell, sCell, d.cells)
	}
	return d, nil
}

func signatures(g *models.Grid, rows []int) []*align.Text {
	sigs := make([]*align.Text, len(rows))
	for i, r := range rows {
		sigs[i] = align.Prepare(g.RowSignature(r))
	}
	return sigs
}

func sortedUnique(xs []int) []int {
	slices.Sort(xs)
	return slices.Compact(xs)
}
