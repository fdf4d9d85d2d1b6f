package xlsxdiff

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/apex/log"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/align"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/compare"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/output"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/parser"
)

// CompareFiles opens two workbooks and compares them.
func CompareFiles(ctx context.Context, primaryPath, secondaryPath string, opts Options) (*models.WorkbookDiff, error) {
	if err := ValidateInput(primaryPath); err != nil {
		return nil, err
	}
	if err := ValidateInput(secondaryPath); err != nil {
		return nil, err
	}

	primary, err := excelize.OpenFile(primaryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, primaryPath, err)
	}
	defer primary.Close()

	secondary, err := excelize.OpenFile(secondaryPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, secondaryPath, err)
	}
	defer secondary.Close()

	wd, err := Compare(ctx, primary, secondary, opts)
	if err != nil {
		return nil, err
	}
	wd.Primary = filepath.Base(primaryPath)
	wd.Secondary = filepath.Base(secondaryPath)
	return wd, nil
}

// ValidateInput checks that path names an existing .xlsx/.xlsm workbook
// which is neither an Office lock file nor one of this tool's reports.
func ValidateInput(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	base := filepath.Base(path)
	switch ext := strings.ToLower(filepath.Ext(base)); {
	case ext != ".xlsx" && ext != ".xlsm":
		return fmt.Errorf("%w: %s: unsupported extension %q", ErrInvalidFormat, path, ext)
	case strings.HasPrefix(base, "~$"):
		return fmt.Errorf("%w: %s: office lock file", ErrInvalidFormat, path)
	case output.IsReportFile(base):
		return fmt.Errorf("%w: %s: generated report", ErrInvalidFormat, path)
	}
	return nil
}

// Compare compares the sheets of two open workbooks. A sheet that fails
// the resource limit is recorded as failed and the others continue;
// extraction errors and context cancellation abort the comparison.
func Compare(ctx context.Context, primary, secondary *excelize.File, opts Options) (*models.WorkbookDiff, error) {
	pSheets, sSheets := primary.GetSheetList(), secondary.GetSheetList()
	pLoader, sLoader := parser.NewLoader(primary), parser.NewLoader(secondary)

	wd := &models.WorkbookDiff{}
	for _, name := range SheetNames(pSheets, sSheets, opts.Sheets) {
		inPrimary, inSecondary := slices.Contains(pSheets, name), slices.Contains(sSheets, name)
		if !inPrimary && !inSecondary {
			log.Infof("sheet %q is missing in both workbooks, skipping", name)
			continue
		}

		var pGrid, sGrid *models.Grid
		var err error
		if inPrimary {
			if pGrid, err = pLoader.Grid(name); err != nil {
				return nil, NewExtractionError(name, "primary", err)
			}
		}
		if inSecondary {
			if sGrid, err = sLoader.Grid(name); err != nil {
				return nil, NewExtractionError(name, "secondary", err)
			}
		}

		sd, err := CompareSheet(ctx, name, pGrid, sGrid, opts)
		if err != nil {
			return nil, err
		}
		wd.Sheets = append(wd.Sheets, sd)
	}
	return wd, nil
}

// CompareSheet compares two grids of the same sheet name; either may be
// nil when the sheet exists on one side only. A resource-limit failure
// is reported in the returned SheetDiff, not as an error.
func CompareSheet(ctx context.Context, name string, primary, secondary *models.Grid, opts Options) (models.SheetDiff, error) {
	sd := models.SheetDiff{Name: name, Status: models.SheetBoth}
	switch {
	case primary == nil:
		sd.Status = models.SheetSecondaryOnly
		log.Infof("sheet %q is missing in the primary workbook, marking as added", name)
	case secondary == nil:
		sd.Status = models.SheetPrimaryOnly
		log.Infof("sheet %q is missing in the secondary workbook, marking as removed", name)
	}

	res, err := compare.Sheets(ctx, primary, secondary, opts.sheetOptions())
	var limitErr *align.LimitError
	switch {
	case errors.As(err, &limitErr):
		log.WithError(err).WithField("sheet", name).Error("sheet not compared")
		sd.Status = models.SheetFailed
		sd.Error = err.Error()
		return sd, nil
	case err != nil:
		return models.SheetDiff{}, fmt.Errorf("compare sheet %q: %w", name, err)
	}

	sd.Result = res
	log.WithField("sheet", name).WithField("diffs", res.Count()).Info("sheet compared")
	return sd, nil
}

// SheetNames returns the sheets to compare: the requested names if any,
// otherwise the primary sheets in order followed by secondary-only sheets.
func SheetNames(primary, secondary, requested []string) []string {
	if len(requested) > 0 {
		return slices.Clone(requested)
	}
	names := slices.Clone(primary)
	for _, name := range secondary {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}
