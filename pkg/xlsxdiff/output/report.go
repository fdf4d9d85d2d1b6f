package output

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// Report file names written into each sheet directory.
const (
	SummaryFile        = "summary_diffs.xlsx"
	PrimaryHighlight   = "primary_text_diff"
	SecondaryHighlight = "secondary_text_diff"
)

// IsReportFile reports whether a base file name is one of the generated
// report workbooks, which must not be fed back as inputs.
func IsReportFile(base string) bool {
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return base == SummaryFile || stem == PrimaryHighlight || stem == SecondaryHighlight
}

// WriteSheetReport writes the logs, the summary workbook and both
// highlighted copies of one sheet into outRoot/<sheet name>.
func WriteSheetReport(outRoot, primaryPath, secondaryPath string, sd models.SheetDiff) error {
	dir := filepath.Join(outRoot, sd.Name)
	if err := WriteLogs(dir, sd.Result); err != nil {
		return fmt.Errorf("sheet %q logs: %w", sd.Name, err)
	}
	if err := WriteSummary(filepath.Join(dir, SummaryFile), sd.Result); err != nil {
		return fmt.Errorf("sheet %q summary: %w", sd.Name, err)
	}

	copies := []struct {
		src, stem string
		refs      []string
	}{
		{primaryPath, PrimaryHighlight, TextRefs(sd.Result, true)},
		{secondaryPath, SecondaryHighlight, TextRefs(sd.Result, false)},
	}
	for _, c := range copies {
		dst := filepath.Join(dir, c.stem+highlightExt(c.src))
		if err := WriteHighlightedCopy(c.src, sd.Name, c.refs, dst); err != nil {
			return fmt.Errorf("sheet %q highlighted copy: %w", sd.Name, err)
		}
	}
	return nil
}

// TextRefs returns the sorted, unique A1 references of one side's Text diffs.
func TextRefs(res *models.DiffResult, primary bool) []string {
	if res == nil {
		return nil
	}
	var refs []string
	for _, c := range res.Text {
		ref := c.Secondary
		if primary {
			ref = c.Primary
		}
		if ref != nil {
			refs = append(refs, ref.String())
		}
	}
	slices.Sort(refs)
	return slices.Compact(refs)
}

func highlightExt(src string) string {
	if strings.EqualFold(filepath.Ext(src), ".xlsm") {
		return ".xlsm"
	}
	return ".xlsx"
}
