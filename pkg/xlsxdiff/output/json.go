// Package output serializes comparison results and writes per-sheet reports.
package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// ToJSON serializes a workbook diff.
func ToJSON(wd *models.WorkbookDiff, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(wd, "", "  ")
	}
	return json.Marshal(wd)
}

// SheetToJSON serializes one sheet diff.
func SheetToJSON(sd *models.SheetDiff, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sd, "", "  ")
	}
	return json.Marshal(sd)
}

// ToYAML serializes a workbook diff as YAML.
func ToYAML(wd *models.WorkbookDiff) ([]byte, error) {
	return yaml.Marshal(wd)
}
