package xlsxdiff

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/align"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx/xlsm workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrResourceLimit indicates an alignment would exceed Options.MaxCells.
// Use errors.As with *align.LimitError for the offending dimensions.
var ErrResourceLimit = align.ErrLimit

// ExtractionError represents an error while reading one side of a sheet pair.
type ExtractionError struct {
	SheetName string
	Side      string // "primary" or "secondary"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Side, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, side string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Side:      side,
		Err:       err,
	}
}
