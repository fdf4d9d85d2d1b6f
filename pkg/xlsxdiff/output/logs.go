package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// Log file names written by WriteLogs.
const (
	TextLog       = "text.log"
	FormulasLog   = "formulas.log"
	FormattingLog = "formatting.log"
	HiddenLog     = "hidden.log"
	CommentsLog   = "comments.log"
)

// WriteLogs writes one human-readable log per category into dir.
func WriteLogs(dir string, res *models.DiffResult) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if res == nil {
		res = models.NewDiffResult()
	}

	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{TextLog, func(w io.Writer) error { return writeChanges(w, "Text", res.Text, valueLines) }},
		{FormulasLog, func(w io.Writer) error { return writeChanges(w, "Formulas", res.Formulas, valueLines) }},
		{FormattingLog, func(w io.Writer) error { return writeChanges(w, "Formatting", res.Formatting, fieldLines) }},
		{HiddenLog, func(w io.Writer) error { return writeHidden(w, res.Hidden) }},
		{CommentsLog, func(w io.Writer) error { return writeChanges(w, "Comments", res.Comments, valueLines) }},
	}

	for _, lw := range writers {
		f, err := os.Create(filepath.Join(dir, lw.name))
		if err != nil {
			return err
		}
		err = lw.write(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", lw.name, err)
		}
	}
	return nil
}

func writeChanges(w io.Writer, category string, changes []models.Change, lines func(models.Change) []string) error {
	if len(changes) == 0 {
		_, err := fmt.Fprintf(w, "Category: %s - no differences found.\n", category)
		return err
	}
	if _, err := fmt.Fprintf(w, "Category: %s (primary <-> secondary)\n", category); err != nil {
		return err
	}
	for _, c := range changes {
		if _, err := fmt.Fprintf(w, "%s <-> %s\n", Coord(c.Primary), Coord(c.Secondary)); err != nil {
			return err
		}
		for _, line := range lines(c) {
			if _, err := fmt.Fprintf(w, "- %s\n", line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func valueLines(c models.Change) []string {
	return []string{Value(c.PrimaryValue), Value(c.SecondaryValue)}
}

func fieldLines(c models.Change) []string {
	return []string{Details(c.Fields)}
}

func writeHidden(w io.Writer, h models.Hidden) error {
	_, err := fmt.Fprintf(w, "Category: Hidden rows/columns\n"+
		"  rows added in secondary: %v\n"+
		"  rows removed in secondary: %v\n"+
		"  cols added: %v; cols removed: %v\n",
		h.RowsAdded, h.RowsRemoved, h.ColsAdded, h.ColsRemoved)
	return err
}

// Coord renders a cell reference, "-" when absent.
func Coord(ref *models.CellRef) string {
	if ref == nil {
		return "-"
	}
	return ref.String()
}

// Value renders a diff value, "None" when absent.
func Value(v *string) string {
	if v == nil {
		return "None"
	}
	return *v
}

// Details renders format field changes as "field: a != b; ...".
func Details(fields []models.FieldChange) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s != %s", f.Field, f.Primary, f.Secondary)
	}
	return strings.Join(parts, "; ")
}
