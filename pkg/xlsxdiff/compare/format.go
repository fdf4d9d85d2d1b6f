package compare

import (
	"fmt"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

// Absent renders a missing attribute in a FieldChange.
const Absent = "absent"

// Formats compares two signatures field by field and returns the
// differing attributes. Both nil is equal; exactly one nil yields a
// single "format" change.
func Formats(p, s *models.FormatSignature) []models.FieldChange {
	switch {
	case p == nil && s == nil:
		return nil
	case p == nil:
		return []models.FieldChange{{Field: "format", Primary: Absent, Secondary: "present"}}
	case s == nil:
		return []models.FieldChange{{Field: "format", Primary: "present", Secondary: Absent}}
	}

	var changes []models.FieldChange
	changes = field(changes, "font.name", p.Font.Name, s.Font.Name)
	changes = field(changes, "font.size", p.Font.Size, s.Font.Size)
	changes = field(changes, "font.bold", p.Font.Bold, s.Font.Bold)
	changes = field(changes, "font.italic", p.Font.Italic, s.Font.Italic)
	changes = field(changes, "font.underline", p.Font.Underline, s.Font.Underline)
	changes = field(changes, "font.color", p.Font.Color, s.Font.Color)

	changes = field(changes, "fill.pattern", p.Fill.Pattern, s.Fill.Pattern)
	changes = field(changes, "fill.fg_color", p.Fill.FgColor, s.Fill.FgColor)

	changes = side(changes, "border.left", p.Border.Left, s.Border.Left)
	changes = side(changes, "border.right", p.Border.Right, s.Border.Right)
	changes = side(changes, "border.top", p.Border.Top, s.Border.Top)
	changes = side(changes, "border.bottom", p.Border.Bottom, s.Border.Bottom)

	changes = field(changes, "alignment.horizontal", p.Alignment.Horizontal, s.Alignment.Horizontal)
	changes = field(changes, "alignment.vertical", p.Alignment.Vertical, s.Alignment.Vertical)
	changes = field(changes, "alignment.wrap", p.Alignment.Wrap, s.Alignment.Wrap)

	return field(changes, "number_format", p.NumberFormat, s.NumberFormat)
}

func side(changes []models.FieldChange, name string, p, s models.BorderSide) []models.FieldChange {
	changes = field(changes, name+".style", p.Style, s.Style)
	return field(changes, name+".color", p.Color, s.Color)
}

func field[T comparable](changes []models.FieldChange, name string, p, s *T) []models.FieldChange {
	if equal(p, s) {
		return changes
	}
	return append(changes, models.FieldChange{Field: name, Primary: render(p), Secondary: render(s)})
}

func equal[T comparable](p, s *T) bool {
	if p == nil || s == nil {
		return p == nil && s == nil
	}
	return *p == *s
}

func render[T any](v *T) string {
	if v == nil {
		return Absent
	}
	return fmt.Sprint(*v)
}
