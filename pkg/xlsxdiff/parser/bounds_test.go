package parser

import (
	"testing"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

func TestFindBounds(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected models.Bounds
	}{
		{"empty", nil, models.EmptyBounds},
		{"blank rows only", [][]string{{}, {"", ""}}, models.EmptyBounds},
		{"single cell", [][]string{{"x"}}, models.Bounds{MinRow: 1, MinCol: 1, MaxRow: 1, MaxCol: 1}},
		{
			"offset region",
			[][]string{{}, {"", "", "a"}, {"", "b", "", "", "c"}, {}},
			models.Bounds{MinRow: 2, MinCol: 2, MaxRow: 3, MaxCol: 5},
		},
		{"whitespace counts", [][]string{{" "}}, models.Bounds{MinRow: 1, MinCol: 1, MaxRow: 1, MaxCol: 1}},
	}

	for _, tt := range tests {
		result := FindBounds(tt.rows)
		if result != tt.expected {
			t.Errorf("%s: FindBounds() = %+v, expected %+v", tt.name, result, tt.expected)
		}
	}
}

func TestFindBoundsFunc(t *testing.T) {
	rows := [][]string{{"x", ""}, {}, {"", "", ""}}
	formula := func(row, col int, value string) bool {
		return value != "" || (row == 3 && col == 3)
	}

	result := FindBoundsFunc(rows, formula)
	expected := models.Bounds{MinRow: 1, MinCol: 1, MaxRow: 3, MaxCol: 3}
	if result != expected {
		t.Errorf("FindBoundsFunc() = %+v, expected %+v", result, expected)
	}
}
