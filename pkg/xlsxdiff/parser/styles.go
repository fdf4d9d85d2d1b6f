package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
)

var patternNames = []string{
	"none", "solid", "mediumGray", "darkGray", "lightGray",
	"darkHorizontal", "darkVertical", "darkDown", "darkUp", "darkGrid", "darkTrellis",
	"lightHorizontal", "lightVertical", "lightDown", "lightUp", "lightGrid", "lightTrellis",
	"gray125", "gray0625",
}

var borderStyleNames = []string{
	"none", "thin", "medium", "dashed", "dotted", "thick", "double", "hair",
	"mediumDashed", "dashDot", "mediumDashDot", "dashDotDot", "mediumDashDotDot", "slantDashDot",
}

// builtInNumFmts are the number formats implied by a style's numFmtId
// when the workbook does not declare a custom code.
var builtInNumFmts = map[int]string{
	0: "General", 1: "0", 2: "0.00", 3: "#,##0", 4: "#,##0.00",
	5: `"$"#,##0_);("$"#,##0)`, 6: `"$"#,##0_);[Red]("$"#,##0)`,
	7: `"$"#,##0.00_);("$"#,##0.00)`, 8: `"$"#,##0.00_);[Red]("$"#,##0.00)`,
	9: "0%", 10: "0.00%", 11: "0.00E+00", 12: "# ?/?", 13: "# ??/??",
	14: "mm-dd-yy", 15: "d-mmm-yy", 16: "d-mmm", 17: "mmm-yy",
	18: "h:mm AM/PM", 19: "h:mm:ss AM/PM", 20: "h:mm", 21: "h:mm:ss", 22: "m/d/yy h:mm",
	37: "#,##0_);(#,##0)", 38: "#,##0_);[Red](#,##0)",
	39: "#,##0.00_);(#,##0.00)", 40: "#,##0.00_);[Red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_)_("$"* \(#,##0.00\)_("$"* "-"??_)_(@_)`,
	45: "mm:ss", 46: "[h]:mm:ss", 47: "mmss.0", 48: "##0.0E+0", 49: "@",
}

// ExtractFormat converts an excelize style into a FormatSignature. It
// never fails: a nil style or any missing attribute resolves to nil
// (absent) fields.
func ExtractFormat(style *excelize.Style) *models.FormatSignature {
	sig := &models.FormatSignature{}
	if style == nil {
		return sig
	}

	if font := style.Font; font != nil {
		sig.Font = models.Font{
			Name:      nonEmpty(font.Family),
			Bold:      models.Ptr(font.Bold),
			Italic:    models.Ptr(font.Italic),
			Underline: nonEmpty(font.Underline),
			Color:     fontColor(font),
		}
		if font.Size > 0 {
			sig.Font.Size = models.Ptr(font.Size)
		}
	}

	switch style.Fill.Type {
	case "pattern":
		sig.Fill.Pattern = name(patternNames, style.Fill.Pattern)
	case "gradient":
		sig.Fill.Pattern = models.Ptr("gradient")
	}
	if len(style.Fill.Color) > 0 {
		sig.Fill.FgColor = nonEmpty(style.Fill.Color[0])
	}

	for _, b := range style.Border {
		side := models.BorderSide{
			Style: name(borderStyleNames, b.Style),
			Color: nonEmpty(b.Color),
		}
		switch b.Type {
		case "left":
			sig.Border.Left = side
		case "right":
			sig.Border.Right = side
		case "top":
			sig.Border.Top = side
		case "bottom":
			sig.Border.Bottom = side
		}
	}

	if a := style.Alignment; a != nil {
		sig.Alignment = models.Alignment{
			Horizontal: nonEmpty(a.Horizontal),
			Vertical:   nonEmpty(a.Vertical),
			Wrap:       models.Ptr(a.WrapText),
		}
	}

	sig.NumberFormat = numberFormat(style)
	return sig
}

func numberFormat(style *excelize.Style) *string {
	if style.CustomNumFmt != nil && *style.CustomNumFmt != "" {
		return models.Ptr(*style.CustomNumFmt)
	}
	if code, ok := builtInNumFmts[style.NumFmt]; ok {
		return models.Ptr(code)
	}
	return models.Ptr(fmt.Sprintf("numFmt:%d", style.NumFmt))
}

func fontColor(font *excelize.Font) *string {
	switch {
	case font.Color != "":
		return models.Ptr(font.Color)
	case font.ColorTheme != nil:
		return models.Ptr(fmt.Sprintf("theme:%d", *font.ColorTheme))
	case font.ColorIndexed != 0:
		return models.Ptr(fmt.Sprintf("indexed:%d", font.ColorIndexed))
	}
	return nil
}

func name(names []string, idx int) *string {
	if idx < 0 || idx >= len(names) {
		return models.Ptr(fmt.Sprintf("unknown:%d", idx))
	}
	return models.Ptr(names[idx])
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
