package output

import (
	"github.com/apex/log"
	"github.com/xuri/excelize/v2"
)

// HighlightColor is the solid fill applied to highlighted cells.
const HighlightColor = "FFFF00"

// WriteHighlightedCopy saves a copy of the workbook at src that keeps
// only sheet, fills every cell in refs with HighlightColor and drops the
// sheet's conditional formats. If src has no such sheet, the copy is a
// workbook with one empty sheet of that name.
func WriteHighlightedCopy(src, sheet string, refs []string, dst string) error {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return err
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		return writeEmptySheet(sheet, dst)
	}

	for _, name := range f.GetSheetList() {
		if name == sheet {
			continue
		}
		if err := f.DeleteSheet(name); err != nil {
			log.WithError(err).WithField("sheet", name).Warn("could not drop sheet from copy")
		}
	}
	if idx, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(idx)
	}

	highlighted := make(map[int]int)
	for _, ref := range refs {
		styleID, err := f.GetCellStyle(sheet, ref)
		if err != nil {
			log.WithError(err).WithField("cell", ref).Warn("skipping highlight")
			continue
		}
		id, ok := highlighted[styleID]
		if !ok {
			if id, err = highlightStyle(f, styleID); err != nil {
				return err
			}
			highlighted[styleID] = id
		}
		if err := f.SetCellStyle(sheet, ref, ref, id); err != nil {
			return err
		}
	}

	formats, err := f.GetConditionalFormats(sheet)
	if err == nil {
		for rangeRef := range formats {
			if err := f.UnsetConditionalFormat(sheet, rangeRef); err != nil {
				log.WithError(err).WithField("range", rangeRef).Warn("could not remove conditional format")
			}
		}
	}

	return f.SaveAs(dst)
}

// highlightStyle derives a style from styleID with a solid highlight fill.
func highlightStyle(f *excelize.File, styleID int) (int, error) {
	fill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{HighlightColor}}
	if style, err := f.GetStyle(styleID); err == nil {
		style.Fill = fill
		if id, err := f.NewStyle(style); err == nil {
			return id, nil
		}
	}
	return f.NewStyle(&excelize.Style{Fill: fill})
}

func writeEmptySheet(sheet, dst string) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	return f.SaveAs(dst)
}
