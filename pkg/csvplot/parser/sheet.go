package parser

import (
	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheetRows reads rows from a worksheet.
// The first two columns of the sheet's data region supply X and Y. Cell
// values are taken as displayed text. Blank rows are skipped. When the
// sheet defines a print area, only cells inside it are read.
func ReadSheetRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if area, ok := printArea(f, sheetName); ok {
		rows = clipRows(rows, area)
	}

	b := findDataBounds(rows)
	if b.empty() {
		return nil, nil
	}

	var result []models.Row
	for rowIdx := b.minRow; rowIdx <= b.maxRow; rowIdx++ {
		row := rows[rowIdx]
		fields := len(row) - b.minCol
		if fields <= 0 {
			continue
		}
		if fields < 2 {
			return nil, &RowError{Line: rowIdx + 1, Fields: fields}
		}
		result = append(result, models.Row{
			X: row[b.minCol],
			Y: row[b.minCol+1],
		})
	}

	return result, nil
}

// firstSheet returns the name of the first worksheet in f.
func firstSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	return sheets[0]
}

// ReadWorkbookRows reads rows from sheetName, or from the first sheet when
// sheetName is empty.
func ReadWorkbookRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	if sheetName == "" {
		sheetName = firstSheet(f)
	}
	return ReadSheetRows(f, sheetName)
}
