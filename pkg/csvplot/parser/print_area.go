package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellArea holds 1-based inclusive cell coordinates.
type cellArea struct {
	r1, c1 int
	r2, c2 int
}

// printArea returns the first print area defined for sheetName.
func printArea(f *excelize.File, sheetName string) (cellArea, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet == sheetName && len(areas) > 0 {
			return areas[0], true
		}
	}
	return cellArea{}, false
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []cellArea) {
	var areas []cellArea
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (cellArea, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return cellArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return cellArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return cellArea{}, false
	}

	return cellArea{r1: startRow, c1: startCol, r2: endRow, c2: endCol}, true
}

// clipRows blanks every cell outside area, keeping row positions intact.
func clipRows(rows [][]string, area cellArea) [][]string {
	clipped := make([][]string, len(rows))
	for rowIdx, row := range rows {
		r := rowIdx + 1
		if r < area.r1 || r > area.r2 {
			continue
		}
		out := make([]string, min(len(row), area.c2))
		for colIdx := area.c1 - 1; colIdx < len(out); colIdx++ {
			out[colIdx] = row[colIdx]
		}
		clipped[rowIdx] = out
	}
	return clipped
}
