package parser

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// saveAndOpen writes f to a temp file and opens it again.
func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestReadSheetRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", 1)
	f.SetCellValue(sheetName, "B1", 10)
	f.SetCellValue(sheetName, "A2", 2)
	f.SetCellValue(sheetName, "B2", 20.5)
	f.SetCellValue(sheetName, "A3", 1)
	f.SetCellValue(sheetName, "B3", "n/a")

	rows, err := ReadSheetRows(saveAndOpen(t, f), sheetName)
	if err != nil {
		t.Fatalf("ReadSheetRows failed: %v", err)
	}

	expected := rowsOf("1", "10", "2", "20.5", "1", "n/a")
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("ReadSheetRows() = %v, expected %v", rows, expected)
	}
}

func TestReadSheetRowsOffsetRegion(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "C3", "a")
	f.SetCellValue(sheetName, "D3", "1")
	f.SetCellValue(sheetName, "C5", "b")
	f.SetCellValue(sheetName, "D5", "2")
	f.SetCellValue(sheetName, "E5", "ignored")

	rows, err := ReadSheetRows(saveAndOpen(t, f), sheetName)
	if err != nil {
		t.Fatalf("ReadSheetRows failed: %v", err)
	}

	expected := rowsOf("a", "1", "b", "2")
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("ReadSheetRows() = %v, expected %v", rows, expected)
	}
}

func TestReadSheetRowsShortRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "1")
	f.SetCellValue(sheetName, "B1", "10")
	f.SetCellValue(sheetName, "A2", "2")

	_, err := ReadSheetRows(saveAndOpen(t, f), sheetName)

	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("Expected *RowError, got %T: %v", err, err)
	}
	if rowErr.Line != 2 {
		t.Errorf("Expected line 2, got %d", rowErr.Line)
	}
}

func TestReadSheetRowsEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows, err := ReadSheetRows(saveAndOpen(t, f), "Sheet1")
	if err != nil {
		t.Fatalf("ReadSheetRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %v", rows)
	}
}

func TestReadWorkbookRowsFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "x")
	f.SetCellValue("Sheet1", "B1", "y")
	f.SetCellValue("Other", "A1", "p")
	f.SetCellValue("Other", "B1", "q")

	f2 := saveAndOpen(t, f)

	rows, err := ReadWorkbookRows(f2, "")
	if err != nil {
		t.Fatalf("ReadWorkbookRows failed: %v", err)
	}
	if !reflect.DeepEqual(rows, rowsOf("x", "y")) {
		t.Errorf("Expected first sheet rows, got %v", rows)
	}

	rows, err = ReadWorkbookRows(f2, "Other")
	if err != nil {
		t.Fatalf("ReadWorkbookRows failed: %v", err)
	}
	if !reflect.DeepEqual(rows, rowsOf("p", "q")) {
		t.Errorf("Expected Other sheet rows, got %v", rows)
	}
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected dataBounds
	}{
		{"empty", nil, dataBounds{-1, -1, -1, -1}},
		{"blank cells only", [][]string{{"", ""}, {}}, dataBounds{-1, -1, -1, -1}},
		{"single cell", [][]string{{}, {"", "x"}}, dataBounds{1, 1, 1, 1}},
		{"ragged", [][]string{{"", "a"}, {"b", "", "c"}}, dataBounds{0, 1, 0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := findDataBounds(tt.rows)
			if result != tt.expected {
				t.Errorf("findDataBounds() = %+v, expected %+v", result, tt.expected)
			}
		})
	}
}

func TestReadSheetRowsPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "title")
	f.SetCellValue(sheetName, "A2", "1")
	f.SetCellValue(sheetName, "B2", "10")
	f.SetCellValue(sheetName, "A3", "2")
	f.SetCellValue(sheetName, "B3", "20")
	f.SetCellValue(sheetName, "A4", "notes")
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$2:$B$3",
		Scope:    sheetName,
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	rows, err := ReadSheetRows(saveAndOpen(t, f), sheetName)
	if err != nil {
		t.Fatalf("ReadSheetRows failed: %v", err)
	}

	expected := rowsOf("1", "10", "2", "20")
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("ReadSheetRows() = %v, expected %v", rows, expected)
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		sheetName string
		areas     []cellArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []cellArea{{1, 1, 10, 4}}},
		{"'My Sheet'!$B$2:$C$3", "My Sheet", []cellArea{{2, 2, 3, 3}}},
		{"Sheet1!$A$1:$B$2,Sheet1!$D$4:$E$5", "Sheet1", []cellArea{{1, 1, 2, 2}, {4, 4, 5, 5}}},
		{"Sheet1!A1", "Sheet1", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		sheetName, areas := parsePrintAreaReference(tt.ref)
		if sheetName != tt.sheetName || !reflect.DeepEqual(areas, tt.areas) {
			t.Errorf("parsePrintAreaReference(%q) = %q, %v, expected %q, %v",
				tt.ref, sheetName, areas, tt.sheetName, tt.areas)
		}
	}
}

func TestClipRows(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g"},
	}
	clipped := clipRows(rows, cellArea{r1: 2, c1: 2, r2: 3, c2: 2})

	expected := [][]string{
		nil,
		{"", "e"},
		{""},
	}
	if !reflect.DeepEqual(clipped, expected) {
		t.Errorf("clipRows() = %q, expected %q", clipped, expected)
	}
}
