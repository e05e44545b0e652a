package parser

import "fmt"

// RowError reports an input row that cannot be turned into an (x, y) pair.
type RowError struct {
	// Line is the 1-based record (CSV) or sheet row (xlsx) number.
	Line int
	// Fields is the number of usable fields found.
	Fields int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: expected at least 2 fields, got %d", e.Line, e.Fields)
}
