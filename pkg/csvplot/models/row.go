// Package models defines data structures for series plotting.
package models

// Row represents one parsed line of the input as a pair of text fields.
type Row struct {
	// X is the first field. It is compared by exact text equality.
	X string
	// Y is the second field, passed through as text.
	Y string
}
