package models

// Series represents one contiguous run of rows with non-repeating X values.
// X and Y always have the same length.
type Series struct {
	// X holds the first field of each row, in input order.
	X []string
	// Y holds the second field of each row, in input order.
	Y []string
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.X)
}

// Rows returns the series as rows, in order.
func (s Series) Rows() []Row {
	rows := make([]Row, len(s.X))
	for i := range s.X {
		rows[i] = Row{X: s.X[i], Y: s.Y[i]}
	}
	return rows
}
