package models

// Dataset represents the series collection read from one input file.
type Dataset struct {
	// Name is the input path as given by the caller. It titles the plot.
	Name   string
	// Series lists the series in the order they were encountered.
	Series []Series
}

// Rows concatenates the rows of every series, in order.
func (d *Dataset) Rows() []Row {
	var rows []Row
	for _, s := range d.Series {
		rows = append(rows, s.Rows()...)
	}
	return rows
}
