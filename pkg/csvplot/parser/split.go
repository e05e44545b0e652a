// Package parser provides row reading and series splitting.
package parser

import (
	"slices"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

// SplitSeries splits rows into series. A new series starts whenever a row's
// X value already appears in the series being built; that row becomes the
// first point of the new series. Only the current series is checked, so a
// value may reappear in a later series.
//
// The final series is always appended, so empty input yields one empty series.
func SplitSeries(rows []models.Row) []models.Series {
	var result []models.Series
	var xs, ys []string

	for _, row := range rows {
		if slices.Contains(xs, row.X) {
			result = append(result, models.Series{X: xs, Y: ys})
			xs, ys = nil, nil
		}
		xs = append(xs, row.X)
		ys = append(ys, row.Y)
	}

	return append(result, models.Series{X: xs, Y: ys})
}
