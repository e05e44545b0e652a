package parser

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
)

// ReadCSVRows reads comma-delimited rows from r.
// Every record is a data row; there is no header handling. Fields beyond
// the second are ignored and blank lines are skipped. Stray quotes are kept
// as field text rather than rejected.
func ReadCSVRows(r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	var result []models.Row
	for n := 1; ; n++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "csvplot: could not read row %d", n)
		}
		if len(record) < 2 {
			return nil, &RowError{Line: n, Fields: len(record)}
		}
		result = append(result, models.Row{X: record[0], Y: record[1]})
	}

	return result, nil
}
