package csvplot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
	"github.com/ukaji3/csvplot-go/pkg/csvplot/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads the file at path and splits its rows into series.
// The returned dataset is named after path.
func Load(path string, opts Options) (*models.Dataset, error) {
	log := opts.logger()

	var rows []models.Row
	var err error

	format := opts.ResolveFormat(path)
	switch format {
	case FormatCSV:
		rows, err = loadCSV(path)
	case FormatXLSX:
		rows, err = loadWorkbook(path, opts.Sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	log.Debug("rows read", "path", path, "format", format, "rows", len(rows))

	series := parser.SplitSeries(rows)
	for i, s := range series[1:] {
		log.Debug("split boundary", "series", i+1, "x", s.X[0])
	}

	return &models.Dataset{
		Name:   path,
		Series: series,
	}, nil
}

func loadCSV(path string) ([]models.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer file.Close()

	rows, err := parser.ReadCSVRows(file)
	if err != nil {
		return nil, NewLoadError(path, "read", err)
	}
	return rows, nil
}

func loadWorkbook(path, sheet string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	rows, err := parser.ReadWorkbookRows(f, sheet)
	if err != nil {
		return nil, NewLoadError(path, "read", err)
	}
	return rows, nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return NewLoadError(path, "open", err)
}
