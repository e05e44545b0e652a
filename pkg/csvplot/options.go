// Package csvplot loads tabular files into series for plotting.
package csvplot

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatCSV reads comma-delimited text.
	FormatCSV Format = "csv"
	// FormatXLSX reads an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// Options configures loading behavior.
type Options struct {
	// Format specifies the input format. Empty means FormatAuto.
	Format Format
	// Sheet names the worksheet to read for FormatXLSX.
	// If empty, the first sheet is used.
	Sheet string
	// Logger receives progress messages. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// ResolveFormat returns the concrete format to use for path.
func (o Options) ResolveFormat(path string) Format {
	if o.Format != "" && o.Format != FormatAuto {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
