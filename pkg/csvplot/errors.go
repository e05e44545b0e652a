package csvplot

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an unknown Options.Format value.
var ErrUnsupportedFormat = errors.New("unsupported format")

// LoadError represents an error while loading an input file.
type LoadError struct {
	Path  string
	Stage string // "open", "read"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, stage string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
