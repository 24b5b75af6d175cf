package xlsxyaml

import (
	"fmt"

	"github.com/ukaji3/xlsxyaml-go/pkg/xlsxyaml/models"
)

var (
	// ErrNoInputFiles indicates a directory without matching input files.
	ErrNoInputFiles = models.ErrNoInputFiles
	// ErrMalformedInput indicates a sheet or document that cannot be converted.
	ErrMalformedInput = models.ErrMalformedInput
	// ErrTypeConflict indicates a key that descends through an existing value.
	ErrTypeConflict = models.ErrTypeConflict
	// ErrIOFailure indicates a filesystem error.
	ErrIOFailure = models.ErrIOFailure
)

// ConversionError represents an error while converting one input file.
type ConversionError struct {
	Path  string
	Sheet string // empty for yaml input
	Stage string // "open", "read", "build", "flatten", "render", "sheet"
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("conversion error in %s, sheet %q (%s): %v", e.Path, e.Sheet, e.Stage, e.Err)
	}
	return fmt.Sprintf("conversion error in %s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(path, sheet, stage string, err error) *ConversionError {
	return &ConversionError{
		Path:  path,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}

// IOError represents a filesystem operation that failed on Path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIOFailure and the underlying error.
func (e *IOError) Unwrap() []error {
	return []error{ErrIOFailure, e.Err}
}

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
