package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoInputFiles indicates a directory without matching input files.
	ErrNoInputFiles = errors.New("no input files")
	// ErrMalformedInput indicates a sheet or document without the minimum expected shape.
	ErrMalformedInput = errors.New("malformed input")
	// ErrTypeConflict indicates an insert that would descend through a scalar or sequence.
	ErrTypeConflict = errors.New("type conflict")
	// ErrIOFailure indicates a filesystem error.
	ErrIOFailure = errors.New("io failure")
)

// ConflictError reports the path at which an insert met an existing leaf.
type ConflictError struct {
	// Path is the key path up to and including the conflicting segment.
	Path []string
	// Existing is the kind of the value found at Path.
	Existing Kind
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("type conflict at %q: cannot descend into %s", strings.Join(e.Path, "."), e.Existing)
}

func (e *ConflictError) Unwrap() error {
	return ErrTypeConflict
}

// MalformedError reports input that cannot be converted.
type MalformedError struct {
	// Source names the sheet or document.
	Source string
	// Reason describes what is missing.
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed input %q: %s", e.Source, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedInput
}

// NewMalformedError creates a new MalformedError.
func NewMalformedError(source, format string, args ...any) *MalformedError {
	return &MalformedError{
		Source: source,
		Reason: fmt.Sprintf(format, args...),
	}
}
