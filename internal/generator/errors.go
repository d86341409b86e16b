package generator

import "errors"

var (
	// ErrMissingInputDirectory is returned when the input directory does not exist
	// or is not a directory.
	ErrMissingInputDirectory = errors.New("input directory not found")
	// ErrNoQualifyingFiles is returned when the input directory holds no file
	// with an allowed extension.
	ErrNoQualifyingFiles = errors.New("no image files found")
	// ErrDuplicateSymbol is returned when two input files derive the same symbol.
	ErrDuplicateSymbol = errors.New("duplicate resource symbol")
)
