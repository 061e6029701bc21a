package main

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrOutOfBounds       = errors.New("shape is out of bounds")
	ErrDuplicate         = errors.New("shape already exists at the same spot")
	ErrNoSelection       = errors.New("no shape selected")
	ErrUnknownID         = errors.New("no shape with that id")
	ErrArity             = errors.New("wrong number of parameters")
	ErrInvalidSize       = errors.New("size parameters must be positive integers")
	ErrInvalidGlyph      = errors.New("glyph must be a single printable character")
	ErrUnknownShape      = errors.New("unknown shape type")
	ErrFormat            = errors.New("malformed record")
)

// FormatError locates a load failure within the file.
type FormatError struct {
	Line  int
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, field %s: %v", e.Line, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
