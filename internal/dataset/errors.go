package dataset

import (
	"errors"
	"fmt"
)

// ErrEmpty indicates the input has no header or no data rows.
var ErrEmpty = errors.New("dataset is empty")

// ErrMalformed indicates a cell could not be decoded as a date or a number.
var ErrMalformed = errors.New("malformed dataset")

// ErrUnknownSeries is returned when a series name is not part of the header.
var ErrUnknownSeries = errors.New("unknown series")

// ParseError reports where in the input a cell failed to decode.
type ParseError struct {
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(line int, column string, err error) *ParseError {
	return &ParseError{
		Line:   line,
		Column: column,
		Err:    fmt.Errorf("%w: %v", ErrMalformed, err),
	}
}
