package input

import (
	"errors"
	"fmt"
)

// ErrBadHeader indicates the input does not start with the mandatory
// `type,client,tx,amount` header line. It is a fatal startup error.
var ErrBadHeader = errors.New("input header must be exactly `type,client,tx,amount`")

// ErrMalformedRecord is the sentinel wrapped by every ParseError.
var ErrMalformedRecord = errors.New("malformed record")

// ParseError describes a malformed input line. Line is 1-based and counts the
// header, so the first record is line 2.
type ParseError struct {
	Line   int
	Reason string
}

// Error returns the formatted parse error string.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
}

// Unwrap returns the sentinel malformed-record error for errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrMalformedRecord
}

func newParseError(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
