package core

// errors.go defines the error surface of the normalization engine.
//
// Two severities exist. Non-fatal conditions (unrecognized column names,
// unparsable status values, unreadable lines) are logged and processing
// continues. Fatal conditions (bad extension, unopenable file, missing
// header, malformed timestamp/duration/ber cells) abort the whole run: a
// malformed numeric or time cell almost always means the column mapping is
// wrong for the file, so partial-row recovery would only produce garbage.

import (
	"errors"
	"fmt"
)

// ErrUnsupportedExtension is returned when a path's extension resolves to no
// known delimiter. Only ".csv" and ".tsv" are recognized, case-sensitively.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// ErrMissingHeader is returned when the input has no lines at all: the first
// line is always the header and normalization cannot start without it.
var ErrMissingHeader = errors.New("expected table to have at least header")

// ParseError describes a cell whose value could not be parsed for its field.
type ParseError struct {
	Field   string // column name as it appeared in the header
	Value   string // the cleaned cell value that failed to parse
	Message string // what the parser could not do
}

func (e ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (value %q)", e.Field, e.Message, e.Value)
	}
	return e.Message
}

// cellError wraps a parser failure with the column it occurred in.
func cellError(field, value string, err error) error {
	return ParseError{Field: field, Value: value, Message: err.Error()}
}
