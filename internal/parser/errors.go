package parser

import "errors"

// Parsing errors. All of them abort the parse; the format carries no
// redundancy that would make partial results trustworthy.
var (
	// ErrMalformedRecord is returned when a row has too few fields for
	// the record kind its section requires.
	ErrMalformedRecord = errors.New("malformed record: wrong field count")

	// ErrBadInteger is returned when an integer field does not parse
	// in strict base 10.
	ErrBadInteger = errors.New("malformed integer field")

	// ErrBadDecimal is returned when a coordinate or radius field does
	// not parse as a decimal number.
	ErrBadDecimal = errors.New("malformed decimal field")

	// ErrMissingHeader is returned when the description header line has
	// fewer than the five required fields.
	ErrMissingHeader = errors.New("description header has too few fields")
)
