package uuid

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput       = errors.New("uuid: malformed input")
	ErrInvalidFormat        = errors.New("uuid: invalid format")
	ErrUnsupportedOperation = errors.New("uuid: unsupported operation")
	ErrDateTime             = errors.New("uuid: date-time out of range")
)

// MalformedInputError is returned when binary input is not exactly Size
// bytes long.
type MalformedInputError struct {
	Length int
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("uuid: byte string must be %d bytes long; received %d bytes", Size, e.Length)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// InvalidFormatError is returned for text that is neither a canonical UUID
// string nor one of the nil and max literals. Input is the text as given.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("uuid: invalid UUID string: %q", e.Input)
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// UnsupportedOperationError is returned when a field is requested from a UUID
// whose version does not define it.
type UnsupportedOperationError struct {
	Op         string
	Version    int
	HasVersion bool
}

func (e *UnsupportedOperationError) Error() string {
	if !e.HasVersion {
		return fmt.Sprintf("uuid: %s: not a time-based UUID (no version)", e.Op)
	}
	return fmt.Sprintf("uuid: %s: not a time-based UUID (version %d)", e.Op, e.Version)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// DateTimeError is returned when a timestamp decodes to an instant outside
// the years 0000-9999, which RFC 3339 cannot express.
type DateTimeError struct {
	Version   int
	Timestamp string
}

func (e *DateTimeError) Error() string {
	return fmt.Sprintf("uuid: version %d timestamp %s cannot be represented as a date-time", e.Version, e.Timestamp)
}

func (e *DateTimeError) Unwrap() error {
	return ErrDateTime
}
