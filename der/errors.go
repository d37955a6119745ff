package der

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below matches exactly one of them with
// errors.Is, so callers can branch on the kind without inspecting fields.
var (
	// ErrUnexpectedTag is returned when a tag byte differs from the tag
	// required at the current structural position.
	ErrUnexpectedTag = errors.New("der: unexpected tag")

	// ErrTruncatedInput is returned when fewer bytes remain than a header or
	// a declared content length requires.
	ErrTruncatedInput = errors.New("der: truncated input")

	// ErrInvalidBytes is returned when an exact byte comparison fails.
	ErrInvalidBytes = errors.New("der: invalid bytes")

	// ErrInvalidUnusedBits is returned when a BIT STRING that must hold
	// byte-aligned content declares unused bits.
	ErrInvalidUnusedBits = errors.New("der: invalid unused bits byte")

	// ErrInvalidLength is returned for length encodings DER does not allow.
	ErrInvalidLength = errors.New("der: invalid length encoding")

	// ErrTrailingData is returned when bytes follow a complete structure.
	ErrTrailingData = errors.New("der: trailing data")
)

// UnexpectedTagError reports a tag mismatch at Offset.
type UnexpectedTagError struct {
	Offset   int
	Expected byte
	Actual   byte
}

// Error implements the error interface.
func (e *UnexpectedTagError) Error() string {
	return fmt.Sprintf("der: unexpected tag at offset %d: expected 0x%02x, got 0x%02x",
		e.Offset, e.Expected, e.Actual)
}

// Is allows UnexpectedTagError to match ErrUnexpectedTag with errors.Is.
func (e *UnexpectedTagError) Is(target error) bool {
	return target == ErrUnexpectedTag
}

// TruncatedInputError reports that Needed bytes were required at Offset
// but only Remaining were left.
type TruncatedInputError struct {
	Offset    int
	Needed    int
	Remaining int
}

// Error implements the error interface.
func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("der: truncated input at offset %d: need %d bytes, have %d",
		e.Offset, e.Needed, e.Remaining)
}

// Is allows TruncatedInputError to match ErrTruncatedInput with errors.Is.
func (e *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// InvalidBytesError carries the full context of a failed literal match.
// Position is the absolute offset at which the compared window starts and
// Mismatch the absolute offset of the first byte that differs. Encoding is
// the complete input that was being read.
type InvalidBytesError struct {
	Expected []byte
	Actual   []byte
	Position int
	Mismatch int
	Encoding []byte
}

// Error implements the error interface.
func (e *InvalidBytesError) Error() string {
	return fmt.Sprintf("der: invalid bytes at position %d (first mismatch at offset %d): expected % x, got % x",
		e.Position, e.Mismatch, e.Expected, e.Actual)
}

// Is allows InvalidBytesError to match ErrInvalidBytes with errors.Is.
func (e *InvalidBytesError) Is(target error) bool {
	return target == ErrInvalidBytes
}

// InvalidUnusedBitsError reports a nonzero BIT STRING unused-bits byte.
type InvalidUnusedBitsError struct {
	Offset     int
	UnusedBits byte
}

// Error implements the error interface.
func (e *InvalidUnusedBitsError) Error() string {
	return fmt.Sprintf("der: invalid unused bits byte at offset %d: expected 0x00, got 0x%02x",
		e.Offset, e.UnusedBits)
}

// Is allows InvalidUnusedBitsError to match ErrInvalidUnusedBits with errors.Is.
func (e *InvalidUnusedBitsError) Is(target error) bool {
	return target == ErrInvalidUnusedBits
}

// InvalidLengthError reports a length header that is not minimal DER.
type InvalidLengthError struct {
	Offset int
	Reason string
}

// Error implements the error interface.
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("der: invalid length encoding at offset %d: %s", e.Offset, e.Reason)
}

// Is allows InvalidLengthError to match ErrInvalidLength with errors.Is.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// TrailingDataError reports Remaining unread bytes starting at Offset.
type TrailingDataError struct {
	Offset    int
	Remaining int
}

// Error implements the error interface.
func (e *TrailingDataError) Error() string {
	return fmt.Sprintf("der: %d bytes of trailing data at offset %d", e.Remaining, e.Offset)
}

// Is allows TrailingDataError to match ErrTrailingData with errors.Is.
func (e *TrailingDataError) Is(target error) bool {
	return target == ErrTrailingData
}

// Kind returns a short machine readable name for the error kind of err, or
// an empty string when err is not a der error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnexpectedTag):
		return "unexpected_tag"
	case errors.Is(err, ErrTruncatedInput):
		return "truncated_input"
	case errors.Is(err, ErrInvalidBytes):
		return "invalid_bytes"
	case errors.Is(err, ErrInvalidUnusedBits):
		return "invalid_unused_bits"
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrTrailingData):
		return "trailing_data"
	}
	return ""
}

// Position returns the offset carried by a der error, or -1.
func Position(err error) int {
	var (
		tagErr      *UnexpectedTagError
		truncErr    *TruncatedInputError
		bytesErr    *InvalidBytesError
		unusedErr   *InvalidUnusedBitsError
		lengthErr   *InvalidLengthError
		trailingErr *TrailingDataError
	)
	switch {
	case errors.As(err, &tagErr):
		return tagErr.Offset
	case errors.As(err, &truncErr):
		return truncErr.Offset
	case errors.As(err, &bytesErr):
		return bytesErr.Position
	case errors.As(err, &unusedErr):
		return unusedErr.Offset
	case errors.As(err, &lengthErr):
		return lengthErr.Offset
	case errors.As(err, &trailingErr):
		return trailingErr.Offset
	}
	return -1
}
