package parquetstats

import "errors"

var (
	// ErrInvalidLength is returned when the stored bytes of a statistics
	// value do not have the length the physical type requires.
	ErrInvalidLength = errors.New("plain value has invalid length")

	// ErrInvalidTimestamp is returned when an INT96 statistics value decodes
	// to something outside the representable calendar range.
	ErrInvalidTimestamp = errors.New("timestamp outside the valid calendar range")

	// ErrValueOutOfRange is returned when a value does not fit the declared
	// encoded size of its column, e.g. a decimal exceeding its precision.
	ErrValueOutOfRange = errors.New("value does not fit the declared encoded size")
)
