package collections

import "errors"

// Sentinel errors returned by the textual operations of the collections.
var (
	// ErrNotFound is returned when a key, item or position is not present.
	ErrNotFound = errors.New("collections: not found")

	// ErrIndexOutOfRange is returned when a textual index parses but lies
	// outside [0, Count()].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrMalformedArgument is returned when a textual argument does not have
	// the shape the operation expects.
	ErrMalformedArgument = errors.New("collections: malformed argument")
)
