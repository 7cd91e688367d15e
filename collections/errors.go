package collections

import "errors"

// Sentinel errors for the failure kinds the containers can produce. They
// are always returned wrapped in a stackerr.Error, so check for them with
// errors.Is rather than direct comparison.
var (
	// ErrKeyNotFound is returned by map operations that require the key to
	// already be present.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfBounds is returned by list operations given an index
	// that cannot be reached within the current length of the list.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrEmptyContainer is returned when removing or reading an element
	// from an empty queue or stack.
	ErrEmptyContainer = errors.New("container is empty")
)
