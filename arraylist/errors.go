package arraylist

import "errors"

var (
	// ErrOutOfRange signals access to an element outside of [0, size), including
	// access to the last element of an empty list.
	ErrOutOfRange = errors.New("arraylist: out of range")
)
