package cevtib

import "errors"

var (
	// ErrOutOfBounds is returned by Set when the index is not covered by
	// the current length.
	ErrOutOfBounds = errors.New("index out of bounds")
)
