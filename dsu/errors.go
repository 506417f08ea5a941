package dsu

import "errors"

var (
	// ErrBadSize indicates a negative element count passed to New.
	ErrBadSize = errors.New("dsu: invalid size")

	// ErrOutOfRange indicates an element index outside [0, Size()).
	// Usage: if errors.Is(err, dsu.ErrOutOfRange) { /* fix index */ }.
	ErrOutOfRange = errors.New("dsu: element out of range")
)
