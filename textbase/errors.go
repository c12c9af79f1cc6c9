package textbase

import "errors"

var (
	// ErrOutOfRange is returned for an index or length outside the
	// document.
	ErrOutOfRange = errors.New("index out of range")

	// ErrReadOnly is returned when editing a read-only document.
	ErrReadOnly = errors.New("document is read-only")
)
