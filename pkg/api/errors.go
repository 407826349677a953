package api

import "errors"

var (
	// ErrInvalidInput reports an input shape the engine can not work with, like
	// ragged instances or a dataset without a single row.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIllegalAttribute reports an attribute index outside of the declared range.
	ErrIllegalAttribute = errors.New("illegal attribute")
	// ErrInconsistentState reports a broken invariant of the engine. It is
	// never expected and must not be masked.
	ErrInconsistentState = errors.New("inconsistent state")
)
