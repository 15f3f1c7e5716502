package ir

import "errors"

var (
	// ErrOutOfRange is returned by Index when the position is outside
	// [0, Size()).
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotIndexable is returned by Index on nodes other than lists.
	ErrNotIndexable = errors.New("node is not indexable")

	errAliased = errors.New("node already has an owner")
	errCycle   = errors.New("node would own its own root")
)
