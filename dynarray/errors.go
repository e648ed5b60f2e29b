// SPDX-License-Identifier: MIT
// Package dynarray: sentinel error set.
// Every exported operation reports bad input through these sentinels and
// tests match them with errors.Is. Context (the offending index, the valid
// range) is attached with fmt.Errorf("%w: ...") at the operation boundary.
// Panics are reserved for programmer errors: invalid options, a nil
// comparator at construction, and comparing elements of a zero-value Array.

package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index or inclusive range outside the
	// logical content, i.e. a violation of 0 ≤ start ≤ end < Len().
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrNilPredicate indicates that a required match predicate was nil.
	ErrNilPredicate = errors.New("dynarray: predicate is nil")

	// ErrNilComparer indicates that a required comparison function was nil.
	ErrNilComparer = errors.New("dynarray: comparer is nil")

	// ErrNilItem indicates that Insert received a nil pointer, map, slice,
	// func, chan or interface value.
	ErrNilItem = errors.New("dynarray: item is nil")

	// ErrDestinationTooShort indicates that a copy destination cannot hold
	// the backing buffer (CopyTo) or the live elements (CopyItemsTo) at the
	// requested offset.
	ErrDestinationTooShort = errors.New("dynarray: destination too short")

	// ErrDecode indicates malformed YAML/JSON input for an Array.
	ErrDecode = errors.New("dynarray: cannot decode sequence")
)

// Internal panic messages (no magic strings).
const (
	panicCapacityNegative = "dynarray: WithCapacity: capacity must be non-negative"
	panicNilComparer      = "dynarray: NewFunc: compare must not be nil"
	panicZeroArray        = "dynarray: Array has no comparator; build it with New, NewFunc, From or FromFunc"
)

// indexError wraps ErrOutOfRange for a single index checked against [0, limit).
func indexError(index, limit int) error {
	return fmt.Errorf("%w: index %d not in [0,%d)", ErrOutOfRange, index, limit)
}

// rangeError wraps ErrOutOfRange for an inclusive range [start, end].
func rangeError(start, end, size int) error {
	return fmt.Errorf("%w: range [%d,%d] not within [0,%d)", ErrOutOfRange, start, end, size)
}
