// SPDX-License-Identifier: MIT

package dynarray

import "slices"

// Reverse reverses the logical content in place.
// Complexity: O(n).
func (a *Array[T]) Reverse() {
	slices.Reverse(a.items[:a.size])
}

// ReverseRange reverses the inclusive range [start, end] in place.
// Returns ErrOutOfRange unless 0 ≤ start ≤ end < Len().
func (a *Array[T]) ReverseRange(start, end int) error {
	if err := a.checkRange(start, end); err != nil {
		return err
	}
	slices.Reverse(a.items[start : end+1])

	return nil
}

// Sort orders the logical content ascending by the Array's comparator.
// The sort is stable: equal elements keep their relative order.
// Complexity: O(n·log n).
func (a *Array[T]) Sort() {
	slices.SortStableFunc(a.items[:a.size], a.comparator())
}

// SortRange sorts the inclusive range [start, end], leaving the rest untouched.
// Returns ErrOutOfRange unless 0 ≤ start ≤ end < Len().
func (a *Array[T]) SortRange(start, end int) error {
	if err := a.checkRange(start, end); err != nil {
		return err
	}
	slices.SortStableFunc(a.items[start:end+1], a.comparator())

	return nil
}

// SortFunc sorts the logical content with compare instead of the Array's
// own comparator. Returns ErrNilComparer if compare is nil.
func (a *Array[T]) SortFunc(compare CompareFunc[T]) error {
	if compare == nil {
		return ErrNilComparer
	}
	slices.SortStableFunc(a.items[:a.size], compare)

	return nil
}
