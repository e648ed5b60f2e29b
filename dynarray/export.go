// SPDX-License-Identifier: MIT
// Package dynarray: export and structural equality.
//
// Every slice handed out here is an independent copy: later mutation of the
// Array never shows through it, and writes into it never reach the Array.

package dynarray

import "fmt"

// CopyTo copies the whole backing buffer, Cap() slots, into dest starting
// at dest[0]. Slots past Len() arrive as zero values.
// Returns ErrDestinationTooShort if len(dest) < Cap().
func (a *Array[T]) CopyTo(dest []T) error {
	return a.CopyToAt(dest, 0)
}

// CopyToAt copies the whole backing buffer into dest starting at
// dest[destStart]. Live elements land at [destStart, destStart+Len()); the
// unused tail is zeroed by invariant, so no stale element leaks out.
//
// Errors:
//   - ErrOutOfRange if destStart < 0.
//   - ErrDestinationTooShort if len(dest)-destStart < Cap().
//
// Complexity: O(Cap()).
func (a *Array[T]) CopyToAt(dest []T, destStart int) error {
	return a.copyOut(dest, destStart, len(a.items))
}

// CopyItemsTo copies only the live elements, Len() of them, into dest
// starting at dest[destStart].
//
// Errors:
//   - ErrOutOfRange if destStart < 0.
//   - ErrDestinationTooShort if len(dest)-destStart < Len().
//
// Complexity: O(n).
func (a *Array[T]) CopyItemsTo(dest []T, destStart int) error {
	return a.copyOut(dest, destStart, a.size)
}

func (a *Array[T]) copyOut(dest []T, destStart, n int) error {
	if destStart < 0 {
		return indexError(destStart, len(dest))
	}
	if len(dest)-destStart < n {
		return fmt.Errorf("%w: need %d slots from %d, have %d",
			ErrDestinationTooShort, n, destStart, len(dest))
	}
	copy(dest[destStart:], a.items[:n])

	return nil
}

// ToArray returns a newly allocated slice of exactly Len() elements.
// Complexity: O(n).
func (a *Array[T]) ToArray() []T {
	out, _ := SubArray(a.items, 0, a.size) // size ≤ len(items) by invariant

	return out
}

// GetRange returns a copy of the inclusive range [start, end].
// Returns ErrOutOfRange unless 0 ≤ start ≤ end < Len().
func (a *Array[T]) GetRange(start, end int) ([]T, error) {
	if err := a.checkRange(start, end); err != nil {
		return nil, err
	}

	return SubArray(a.items, start, end-start+1)
}

// Equals reports whether other holds the same number of elements and every
// pair at the same index compares equal under the receiver's comparator.
// A nil other equals only an empty receiver. Capacity is not compared.
// Complexity: O(n).
func (a *Array[T]) Equals(other *Array[T]) bool {
	if other == nil {
		return a.size == 0
	}
	if a.size != other.size {
		return false
	}
	compare := a.comparator()
	for i := 0; i < a.size; i++ {
		if compare(a.items[i], other.items[i]) != 0 {
			return false
		}
	}

	return true
}
