// SPDX-License-Identifier: MIT
// Package dynarray: structural mutation (insert/remove family).
//
// Insertions shift the tail right inside the existing buffer while capacity
// allows. When it does not, the buffer is rebuilt once: prefix [0,index),
// the inserted items and suffix [index,size) are laid out back to back in a
// fresh buffer of doubled capacity. Removals always compact in place and
// zero the vacated tail slots. Either way the relative order of untouched
// elements is preserved and size reflects the new count when the call returns.

package dynarray

// Insert places item at index, shifting elements [index, Len()) one slot
// right. index == Len() appends.
//
// Errors:
//   - ErrOutOfRange if index ∉ [0, Len()].
//   - ErrNilItem if item is a nil pointer, map, slice, func, chan or interface.
//
// Complexity: O(n).
func (a *Array[T]) Insert(index int, item T) error {
	if index < 0 || index > a.size {
		return indexError(index, a.size+1)
	}
	if isNil(item) {
		return ErrNilItem
	}

	if a.size == len(a.items) {
		a.items = rebuild(grownCapacity(len(a.items), a.size+1),
			a.items[:index], []T{item}, a.items[index:a.size])
		a.size++

		return nil
	}
	copy(a.items[index+1:a.size+1], a.items[index:a.size])
	a.items[index] = item
	a.size++

	return nil
}

// InsertRange places items, in order, starting at index. Elements previously
// at [index, Len()) follow the inserted block. An empty items is a no-op.
//
// Errors:
//   - ErrOutOfRange if index ∉ [0, Len()].
//
// Complexity: O(n + len(items)).
func (a *Array[T]) InsertRange(index int, items ...T) error {
	if index < 0 || index > a.size {
		return indexError(index, a.size+1)
	}
	n := len(items)
	if n == 0 {
		return nil
	}

	need := a.size + n
	if need > len(a.items) {
		a.items = rebuild(grownCapacity(len(a.items), need),
			a.items[:index], items, a.items[index:a.size])
		a.size = need

		return nil
	}
	copy(a.items[index+n:need], a.items[index:a.size])
	copy(a.items[index:index+n], items)
	a.size = need

	return nil
}

// Remove deletes the first element comparing equal to item and reports
// whether one was found. A missing item is a no-op.
// Complexity: O(n).
func (a *Array[T]) Remove(item T) bool {
	i := a.IndexOf(item)
	if i == NotFound {
		return false
	}
	a.removeSpan(i, i)

	return true
}

// RemoveAt deletes the element at index.
// Returns ErrOutOfRange if index ∉ [0, Len()).
// Complexity: O(n).
func (a *Array[T]) RemoveAt(index int) error {
	if index < 0 || index >= a.size {
		return indexError(index, a.size)
	}
	a.removeSpan(index, index)

	return nil
}

// RemoveRange deletes the inclusive range [start, end].
// Returns ErrOutOfRange unless 0 ≤ start ≤ end < Len().
// Complexity: O(n).
func (a *Array[T]) RemoveRange(start, end int) error {
	if err := a.checkRange(start, end); err != nil {
		return err
	}
	a.removeSpan(start, end)

	return nil
}

// RemoveAll deletes every element satisfying match and returns how many
// were removed. Surviving elements keep their relative order.
//
// Implementation:
//   - Stage 1: collect matching indices in ascending order.
//   - Stage 2: compact survivors left, starting at the first match.
//   - Stage 3: zero the vacated tail and shrink size.
//
// Errors:
//   - ErrNilPredicate if match is nil (the Array is left untouched).
//
// Complexity: O(n).
func (a *Array[T]) RemoveAll(match Predicate[T]) (int, error) {
	if match == nil {
		return 0, ErrNilPredicate
	}
	hits := a.matchingIndices(match)
	if len(hits) == 0 {
		return 0, nil
	}

	w, k := hits[0], 0
	for r := hits[0]; r < a.size; r++ {
		if k < len(hits) && hits[k] == r {
			k++ // drop
			continue
		}
		a.items[w] = a.items[r]
		w++
	}
	a.clearTail(w, a.size)
	a.size = w

	return len(hits), nil
}

// removeSpan closes the inclusive gap [start, end]; bounds are pre-validated.
func (a *Array[T]) removeSpan(start, end int) {
	copy(a.items[start:], a.items[end+1:a.size])
	newSize := a.size - (end - start + 1)
	a.clearTail(newSize, a.size)
	a.size = newSize
}
