// SPDX-License-Identifier: MIT
// Package dynarray: value- and predicate-based lookup.
//
// Range variants take an inclusive range [start, end] and enforce
// 0 ≤ start ≤ end < Len(); a violation returns an error wrapping
// ErrOutOfRange. "Not found" is never an error: index searches return
// NotFound (-1) and element searches return (zero value, false).
//
// Last-match searches scan forward and keep overwriting the result, so they
// always visit the whole range.

package dynarray

// IndexOf returns the first index whose element compares equal to item,
// or NotFound.
// Complexity: O(n).
func (a *Array[T]) IndexOf(item T) int {
	return a.indexOf(item, 0, a.size-1)
}

// IndexOfRange is IndexOf restricted to the inclusive range [start, end].
func (a *Array[T]) IndexOfRange(item T, start, end int) (int, error) {
	if err := a.checkRange(start, end); err != nil {
		return NotFound, err
	}

	return a.indexOf(item, start, end), nil
}

// LastIndexOf returns the last index whose element compares equal to item,
// or NotFound.
// Complexity: O(n).
func (a *Array[T]) LastIndexOf(item T) int {
	return a.lastIndexOf(item, 0, a.size-1)
}

// LastIndexOfRange is LastIndexOf restricted to the inclusive range [start, end].
func (a *Array[T]) LastIndexOfRange(item T, start, end int) (int, error) {
	if err := a.checkRange(start, end); err != nil {
		return NotFound, err
	}

	return a.lastIndexOf(item, start, end), nil
}

// Contains reports whether any element compares equal to item.
func (a *Array[T]) Contains(item T) bool {
	return a.IndexOf(item) != NotFound
}

// Exists reports whether any element satisfies match.
// Returns ErrNilPredicate if match is nil.
func (a *Array[T]) Exists(match Predicate[T]) (bool, error) {
	i, err := a.FindIndex(match)
	if err != nil {
		return false, err
	}

	return i != NotFound, nil
}

// Find returns the first element satisfying match. ok is false (and the
// element is the zero value) when nothing matches.
// Returns ErrNilPredicate if match is nil.
func (a *Array[T]) Find(match Predicate[T]) (item T, ok bool, err error) {
	i, err := a.FindIndex(match)
	if err != nil || i == NotFound {
		return item, false, err
	}

	return a.items[i], true, nil
}

// FindLast returns the last element satisfying match, like Find.
func (a *Array[T]) FindLast(match Predicate[T]) (item T, ok bool, err error) {
	i, err := a.FindLastIndex(match)
	if err != nil || i == NotFound {
		return item, false, err
	}

	return a.items[i], true, nil
}

// FindIndex returns the index of the first element satisfying match, or NotFound.
// Returns ErrNilPredicate if match is nil.
func (a *Array[T]) FindIndex(match Predicate[T]) (int, error) {
	if match == nil {
		return NotFound, ErrNilPredicate
	}
	for i := 0; i < a.size; i++ {
		if match(a.items[i]) {
			return i, nil
		}
	}

	return NotFound, nil
}

// FindLastIndex returns the index of the last element satisfying match, or NotFound.
// Returns ErrNilPredicate if match is nil.
func (a *Array[T]) FindLastIndex(match Predicate[T]) (int, error) {
	if match == nil {
		return NotFound, ErrNilPredicate
	}
	found := NotFound
	for i := 0; i < a.size; i++ {
		if match(a.items[i]) {
			found = i
		}
	}

	return found, nil
}

// FindAll returns every element satisfying match, in order, as a newly
// allocated slice (empty, not nil, when nothing matches).
// Returns ErrNilPredicate if match is nil.
func (a *Array[T]) FindAll(match Predicate[T]) ([]T, error) {
	if match == nil {
		return nil, ErrNilPredicate
	}
	out := make([]T, 0)
	for i := 0; i < a.size; i++ {
		if match(a.items[i]) {
			out = append(out, a.items[i])
		}
	}

	return out, nil
}

// FindAllIndex returns the index of every element satisfying match, in
// ascending order (empty, not nil, when nothing matches).
// Returns ErrNilPredicate if match is nil.
func (a *Array[T]) FindAllIndex(match Predicate[T]) ([]int, error) {
	if match == nil {
		return nil, ErrNilPredicate
	}

	return a.matchingIndices(match), nil
}

// BinarySearch locates item in the logical content [0, Len()) using the
// Array's comparator and returns its index, or NotFound.
//
// The content must be sorted according to the search policy: ascending by
// default, descending when the Array was built WithDescendingSearch.
// With duplicates, any matching index may be returned.
//
// Complexity: O(log n).
func (a *Array[T]) BinarySearch(item T) int {
	return a.binarySearch(0, a.size-1, item, a.comparator())
}

// BinarySearchFunc is BinarySearch with an explicit comparator.
// Returns ErrNilComparer if compare is nil.
func (a *Array[T]) BinarySearchFunc(item T, compare CompareFunc[T]) (int, error) {
	if compare == nil {
		return NotFound, ErrNilComparer
	}

	return a.binarySearch(0, a.size-1, item, compare), nil
}

// BinarySearchRange searches the inclusive range [start, end]. A nil
// compare falls back to the Array's comparator; ErrNilComparer is returned
// when neither is set (a zero-value Array).
func (a *Array[T]) BinarySearchRange(start, end int, item T, compare CompareFunc[T]) (int, error) {
	if err := a.checkRange(start, end); err != nil {
		return NotFound, err
	}
	if compare == nil {
		compare = a.compare
	}
	if compare == nil {
		return NotFound, ErrNilComparer
	}

	return a.binarySearch(start, end, item, compare), nil
}

// binarySearch runs a midpoint search over the inclusive range [lo, hi].
// Under the descending policy the branch is inverted: an element greater
// than item sends the search to the upper half.
func (a *Array[T]) binarySearch(lo, hi int, item T, compare CompareFunc[T]) int {
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := compare(a.items[mid], item)
		if c == 0 {
			return mid
		}
		upper := c < 0
		if a.descending {
			upper = c > 0
		}
		if upper {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return NotFound
}

func (a *Array[T]) indexOf(item T, start, end int) int {
	compare := a.comparator()
	for i := start; i <= end; i++ {
		if compare(a.items[i], item) == 0 {
			return i
		}
	}

	return NotFound
}

func (a *Array[T]) lastIndexOf(item T, start, end int) int {
	found := NotFound
	compare := a.comparator()
	for i := start; i <= end; i++ {
		if compare(a.items[i], item) == 0 {
			found = i
		}
	}

	return found
}

// matchingIndices collects, in ascending order, the indices whose element
// satisfies match. match must be non-nil.
func (a *Array[T]) matchingIndices(match Predicate[T]) []int {
	out := make([]int, 0)
	for i := 0; i < a.size; i++ {
		if match(a.items[i]) {
			out = append(out, i)
		}
	}

	return out
}
