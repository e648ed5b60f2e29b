// SPDX-License-Identifier: MIT
// Package dynarray: iteration.
//
// Two styles are offered over the same logical content [0, Len()):
//   - Iterator: an external, restartable cursor (MoveNext/Current/Reset).
//   - All / Values / Backward: range-over-func sequences for Go's for-range.
//
// Neither tracks structural mutation. Changing the Array while iterating is
// not detected; the cursor simply reads whatever occupies the next index.

package dynarray

import "iter"

// beforeFirst is the cursor position of a fresh or reset Iterator.
const beforeFirst = -1

// Iterator is a forward-only, restartable cursor over an Array.
//
// A fresh Iterator is positioned before the first element; Current is only
// meaningful after MoveNext has returned true.
type Iterator[T any] struct {
	arr *Array[T]
	pos int
}

// Iterator returns a new cursor positioned before the first element.
func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{arr: a, pos: beforeFirst}
}

// MoveNext advances to the next element and reports whether one exists.
// Once it returns false the cursor stays exhausted until Reset.
func (it *Iterator[T]) MoveNext() bool {
	if it.pos+1 < it.arr.size {
		it.pos++
		return true
	}
	it.pos = it.arr.size

	return false
}

// Current returns the element under the cursor, or the zero value when the
// cursor is before the first element or exhausted.
func (it *Iterator[T]) Current() T {
	if it.pos < 0 || it.pos >= it.arr.size {
		var zero T
		return zero
	}

	return it.arr.items[it.pos]
}

// Reset returns the cursor to its initial, unadvanced state.
func (it *Iterator[T]) Reset() {
	it.pos = beforeFirst
}

// All returns a sequence of (index, element) pairs in ascending index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Values returns a sequence of the elements in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Backward returns a sequence of (index, element) pairs in descending index order.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			if i >= a.size {
				continue // shrunk by the loop body
			}
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}
