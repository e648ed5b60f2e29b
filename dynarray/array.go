// SPDX-License-Identifier: MIT
// Package dynarray: construction, capacity management and index access.
//
// All structural growth funnels through ensureCapacity: it doubles the
// backing buffer (starting from DefaultCapacity when it is empty) until the
// requested logical size fits, copying the live prefix [0,size) across.
// Read-only operations never trigger growth.

package dynarray

import (
	"cmp"
	"reflect"
)

// New creates an empty Array ordered by cmp.Compare.
// By default the capacity is DefaultCapacity and binary search expects
// ascending content.
// Complexity: O(capacity).
func New[T cmp.Ordered](opts ...Option) *Array[T] {
	return NewFunc[T](cmp.Compare[T], opts...)
}

// NewFunc creates an empty Array ordered by compare. Use it for element
// types that are not cmp.Ordered (structs, pointers, ...).
//
// Errors:
//   - Panics with a stable message when compare is nil (programmer error).
//
// Complexity: O(capacity).
func NewFunc[T any](compare CompareFunc[T], opts ...Option) *Array[T] {
	if compare == nil {
		panic(panicNilComparer)
	}
	o := gatherOptions(opts)

	return &Array[T]{
		items:      make([]T, o.capacity),
		compare:    compare,
		descending: o.descending,
	}
}

// From creates an Array holding a copy of items, ordered by cmp.Compare.
// Without WithCapacity the buffer is sized to the smallest doubling of
// DefaultCapacity that fits len(items).
// Complexity: O(len(items)).
func From[T cmp.Ordered](items []T, opts ...Option) *Array[T] {
	return FromFunc[T](items, cmp.Compare[T], opts...)
}

// FromFunc is From with a caller-supplied comparator.
// Panics when compare is nil.
func FromFunc[T any](items []T, compare CompareFunc[T], opts ...Option) *Array[T] {
	if compare == nil {
		panic(panicNilComparer)
	}
	o := gatherOptions(opts)

	capacity := grownCapacity(DefaultCapacity, len(items))
	if o.capacitySet {
		capacity = max(o.capacity, len(items))
	}
	a := &Array[T]{
		items:      make([]T, capacity),
		compare:    compare,
		descending: o.descending,
	}
	a.size = copy(a.items, items)

	return a
}

// Len returns the logical size.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the length of the backing buffer.
func (a *Array[T]) Cap() int { return len(a.items) }

// IsEmpty reports whether the Array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Get returns the element at index.
// Returns ErrOutOfRange if index ∉ [0, Len()).
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, indexError(index, a.size)
	}

	return a.items[index], nil
}

// Set overwrites the element at index.
// Returns ErrOutOfRange if index ∉ [0, Len()).
func (a *Array[T]) Set(index int, item T) error {
	if index < 0 || index >= a.size {
		return indexError(index, a.size)
	}
	a.items[index] = item

	return nil
}

// Add appends item, doubling the backing buffer first when it is full.
// Complexity: amortized O(1).
func (a *Array[T]) Add(item T) {
	a.ensureCapacity(a.size + 1)
	a.items[a.size] = item
	a.size++
}

// AddRange appends items in order. The buffer is grown once, by repeated
// doubling, until Len()+len(items) fits.
// Complexity: O(len(items)) amortized.
func (a *Array[T]) AddRange(items ...T) {
	if len(items) == 0 {
		return
	}
	a.ensureCapacity(a.size + len(items))
	a.size += copy(a.items[a.size:], items)
}

// Clear discards all elements and reallocates a fresh DefaultCapacity
// buffer. Unlike truncation, the previous capacity is not preserved.
// Complexity: O(DefaultCapacity).
func (a *Array[T]) Clear() {
	a.items = make([]T, DefaultCapacity)
	a.size = 0
}

// Clone returns an independent Array with the same content, capacity,
// comparator and search policy. Elements are copied shallowly.
// Complexity: O(Cap()).
func (a *Array[T]) Clone() *Array[T] {
	items, _ := SubArray(a.items, 0, len(a.items)) // full buffer, bounds exact

	return &Array[T]{
		items:      items,
		size:       a.size,
		compare:    a.compare,
		descending: a.descending,
	}
}

// ensureCapacity grows the backing buffer until need elements fit.
func (a *Array[T]) ensureCapacity(need int) {
	if need <= len(a.items) {
		return
	}
	grown := make([]T, grownCapacity(len(a.items), need))
	copy(grown, a.items[:a.size])
	a.items = grown
}

// checkRange validates the inclusive range contract 0 ≤ start ≤ end < size.
func (a *Array[T]) checkRange(start, end int) error {
	if start < 0 || end >= a.size || start > end {
		return rangeError(start, end, a.size)
	}

	return nil
}

// clearTail zeroes the unused slots [from, to) so removed elements are not
// retained by the backing buffer.
func (a *Array[T]) clearTail(from, to int) {
	clear(a.items[from:to])
}

// comparator returns the Array's ordering, panicking on a zero value.
func (a *Array[T]) comparator() CompareFunc[T] {
	if a.compare == nil {
		panic(panicZeroArray)
	}

	return a.compare
}

// isNil reports whether item is a nil pointer, map, slice, func, chan or
// interface value.
func isNil[T any](item T) bool {
	v := reflect.ValueOf(any(item))
	if !v.IsValid() {
		return true // nil interface
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
