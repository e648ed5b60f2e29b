// SPDX-License-Identifier: MIT
// Package dynarray declares the Array container, its callback types and the
// capacity constants shared by every operation.

package dynarray

// DefaultCapacity is the backing-buffer length of a fresh or cleared Array,
// and the capacity a zero-capacity Array grows to on its first append.
const DefaultCapacity = 4

// NotFound is the sentinel index returned by every index-producing search
// when no element matches.
const NotFound = -1

// growthFactor is the multiplier applied to the capacity when it is exhausted.
const growthFactor = 2

// CompareFunc is a three-way comparison: negative when a < b, zero when
// a == b, positive when a > b. It must define a total order.
type CompareFunc[T any] func(a, b T) int

// Predicate reports whether an element matches a condition.
type Predicate[T any] func(item T) bool

// Array is a generic, resizable, index-addressable sequence.
//
// The backing buffer items always satisfies len(items) ≥ size; positions
// [0,size) hold live elements, positions [size,len(items)) are unused and
// kept zeroed. Capacity only grows (doubling from DefaultCapacity); Clear is
// the single operation that shrinks it, back to DefaultCapacity.
//
// Every search, sort and equality operation orders elements with compare.
// Arrays must be built with New, NewFunc, From or FromFunc; the zero value
// has no comparator. On a zero value the storage operations (Add, Insert,
// Get, RemoveAt, ...) work, the comparator-taking variants return
// ErrNilComparer, and the comparing operations (IndexOf, Contains, Remove,
// BinarySearch, Sort, Equals, ...) panic with a message naming the
// constructors.
//
// Array is not safe for concurrent use. Callers sharing an Array across
// goroutines must serialize access themselves.
type Array[T any] struct {
	items   []T            // backing storage; len(items) is the capacity
	size    int            // logical size, 0 ≤ size ≤ len(items)
	compare CompareFunc[T] // three-way element ordering

	descending bool // binary-search order policy (see WithDescendingSearch)
}
