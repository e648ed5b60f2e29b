// SPDX-License-Identifier: MIT
// Package dynarray: capability contracts.
//
// Copier and Searcher are the two contracts callers can depend on instead of
// the concrete *Array; List composes them with the mutation surface.

package dynarray

// Copier exports the content, either into a caller buffer (the whole
// backing buffer or only the live elements) or into a freshly allocated slice.
type Copier[T any] interface {
	CopyTo(dest []T) error
	CopyToAt(dest []T, destStart int) error
	CopyItemsTo(dest []T, destStart int) error
	ToArray() []T
}

// Searcher is the value- and predicate-based lookup surface.
type Searcher[T any] interface {
	BinarySearch(item T) int
	BinarySearchFunc(item T, compare CompareFunc[T]) (int, error)
	BinarySearchRange(start, end int, item T, compare CompareFunc[T]) (int, error)
	Contains(item T) bool
	Exists(match Predicate[T]) (bool, error)
	Find(match Predicate[T]) (T, bool, error)
	FindAll(match Predicate[T]) ([]T, error)
	FindLast(match Predicate[T]) (T, bool, error)
	FindAllIndex(match Predicate[T]) ([]int, error)
	FindIndex(match Predicate[T]) (int, error)
	FindLastIndex(match Predicate[T]) (int, error)
	IndexOf(item T) int
	IndexOfRange(item T, start, end int) (int, error)
	LastIndexOf(item T) int
	LastIndexOfRange(item T, start, end int) (int, error)
}

// List is the full dynamic-array contract implemented by *Array.
type List[T any] interface {
	Copier[T]
	Searcher[T]

	Len() int
	Get(index int) (T, error)
	Set(index int, item T) error

	Add(item T)
	AddRange(items ...T)
	Clear()
	Equals(other *Array[T]) bool
	Insert(index int, item T) error
	InsertRange(index int, items ...T) error
	Remove(item T) bool
	RemoveAll(match Predicate[T]) (int, error)
	RemoveAt(index int) error
	RemoveRange(start, end int) error
	Reverse()
	ReverseRange(start, end int) error
	Sort()
	SortRange(start, end int) error
}

// Compile-time checks.
var (
	_ List[int]     = (*Array[int])(nil)
	_ Copier[any]   = (*Array[any])(nil)
	_ Searcher[any] = (*Array[any])(nil)
)
