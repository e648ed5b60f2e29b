// SPDX-License-Identifier: MIT
// Package dynarray_test verifies value- and predicate-based lookup.
//
// Purpose:
//   - Lock in first/last-match semantics and the NotFound sentinel.
//   - Lock in both binary-search order policies.
//   - Enforce the inclusive range contract on every range-taking operation.

package dynarray_test

import (
	"testing"

	"github.com/katalvlaran/lvseq/dynarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf_FirstAndLast(t *testing.T) {
	a := dynarray.From([]int{5, 3, 5, 1, 5})

	assert.Equal(t, 0, a.IndexOf(5))
	assert.Equal(t, 4, a.LastIndexOf(5))
	assert.Equal(t, 1, a.IndexOf(3))
	assert.Equal(t, 1, a.LastIndexOf(3))
	assert.Equal(t, dynarray.NotFound, a.IndexOf(9))
	assert.Equal(t, dynarray.NotFound, a.LastIndexOf(9))
}

func TestIndexOfRange(t *testing.T) {
	a := dynarray.From([]int{5, 3, 5, 1, 5})

	i, err := a.IndexOfRange(5, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = a.LastIndexOfRange(5, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = a.LastIndexOfRange(5, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, i, "range end is inclusive")

	i, err = a.IndexOfRange(3, 2, 4)
	require.NoError(t, err, "missing item in a valid range is not an error")
	assert.Equal(t, dynarray.NotFound, i)
}

func TestIndexOf_Empty(t *testing.T) {
	a := dynarray.New[int]()

	assert.Equal(t, dynarray.NotFound, a.IndexOf(0), "unused zeroed slots are never matched")
	assert.False(t, a.Contains(0))

	_, err := a.IndexOfRange(0, 0, 0)
	assert.ErrorIs(t, err, dynarray.ErrOutOfRange)
}

func TestContains(t *testing.T) {
	a := dynarray.From([]string{"a", "b"})

	assert.True(t, a.Contains("b"))
	assert.False(t, a.Contains("c"))
}

// TestRangeBounds_AllOperations ASSERTS every range-taking operation rejects
// start < 0, end ≥ Len() and start > end with ErrOutOfRange and leaves the
// Array untouched.
//
// Implementation:
//   - Stage 1: build a 5-element Array per case.
//   - Stage 2: call each operation with each invalid range.
//   - Stage 3: assert the sentinel and the unchanged content.
func TestRangeBounds_AllOperations(t *testing.T) {
	type rangeOp func(a *dynarray.Array[int], start, end int) error

	ops := map[string]rangeOp{
		"IndexOfRange": func(a *dynarray.Array[int], s, e int) error {
			_, err := a.IndexOfRange(1, s, e)
			return err
		},
		"LastIndexOfRange": func(a *dynarray.Array[int], s, e int) error {
			_, err := a.LastIndexOfRange(1, s, e)
			return err
		},
		"BinarySearchRange": func(a *dynarray.Array[int], s, e int) error {
			_, err := a.BinarySearchRange(s, e, 1, nil)
			return err
		},
		"GetRange": func(a *dynarray.Array[int], s, e int) error {
			_, err := a.GetRange(s, e)
			return err
		},
		"RemoveRange":  func(a *dynarray.Array[int], s, e int) error { return a.RemoveRange(s, e) },
		"ReverseRange": func(a *dynarray.Array[int], s, e int) error { return a.ReverseRange(s, e) },
		"SortRange":    func(a *dynarray.Array[int], s, e int) error { return a.SortRange(s, e) },
	}
	bad := []struct{ start, end int }{
		{-1, 2}, // start < 0
		{0, 5},  // end == Len
		{1, 9},  // end > Len
		{3, 2},  // start > end
		{-3, -1},
	}

	for name, op := range ops {
		for _, r := range bad {
			a := dynarray.From([]int{4, 1, 3, 0, 2})
			err := op(a, r.start, r.end)
			assert.ErrorIs(t, err, dynarray.ErrOutOfRange, "%s(%d,%d)", name, r.start, r.end)
			assert.Equal(t, []int{4, 1, 3, 0, 2}, a.ToArray(), "%s(%d,%d) must not mutate", name, r.start, r.end)
		}
	}
}

// TestPredicateSearches checks the Find family over [1..6] with isEven.
func TestPredicateSearches(t *testing.T) {
	a := dynarray.From([]int{1, 2, 3, 4, 5, 6})

	ok, err := a.Exists(isEven)
	require.NoError(t, err)
	assert.True(t, ok)

	v, found, err := a.Find(isEven)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, v)

	v, found, err = a.FindLast(isEven)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6, v)

	i, err := a.FindIndex(isEven)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = a.FindLastIndex(isEven)
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	all, err := a.FindAll(isEven)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, all)

	idx, err := a.FindAllIndex(isEven)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, idx)
}

// TestPredicateSearches_NoMatch checks sentinels, not errors, for misses.
func TestPredicateSearches_NoMatch(t *testing.T) {
	a := dynarray.From([]int{1, 3, 5})

	ok, err := a.Exists(isEven)
	require.NoError(t, err)
	assert.False(t, ok)

	v, found, err := a.Find(isEven)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, v)

	v, found, err = a.FindLast(never)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, v)

	i, err := a.FindIndex(never)
	require.NoError(t, err)
	assert.Equal(t, dynarray.NotFound, i)

	i, err = a.FindLastIndex(never)
	require.NoError(t, err)
	assert.Equal(t, dynarray.NotFound, i)

	all, err := a.FindAll(never)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	idx, err := a.FindAllIndex(never)
	require.NoError(t, err)
	assert.NotNil(t, idx)
	assert.Empty(t, idx)
}

func TestPredicateSearches_NilPredicate(t *testing.T) {
	a := dynarray.From([]int{1, 2})

	_, err := a.Exists(nil)
	assert.ErrorIs(t, err, dynarray.ErrNilPredicate)
	_, _, err = a.Find(nil)
	assert.ErrorIs(t, err, dynarray.ErrNilPredicate)
	_, _, err = a.FindLast(nil)
	assert.ErrorIs(t, err, dynarray.ErrNilPredicate)
	_, err = a.FindIndex(nil)
	assert.ErrorIs(t, err, dynarray.ErrNilPredicate)
	_, err = a.FindLastIndex(nil)
	assert.ErrorIs(t, err, dynarray.ErrNilPredicate)
	_, err = a.FindAll(nil)
	assert.ErrorIs(t, err, dynarray.ErrNilPredicate)
	_, err = a.FindAllIndex(nil)
	assert.ErrorIs(t, err, dynarray.ErrNilPredicate)
}

// TestFindAll_Independent ensures the result is a copy.
func TestFindAll_Independent(t *testing.T) {
	a := dynarray.From([]int{2, 4})
	all, err := a.FindAll(isEven)
	require.NoError(t, err)

	all[0] = 100
	a.Add(6)
	assert.Equal(t, []int{2, 4, 6}, a.ToArray())
	assert.Equal(t, []int{100, 4}, all)
}

// TestBinarySearch_Ascending checks the default policy finds every element
// of ascending content and misses absent values.
func TestBinarySearch_Ascending(t *testing.T) {
	vals := []int{1, 3, 5, 7, 9, 11}
	a := dynarray.From(vals)

	for i, v := range vals {
		assert.Equal(t, i, a.BinarySearch(v), "BinarySearch(%d)", v)
	}
	for _, miss := range []int{0, 4, 12} {
		assert.Equal(t, dynarray.NotFound, a.BinarySearch(miss), "BinarySearch(%d)", miss)
	}
}

// TestBinarySearch_Descending checks the descending policy, which mirrors
// the inverted comparison branch, on descending content.
func TestBinarySearch_Descending(t *testing.T) {
	vals := []int{11, 9, 7, 5, 3, 1}
	a := dynarray.From(vals, dynarray.WithDescendingSearch())

	for i, v := range vals {
		assert.Equal(t, i, a.BinarySearch(v), "BinarySearch(%d)", v)
	}
	assert.Equal(t, dynarray.NotFound, a.BinarySearch(4))
}

// TestBinarySearch_PolicyMismatch documents that each policy misses
// elements when the content is sorted the other way.
func TestBinarySearch_PolicyMismatch(t *testing.T) {
	asc := dynarray.From([]int{1, 3, 5, 7, 9, 11}, dynarray.WithDescendingSearch())
	assert.Equal(t, dynarray.NotFound, asc.BinarySearch(11))

	desc := dynarray.From([]int{11, 9, 7, 5, 3, 1})
	assert.Equal(t, dynarray.NotFound, desc.BinarySearch(11))

	reset := dynarray.From([]int{1, 3, 5}, dynarray.WithDescendingSearch(), dynarray.WithAscendingSearch())
	assert.Equal(t, 2, reset.BinarySearch(5), "options apply left to right")
}

// TestBinarySearch_IgnoresUnusedSlots ensures zeroed capacity slots beyond
// Len are never visited.
func TestBinarySearch_IgnoresUnusedSlots(t *testing.T) {
	a := dynarray.New[int]()
	a.Add(5)
	require.Equal(t, Cap4, a.Cap())

	assert.Equal(t, dynarray.NotFound, a.BinarySearch(0))
	assert.Equal(t, dynarray.NotFound, dynarray.New[int]().BinarySearch(0))
}

func TestBinarySearchFunc(t *testing.T) {
	a := dynarray.From([]int{9, 7, 4, 2})

	i, err := a.BinarySearchFunc(4, descending)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = a.BinarySearchFunc(4, nil)
	assert.ErrorIs(t, err, dynarray.ErrNilComparer)
}

func TestBinarySearchRange(t *testing.T) {
	a := dynarray.From([]int{1, 3, 5, 7, 9, 11})

	i, err := a.BinarySearchRange(2, 4, 9, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, i, "nil comparer falls back to the Array comparator")

	i, err = a.BinarySearchRange(2, 4, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, dynarray.NotFound, i, "elements outside the range are not found")

	pts := dynarray.FromFunc([]point{{X: 1}, {X: 2}, {X: 3}}, comparePoint)
	i, err = pts.BinarySearchRange(0, 2, point{X: 3}, comparePoint)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

// TestBinarySearchRange_Descending runs the range search under the
// descending policy, with the Array comparator and an explicit one.
func TestBinarySearchRange_Descending(t *testing.T) {
	a := dynarray.From([]int{11, 9, 7, 5, 3, 1}, dynarray.WithDescendingSearch())

	i, err := a.BinarySearchRange(1, 4, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	i, err = a.BinarySearchRange(1, 4, 9, func(x, y int) int { return x - y })
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, err = a.BinarySearchRange(1, 4, 11, nil)
	require.NoError(t, err)
	assert.Equal(t, dynarray.NotFound, i, "elements outside the range are not found")

	i, err = a.BinarySearchRange(2, 5, 6, nil)
	require.NoError(t, err)
	assert.Equal(t, dynarray.NotFound, i)

	// An ascending Array searched over a descending range misses.
	asc := dynarray.From([]int{11, 9, 7, 5, 3, 1})
	i, err = asc.BinarySearchRange(0, 5, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, dynarray.NotFound, i)
}
