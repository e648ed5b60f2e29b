// SPDX-License-Identifier: MIT
// Package dynarray_test contains shared fixtures for lvseq/dynarray tests.
//
// Purpose:
//   - Provide small, deterministic fixtures (element types, comparators, predicates).
//   - Keep magic numbers out of test bodies.

package dynarray_test

import (
	"cmp"

	"github.com/katalvlaran/lvseq/dynarray"
)

// Capacities observed through the doubling policy.
const (
	Cap0  = 0
	Cap4  = dynarray.DefaultCapacity
	Cap8  = 2 * Cap4
	Cap16 = 2 * Cap8
)

// point is a non-ordered element type used with NewFunc / FromFunc.
type point struct {
	X, Y int
	Tag  string
}

// comparePoint orders points by X, then Y. Tag is ignored, which lets
// stability tests tell equal elements apart.
func comparePoint(a, b point) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}

	return cmp.Compare(a.Y, b.Y)
}

// comparePointPtr orders *point by the pointed-to value.
func comparePointPtr(a, b *point) int {
	return comparePoint(*a, *b)
}

// descending is a three-way comparison reversing the natural int order.
func descending(a, b int) int { return cmp.Compare(b, a) }

func isEven(x int) bool { return x%2 == 0 }

func isFive(x int) bool { return x == 5 }

func never(int) bool { return false }

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
