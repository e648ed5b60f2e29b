// SPDX-License-Identifier: MIT

package dynarray

import "fmt"

// SubArray returns a newly allocated slice of length elements copied from
// src[start : start+length]. The result never aliases src.
//
// Errors:
//   - ErrOutOfRange if start < 0, length < 0 or start+length > len(src).
//
// Complexity:
//   - Time O(length), Space O(length).
func SubArray[T any](src []T, start, length int) ([]T, error) {
	if start < 0 || length < 0 || start > len(src)-length {
		return nil, fmt.Errorf("%w: sub-array [%d,%d) of %d elements",
			ErrOutOfRange, start, start+length, len(src))
	}
	out := make([]T, length)
	copy(out, src[start:start+length])

	return out, nil
}

// rebuild allocates a fresh buffer of the given capacity and lays parts out
// back to back from index 0. The caller guarantees the parts fit.
// It is the slice-and-rebuild primitive used when an insertion exhausts
// the current capacity.
func rebuild[T any](capacity int, parts ...[]T) []T {
	out := make([]T, capacity)
	n := 0
	for _, p := range parts {
		n += copy(out[n:], p)
	}

	return out
}

// grownCapacity returns the capacity reached by doubling from current
// (or starting at DefaultCapacity when current is 0) until need fits.
func grownCapacity(current, need int) int {
	c := current
	if c == 0 {
		c = DefaultCapacity
	}
	for c < need {
		c *= growthFactor
	}

	return c
}
