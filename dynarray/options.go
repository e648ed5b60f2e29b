// SPDX-License-Identifier: MIT

// Package dynarray: functional configuration for Array constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options only affect construction and the binary-search order policy;
//     they never change the bounds contract of any operation.
//   - The capacity requested through WithCapacity is honored exactly. Growth
//     afterwards always doubles, so a capacity of 3 grows to 6, 12, ...

package dynarray

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultDescendingSearch selects the binary-search order policy.
	// false ⇒ BinarySearch expects ascending content.
	DefaultDescendingSearch = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors resolve them via gatherOptions.
type Options struct {
	capacity    int  // initial backing-buffer length
	descending  bool // DefaultDescendingSearch
	capacitySet bool // WithCapacity was applied
}

// WithCapacity sets the initial capacity of the backing buffer.
//
// Behavior highlights:
//   - A capacity of 0 is legal; the first Add grows it to DefaultCapacity.
//   - For From/FromFunc the effective capacity is max(n, len(items)).
//
// Errors:
//   - Panics with a stable message when n < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *Options) {
		o.capacity = n
		o.capacitySet = true
	}
}

// WithDescendingSearch makes BinarySearch treat the logical content as
// sorted in descending order: when compare(mid, item) > 0 the search moves
// to the upper half. Content sorted ascending will generally not be found
// under this policy.
func WithDescendingSearch() Option {
	return func(o *Options) { o.descending = true }
}

// WithAscendingSearch restores the default ascending binary-search policy.
func WithAscendingSearch() Option {
	return func(o *Options) { o.descending = false }
}

// gatherOptions applies opts left-to-right over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{
		capacity:   DefaultCapacity,
		descending: DefaultDescendingSearch,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
