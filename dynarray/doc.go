// SPDX-License-Identifier: MIT

// Package dynarray provides Array, a generic, resizable, index-addressable
// sequence with search, mutation, ordering, export and iteration operations.
//
// The Array owns a backing buffer whose length (the capacity) is never
// smaller than the logical size. Capacity starts at DefaultCapacity (4),
// doubles whenever an insertion needs more room, and only shrinks on Clear,
// which reallocates a fresh DefaultCapacity buffer.
//
// Element ordering is supplied once, at construction:
//
//	a := dynarray.New[int]()                         // cmp.Compare for ordered types
//	p := dynarray.NewFunc(func(x, y Point) int {...}) // any element type
//
// Configuration Options (Option):
//
//	– WithCapacity(n int)
//	    Initial capacity; panics when n < 0. Zero is legal.
//
//	– WithDescendingSearch() / WithAscendingSearch()
//	    Binary-search order policy. The default expects ascending content;
//	    the descending policy inverts the branch taken when the midpoint
//	    compares greater than the target.
//
// Core Methods:
//
//	// Capacity & access
//	Add(item)                       // amortized O(1)
//	AddRange(items...)              // O(k)
//	Get(i) / Set(i, v)              // O(1)
//	Len() / Cap() / IsEmpty()       // O(1)
//	Clear() / Clone()
//
//	// Search (inclusive ranges [start,end], 0 ≤ start ≤ end < Len())
//	IndexOf / IndexOfRange          // O(n), first match
//	LastIndexOf / LastIndexOfRange  // O(n), forward scan keeping the last match
//	BinarySearch / BinarySearchFunc / BinarySearchRange // O(log n), over [0,Len())
//	Contains / Exists
//	Find / FindLast / FindAll / FindIndex / FindLastIndex / FindAllIndex
//
//	// Mutation
//	Insert / InsertRange            // O(n), index ∈ [0,Len()]
//	Remove / RemoveAt / RemoveRange / RemoveAll // O(n)
//
//	// Ordering
//	Reverse / ReverseRange
//	Sort / SortRange / SortFunc     // stable, O(n·log n)
//
//	// Export & iteration
//	CopyTo / CopyToAt               // whole backing buffer, Cap() slots
//	CopyItemsTo / ToArray / GetRange / Equals
//	Iterator() (MoveNext/Current/Reset), All(), Values(), Backward()
//
// Sentinel results:
//
//	Searches never fail for a missing element: index searches return
//	NotFound (-1) and element searches return (zero, false, nil).
//
// Errors:
//
//	ErrOutOfRange          – index or range outside the logical content
//	ErrNilPredicate        – nil match predicate
//	ErrNilComparer         – nil comparison function
//	ErrNilItem             – Insert of a nil pointer/map/slice/func/chan/interface
//	ErrDestinationTooShort – copy destination cannot hold the buffer/content
//	ErrDecode              – malformed YAML/JSON sequence
//
// Concurrency:
//
//	An Array has a single owner. It performs no locking; iterators do not
//	detect concurrent or interleaved structural mutation.
package dynarray
