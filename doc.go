// SPDX-License-Identifier: MIT

// Package lvseq is a small, dependency-light home for generic in-memory
// sequence containers.
//
// What is inside?
//
//	dynarray/ — Array[T]: a resizable, index-addressable sequence with
//	            capacity doubling, linear and binary search, predicate
//	            queries, splice-style insert/remove, range sort/reverse,
//	            copy-out export, a restartable iterator, range-over-func
//	            sequences and YAML/JSON encoding.
//	examples/ — a runnable leaderboard walkthrough.
//
// Guarantees:
//
//   - Deterministic – no hidden randomness, no global state.
//   - Explicit errors – sentinels matched with errors.Is; "not found" is a
//     sentinel result (-1 or (zero, false)), never an error.
//   - Single owner – containers do no locking; callers sharing one across
//     goroutines must serialize access.
//
// Quick example:
//
//	a := dynarray.New[int]()
//	a.AddRange(3, 1, 2)
//	a.Sort()          // [1 2 3]
//	a.IndexOf(2)      // 1
//	_ = a.RemoveAt(0) // [2 3]
//
//	go get github.com/katalvlaran/lvseq/dynarray
package lvseq
