// Package databoard implements an in-process, hierarchical, type-safe
// key/value store for sharing state across cooperating subsystems.
//
// A Board holds an independent set of named entries carrying heterogeneous
// values. Boards link into parent chains so children can read and mutate
// entries that logically live on an ancestor, subject to explicit
// remapping or automatic inheritance (autoremap). The three guarantees the
// package preserves are type safety across opaque value storage,
// change-visibility via a monotonic per-entry sequence counter, and safe
// concurrent access via entry-grained locks rather than board-wide ones.
//
// # Key syntax
//
// A key string is classified on every call:
//
//	key     plain local name
//	@key    redirect to the root of the parent chain, then treat key as plain
//	_key    force resolution on this board's local database only
//	{key}   a remapping target: a board-pointer to name on the parent
//
// Since Go methods cannot carry their own type parameters, the
// type-checked operations (Contains, Get, Set, Delete, GetRef, GetMutRef,
// TryGetRef, TryGetMutRef) are package-level generic functions taking a
// *Board as their first argument, e.g. databoard.Get[int](b, "count").
//
// # Guards
//
// GetRef and GetMutRef return long-lived, locked, typed views of an
// entry's content (ReadGuard and WriteGuard). Both must be released with
// Close once the caller is done with them; a WriteGuard batches any
// number of Set/Mutate calls into a single sequence-counter increment on
// Close.
//
// # Concurrency
//
// Locking is entry-grained: two goroutines operating on different keys of
// the same board never block each other. A board's key→handle map is
// locked only long enough to look up or insert a handle; waits on an
// individual entry's lock always happen after that map lock has been
// released.
package databoard
