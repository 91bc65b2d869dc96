// Package blob implements the IFC artifact reader: a memory-safe, lazy,
// type-indexed view over the self-describing partitioned blob a C++ module
// compiler emits for a translated module interface.
//
// Open validates the blob eagerly (signature and computed size) and builds
// the table-of-contents name map; everything else is resolved lazily.
// Partition accessors return zero-copy views typed over the blob's bytes,
// memoized in a fixed-size slot cache so that reflection walks issuing
// millions of accessor calls never pay a second name lookup. Trait indexes
// (declaration attributes, deprecation texts, friendships, template
// specializations) are cross-reference maps materialized by a linear scan on
// first use.
//
// # Closed world after Open
//
// Open rejects a structurally broken artifact with an error. After a
// successful Open the reader assumes a well-formed file: an out-of-range
// index, a partition whose advertised entry size disagrees with its record
// layout, or a missing required partition is a format-contract violation and
// panics with the matching errs sentinel. Optional data is never an error:
// TryPartition reports absence, and a trait query for a declaration without
// trait data yields the element's zero value.
//
// # Concurrency
//
// A File is a single-writer, multi-reader object. The lazy caches are
// populated without synchronization, so concurrent readers are safe only
// after the caches have been warmed on a single goroutine — either by
// touching every partition and trait the readers will use, or wholesale via
// Preload. Distinct Files need no coordination.
//
// # Lifetime
//
// The File borrows the blob and owns nothing but its caches. Every
// partition view, record pointer, slice and string obtained from a File
// aliases the blob's memory; the blob must outlive the File and everything
// derived from it.
package blob
