// Package view lifts the raw records of an opened IFC file into convenient
// domain values: modules, scopes, declarations, names, charts and
// expressions.
//
// Every wrapper pairs a record (or index) with the owning *blob.File and is
// trivially copyable; wrappers own no caches and no memory, so they are free
// to construct and discard. Like everything derived from a File they borrow
// from the underlying blob.
package view
