// Package record defines the fixed-size record layouts stored in the
// partitions of an IFC artifact: declarations, types, expressions,
// attributes, syntax-tree nodes, names, charts, literals, module references
// and associated traits.
//
// Every struct here mirrors the producer's on-disk layout field for field,
// with explicit padding where natural alignment would insert it, so a
// partition can be viewed in place as a Go slice of the record type without
// copying. Types carrying a PartitionName method own a canonical partition
// name; the reader resolves them through the table of contents by that name.
package record
