// Package format defines the scalar vocabulary of the IFC artifact format:
// opaque byte offsets, raw counts, tagged partition indexes, sequences, and
// the enumerations embedded in record layouts.
//
// Every offset, size or cardinality stored in the artifact is wrapped in an
// opaque scalar type (ByteOffset, Cardinality, EntitySize); a single
// conversion via the Count/Offset methods yields the usable integer.
// TextOffset addresses the string table and is resolved by the reader. Index
// types carry a sort tag in their high 8 bits selecting the sub-partition of
// their family; the low 24 bits are the linear index. A whole-zero bit
// pattern is the null index for every tagged index type.
package format
