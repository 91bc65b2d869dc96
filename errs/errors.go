// Package errs defines the sentinel errors returned by the ifc module.
//
// Callers should use errors.Is to match against these sentinels, since the
// reader wraps them with additional context (partition names, offsets) via
// fmt.Errorf("...: %w", ...).
package errs

import "errors"

// Open-time errors. A structurally broken artifact surfaces as
// ErrCorruptedSignature or ErrCorruptedFile; the table-of-contents name
// checks add ErrDuplicatePartition and ErrPartitionNameCollision. All of
// them are reported before any partition is touched.
var (
	// ErrCorruptedSignature reports that the first four bytes of the blob do
	// not match the canonical IFC file signature.
	ErrCorruptedSignature = errors.New("corrupted file signature")

	// ErrCorruptedFile reports that the computed file size (signature +
	// header + string table + table of contents + partition payloads)
	// disagrees with the actual blob length. Open also returns it, wrapped
	// with context, for a truncated header and for a table of contents,
	// string table or partition payload that does not fit inside the blob.
	ErrCorruptedFile = errors.New("corrupted file: size mismatch")

	// ErrInvalidTOC reports a table-of-contents descriptor parsed from fewer
	// bytes than its fixed size.
	ErrInvalidTOC = errors.New("table of contents out of bounds")

	// ErrDuplicatePartition reports two TOC entries carrying the same
	// partition name.
	ErrDuplicatePartition = errors.New("duplicate partition name")

	// ErrPartitionNameCollision reports two distinct partition names hashing
	// to the same 64-bit identity.
	ErrPartitionNameCollision = errors.New("partition name hash collision")
)

// Format-contract errors. After a successful Open the reader operates under
// a closed-world assumption; these surface as panics when a well-formedness
// guarantee of the format is violated.
var (
	// ErrMissingPartition reports a required partition absent from the TOC.
	ErrMissingPartition = errors.New("missing partition")

	// ErrEntrySizeMismatch reports a TOC entry whose advertised entry size
	// differs from the record layout the partition is accessed with.
	ErrEntrySizeMismatch = errors.New("partition entry size mismatch")

	// ErrIndexOutOfRange reports an index at or beyond a partition's
	// cardinality.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSequenceOutOfRange reports a sequence whose [start, start+size)
	// run exceeds the partition it is sliced from.
	ErrSequenceOutOfRange = errors.New("sequence out of range")

	// ErrTextOutOfRange reports a text offset outside the string table.
	ErrTextOutOfRange = errors.New("text offset out of string table")
)

// Auxiliary errors.
var (
	// ErrNoEnvironment reports an imported-module lookup on a file that was
	// opened without an environment.
	ErrNoEnvironment = errors.New("no module environment configured")

	// ErrUnknownCompression reports a compression type with no built-in
	// codec.
	ErrUnknownCompression = errors.New("unknown compression type")
)
