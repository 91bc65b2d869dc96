package format

// ByteOffset is an opaque byte offset into the artifact blob.
type ByteOffset uint32

// Offset returns the usable integer offset.
func (o ByteOffset) Offset() int {
	return int(o)
}

// TextOffset is a byte offset from the base of the string table. Strings are
// NUL-terminated. The zero offset is the null text (the string table begins
// with a NUL byte, so a non-null empty string is representable too).
type TextOffset uint32

// IsNull reports whether the offset is the null text.
func (o TextOffset) IsNull() bool {
	return o == 0
}

// Cardinality is a raw element count stored in the header or in a partition
// descriptor.
type Cardinality uint32

// Count returns the usable integer count.
func (c Cardinality) Count() int {
	return int(c)
}

// EntitySize is a raw per-element byte size stored in a partition descriptor.
type EntitySize uint32

// Count returns the usable integer size.
func (s EntitySize) Count() int {
	return int(s)
}

// Sequence identifies a contiguous run [Start, Start+Size) inside a heap or
// partition. It is the sole mechanism by which a fixed-size record references
// a variable-length payload.
type Sequence struct {
	Start Index
	Size  Cardinality
}

// IsEmpty reports whether the sequence spans no elements.
func (s Sequence) IsEmpty() bool {
	return s.Size == 0
}

// Word is a single lexed token word as stored in attribute records.
type Word uint32

// CompressionType identifies the at-rest compression framing of a stored
// artifact. The artifact format itself is uncompressed; build systems may
// store .ifc files compressed on disk, and ifc.Load undoes that framing
// before handing the blob to the reader.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard frame compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 stream compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
