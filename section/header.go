package section

import (
	"github.com/arloliu/ifc/endian"
	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
)

// FileHeader is the fixed-layout record immediately following the file
// signature. All offsets it carries are byte offsets from the start of the
// blob; all sizes are raw counts.
type FileHeader struct {
	// Major and Minor are the format version the producer wrote.
	// The reader parses and exposes them without validation.
	Major uint16 // byte offset 0-1
	Minor uint16 // byte offset 2-3

	// StringTableBytes is the byte offset of the string table.
	StringTableBytes format.ByteOffset // byte offset 4-7

	// StringTableSize is the raw byte size of the string table.
	StringTableSize format.Cardinality // byte offset 8-11

	// Unit describes the module unit this artifact represents.
	Unit format.UnitIndex // byte offset 12-15

	// GlobalScope is the index of the global namespace's descriptor in the
	// scope.desc partition.
	GlobalScope format.ScopeIndex // byte offset 16-19

	// TOC is the byte offset of the table of contents.
	TOC format.ByteOffset // byte offset 20-23

	// PartitionCount is the number of entries in the table of contents.
	PartitionCount format.Cardinality // byte offset 24-27
}

// Parse decodes the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 28 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - error: ErrCorruptedFile if data is not exactly 28 bytes
func (h *FileHeader) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) != FileHeaderSize {
		return errs.ErrCorruptedFile
	}

	h.Major = engine.Uint16(data[0:2])
	h.Minor = engine.Uint16(data[2:4])
	h.StringTableBytes = format.ByteOffset(engine.Uint32(data[4:8]))
	h.StringTableSize = format.Cardinality(engine.Uint32(data[8:12]))
	h.Unit = format.UnitIndex(engine.Uint32(data[12:16]))
	h.GlobalScope = format.ScopeIndex(engine.Uint32(data[16:20]))
	h.TOC = format.ByteOffset(engine.Uint32(data[20:24]))
	h.PartitionCount = format.Cardinality(engine.Uint32(data[24:28]))

	return nil
}

// Bytes serializes the header into its 28-byte on-disk layout.
func (h *FileHeader) Bytes(engine endian.EndianEngine) []byte {
	var b [FileHeaderSize]byte
	engine.PutUint16(b[0:2], h.Major)
	engine.PutUint16(b[2:4], h.Minor)
	engine.PutUint32(b[4:8], uint32(h.StringTableBytes))
	engine.PutUint32(b[8:12], uint32(h.StringTableSize))
	engine.PutUint32(b[12:16], uint32(h.Unit))
	engine.PutUint32(b[16:20], uint32(h.GlobalScope))
	engine.PutUint32(b[20:24], uint32(h.TOC))
	engine.PutUint32(b[24:28], uint32(h.PartitionCount))

	return b[:]
}
