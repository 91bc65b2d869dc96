package section

import (
	"github.com/arloliu/ifc/endian"
	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
)

// PartitionSummary is one table-of-contents entry: the descriptor of a
// single partition. The struct layout matches the on-disk layout field for
// field, so a table of contents can be viewed in place as a
// []PartitionSummary without copying.
type PartitionSummary struct {
	// Name is the string-table offset of the partition's name. Names are
	// unique within a file and matched byte for byte.
	Name format.TextOffset // byte offset 0-3

	// Offset is the byte offset into the blob where the partition data
	// begins.
	Offset format.ByteOffset // byte offset 4-7

	// Cardinality is the number of fixed-size elements in the partition.
	Cardinality format.Cardinality // byte offset 8-11

	// EntrySize is the byte size of one element. It must equal the size of
	// the record layout the partition is accessed with.
	EntrySize format.EntitySize // byte offset 12-15
}

// SizeBytes returns the total payload size of the described partition.
func (p *PartitionSummary) SizeBytes() int {
	return p.Cardinality.Count() * p.EntrySize.Count()
}

// Parse decodes the descriptor from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the descriptor (must be at least 16 bytes)
//   - engine: Endian engine for byte order
//
// Returns:
//   - error: ErrInvalidTOC if data is too short
func (p *PartitionSummary) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < PartitionSummarySize {
		return errs.ErrInvalidTOC
	}

	p.Name = format.TextOffset(engine.Uint32(data[0:4]))
	p.Offset = format.ByteOffset(engine.Uint32(data[4:8]))
	p.Cardinality = format.Cardinality(engine.Uint32(data[8:12]))
	p.EntrySize = format.EntitySize(engine.Uint32(data[12:16]))

	return nil
}

// Bytes serializes the descriptor into its 16-byte on-disk layout.
func (p *PartitionSummary) Bytes(engine endian.EndianEngine) []byte {
	var b [PartitionSummarySize]byte
	engine.PutUint32(b[0:4], uint32(p.Name))
	engine.PutUint32(b[4:8], uint32(p.Offset))
	engine.PutUint32(b[8:12], uint32(p.Cardinality))
	engine.PutUint32(b[12:16], uint32(p.EntrySize))

	return b[:]
}
