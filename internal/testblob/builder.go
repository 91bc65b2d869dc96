// Package testblob builds small, well-formed IFC artifacts in memory for
// tests. It shares the section layouts with the reader, so a built blob
// satisfies the open-time size invariant by construction.
package testblob

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/ifc/endian"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/section"
)

type part struct {
	nameOff   format.TextOffset
	entrySize int
	count     int
	payload   []byte
}

// Builder assembles an artifact: signature, header, partition payloads in
// insertion order, string table, table of contents.
//
// Partitions are laid out back to back starting right after the header with
// no padding (the size invariant forbids it), so records with 8-byte
// alignment (the literal partitions) must be added before 4-byte-aligned
// ones.
type Builder struct {
	engine  endian.EndianEngine
	strings []byte
	offsets map[string]format.TextOffset
	parts   []part

	major, minor uint16
	unit         format.UnitIndex
	globalScope  format.ScopeIndex
}

// New creates an empty builder. A builder with no strings and no partitions
// produces the minimal valid artifact: signature plus header.
func New() *Builder {
	return &Builder{
		engine:  endian.GetLittleEndianEngine(),
		offsets: make(map[string]format.TextOffset),
		major:   1,
	}
}

// SetVersion sets the header's format version.
func (b *Builder) SetVersion(major, minor uint16) *Builder {
	b.major, b.minor = major, minor
	return b
}

// SetUnit sets the header's unit descriptor.
func (b *Builder) SetUnit(unit format.UnitIndex) *Builder {
	b.unit = unit
	return b
}

// SetGlobalScope sets the header's designated global scope index.
func (b *Builder) SetGlobalScope(scope format.ScopeIndex) *Builder {
	b.globalScope = scope
	return b
}

// AddString interns s in the string table and returns its text offset.
// The table lazily starts with a NUL byte so that offset 0 stays the null
// text.
func (b *Builder) AddString(s string) format.TextOffset {
	if len(b.strings) == 0 {
		b.strings = append(b.strings, 0)
	}
	if s == "" {
		return 0
	}
	if off, ok := b.offsets[s]; ok {
		return off
	}

	off := format.TextOffset(len(b.strings))
	b.strings = append(b.strings, s...)
	b.strings = append(b.strings, 0)
	b.offsets[s] = off

	return off
}

// AddPartition appends a raw partition payload.
func (b *Builder) AddPartition(name string, entrySize, count int, payload []byte) *Builder {
	if len(payload) != entrySize*count {
		panic(fmt.Sprintf("testblob: partition %q payload is %d bytes, want %d", name, len(payload), entrySize*count))
	}

	b.parts = append(b.parts, part{
		nameOff:   b.AddString(name),
		entrySize: entrySize,
		count:     count,
		payload:   payload,
	})

	return b
}

// AddRecords appends a partition of fixed-layout records, deriving the entry
// size from the record type.
func AddRecords[T any](b *Builder, name string, recs []T) *Builder {
	var zero T
	size := int(unsafe.Sizeof(zero))

	payload := make([]byte, 0, size*len(recs))
	for i := range recs {
		payload = append(payload, unsafe.Slice((*byte)(unsafe.Pointer(&recs[i])), size)...)
	}

	return b.AddPartition(name, size, len(recs), payload)
}

// Build assembles the artifact bytes.
func (b *Builder) Build() []byte {
	bodyOff := section.SignatureSize + section.FileHeaderSize

	off := bodyOff
	offsets := make([]int, len(b.parts))
	for i := range b.parts {
		offsets[i] = off
		off += len(b.parts[i].payload)
	}

	strOff := off
	strings := b.strings
	// Pad the table with NULs so the TOC lands 4-aligned; the padding is
	// part of the declared table size, keeping the size invariant exact.
	for (strOff+len(strings))%4 != 0 {
		strings = append(strings, 0)
	}
	tocOff := strOff + len(strings)

	header := section.FileHeader{
		Major:            b.major,
		Minor:            b.minor,
		StringTableBytes: format.ByteOffset(strOff),
		StringTableSize:  format.Cardinality(len(strings)),
		Unit:             b.unit,
		GlobalScope:      b.globalScope,
		TOC:              format.ByteOffset(tocOff),
		PartitionCount:   format.Cardinality(len(b.parts)),
	}

	blob := make([]byte, 0, tocOff+len(b.parts)*section.PartitionSummarySize)
	blob = append(blob, section.Signature[:]...)
	blob = append(blob, header.Bytes(b.engine)...)
	for i := range b.parts {
		blob = append(blob, b.parts[i].payload...)
	}
	blob = append(blob, strings...)
	for i := range b.parts {
		summary := section.PartitionSummary{
			Name:        b.parts[i].nameOff,
			Offset:      format.ByteOffset(offsets[i]),
			Cardinality: format.Cardinality(b.parts[i].count),
			EntrySize:   format.EntitySize(b.parts[i].entrySize),
		}
		blob = append(blob, summary.Bytes(b.engine)...)
	}

	return blob
}
