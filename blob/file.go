package blob

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/arloliu/ifc/endian"
	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/internal/hash"
	"github.com/arloliu/ifc/record"
	"github.com/arloliu/ifc/section"
)

// Environment resolves imported-module references to other loaded files.
// The reader consumes it through ImportedModule; locating and opening
// sibling artifacts is the embedder's concern.
type Environment interface {
	// ModuleByName returns the loaded file for the given module name, which
	// is either "owner", "owner:partition" or a bare partition name for the
	// global module fragment.
	ModuleByName(name string) (*File, error)
}

// File is a read-only view over one IFC artifact. It borrows the blob
// passed to Open; see the package documentation for the lifetime and
// concurrency rules.
type File struct {
	blob   []byte
	header section.FileHeader
	toc    []section.PartitionSummary

	// names maps xxHash64 of a partition name to its TOC position. Lookups
	// verify the name byte for byte, so a hash collision with an unknown
	// queried name cannot alias a real partition.
	names map[uint64]int32

	env Environment

	cache [slotCount]cacheEntry

	declAttrs     map[format.DeclIndex][]format.AttrIndex
	deprecations  map[format.DeclIndex]format.TextOffset
	friendships   map[format.DeclIndex]format.Sequence
	templateSpecs map[format.DeclIndex]format.Sequence
}

// Open constructs a File over the given blob.
//
// The blob is validated eagerly: the four-byte signature must match, the
// header, table of contents, string table and every partition payload must
// lie inside the blob, and the computed file size (signature + header +
// string table + TOC + partition payloads) must equal the blob length.
// No further work happens until a partition or trait is first requested.
//
// The blob must start at an address aligned for the widest record layout
// (8 bytes). Buffers allocated by the Go runtime satisfy this; callers
// mapping foreign memory must arrange it.
//
// Parameters:
//   - data: The artifact bytes. Borrowed, never copied or modified.
//   - opts: Optional configuration, e.g. WithEnvironment.
//
// Returns:
//   - *File: The opened file.
//   - error: errs.ErrCorruptedSignature, errs.ErrCorruptedFile, or a TOC
//     name error.
func Open(data []byte, opts ...Option) (*File, error) {
	if len(data) < section.SignatureSize || !bytes.Equal(data[:section.SignatureSize], section.Signature[:]) {
		return nil, errs.ErrCorruptedSignature
	}

	if len(data) < section.SignatureSize+section.FileHeaderSize {
		return nil, fmt.Errorf("%w: truncated header", errs.ErrCorruptedFile)
	}

	f := &File{blob: data}

	engine := endian.GetLittleEndianEngine()
	if err := f.header.Parse(data[section.SignatureSize:section.SignatureSize+section.FileHeaderSize], engine); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	tocOff := f.header.TOC.Offset()
	tocCount := f.header.PartitionCount.Count()
	tocBytes := tocCount * section.PartitionSummarySize
	if tocOff < 0 || tocBytes < 0 || int64(tocOff)+int64(tocBytes) > int64(len(data)) {
		return nil, fmt.Errorf("%w: table of contents out of bounds", errs.ErrCorruptedFile)
	}
	f.toc = viewSlice[section.PartitionSummary](data, tocOff, tocCount)

	strOff := f.header.StringTableBytes.Offset()
	strSize := f.header.StringTableSize.Count()
	if strOff < 0 || strSize < 0 || int64(strOff)+int64(strSize) > int64(len(data)) {
		return nil, fmt.Errorf("%w: string table out of bounds", errs.ErrCorruptedFile)
	}

	if size := f.calcSize(); size != int64(len(data)) {
		return nil, fmt.Errorf("%w: computed %d bytes, blob has %d", errs.ErrCorruptedFile, size, len(data))
	}

	if err := f.buildNameMap(); err != nil {
		return nil, err
	}

	return f, nil
}

// calcSize computes the expected file size from the header and the TOC.
func (f *File) calcSize() int64 {
	size := int64(section.SignatureSize + section.FileHeaderSize)
	size += int64(f.header.StringTableSize.Count())
	size += int64(len(f.toc)) * section.PartitionSummarySize
	for i := range f.toc {
		size += int64(f.toc[i].SizeBytes())
	}

	return size
}

// buildNameMap resolves each descriptor's name and indexes the TOC by name
// hash. Partition payload regions are bounds-checked here so that later
// zero-copy views can never exceed the blob.
func (f *File) buildNameMap() error {
	f.names = make(map[uint64]int32, len(f.toc))

	for i := range f.toc {
		p := &f.toc[i]

		if int64(p.Offset.Offset())+int64(p.SizeBytes()) > int64(len(f.blob)) {
			return fmt.Errorf("%w: partition %d out of bounds", errs.ErrCorruptedFile, i)
		}

		name, err := f.tryString(p.Name)
		if err != nil {
			return fmt.Errorf("partition %d name: %w", i, err)
		}

		h := hash.ID(name)
		if prev, ok := f.names[h]; ok {
			if f.nameOf(prev) == name {
				return fmt.Errorf("%w: %q", errs.ErrDuplicatePartition, name)
			}

			return fmt.Errorf("%w: %q vs %q", errs.ErrPartitionNameCollision, f.nameOf(prev), name)
		}
		f.names[h] = int32(i)
	}

	return nil
}

// lookup returns the TOC position of the named partition. The stored name
// is compared byte for byte, so a stale hash entry can never alias.
func (f *File) lookup(name string) (int32, bool) {
	pos, ok := f.names[hash.ID(name)]
	if !ok || f.nameOf(pos) != name {
		return 0, false
	}

	return pos, true
}

func (f *File) nameOf(pos int32) string {
	return f.GetString(f.toc[pos].Name)
}

// Header returns the parsed file header.
func (f *File) Header() section.FileHeader {
	return f.header
}

// TableOfContents returns the partition descriptors, viewed in place.
func (f *File) TableOfContents() []section.PartitionSummary {
	return f.toc
}

// Unit returns the unit descriptor of the module this artifact represents.
func (f *File) Unit() format.UnitIndex {
	return f.header.Unit
}

func (f *File) stringTable() []byte {
	off := f.header.StringTableBytes.Offset()

	return f.blob[off : off+f.header.StringTableSize.Count()]
}

// GetString returns the NUL-terminated string at the given text offset.
// The returned string aliases the blob. An offset outside the string table
// panics with errs.ErrTextOutOfRange.
func (f *File) GetString(off format.TextOffset) string {
	s, err := f.tryString(off)
	if err != nil {
		panic(err)
	}

	return s
}

func (f *File) tryString(off format.TextOffset) (string, error) {
	table := f.stringTable()
	o := int(uint32(off))
	if o >= len(table) {
		return "", fmt.Errorf("%w: offset %d, table size %d", errs.ErrTextOutOfRange, o, len(table))
	}

	end := bytes.IndexByte(table[o:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", errs.ErrTextOutOfRange, o)
	}
	if end == 0 {
		return "", nil
	}

	return unsafe.String(&table[o], end), nil
}

// GlobalScope returns the sequence of the global namespace's declarations,
// i.e. the scope descriptor designated by the header.
func (f *File) GlobalScope() format.Sequence {
	return *f.ScopeDescriptors().At(f.header.GlobalScope)
}

// ImportedModule resolves a module reference against the environment the
// file was opened with.
//
// A null owner names a partition of the global module fragment and is
// resolved by the partition string alone; otherwise the lookup name is
// "owner" or "owner:partition".
//
// Returns errs.ErrNoEnvironment if the file was opened without an
// environment.
func (f *File) ImportedModule(ref record.ModuleReference) (*File, error) {
	if f.env == nil {
		return nil, errs.ErrNoEnvironment
	}

	if ref.Owner.IsNull() {
		return f.env.ModuleByName(f.GetString(ref.Partition))
	}

	name := f.GetString(ref.Owner)
	if !ref.Partition.IsNull() {
		name = name + ":" + f.GetString(ref.Partition)
	}

	return f.env.ModuleByName(name)
}

// getPartition resolves a typed partition view by name, checking the
// advertised entry size against the record layout.
func getPartition[T any, I format.Ordinal](f *File, name string) (Partition[T, I], error) {
	pos, ok := f.lookup(name)
	if !ok {
		return Partition[T, I]{}, fmt.Errorf("%w: %q", errs.ErrMissingPartition, name)
	}

	desc := &f.toc[pos]

	var elem T
	if desc.EntrySize.Count() != int(unsafe.Sizeof(elem)) {
		panic(fmt.Errorf("%w: %q advertises %d bytes, record layout is %d",
			errs.ErrEntrySizeMismatch, name, desc.EntrySize.Count(), unsafe.Sizeof(elem)))
	}

	return Partition[T, I]{
		data: viewSlice[T](f.blob, desc.Offset.Offset(), desc.Cardinality.Count()),
	}, nil
}

// TryPartition resolves the named partition as a typed view, reporting
// absence instead of panicking. Resolution through TryPartition bypasses
// the accessor cache.
func TryPartition[T any, I format.Ordinal](f *File, name string) (Partition[T, I], bool) {
	p, err := getPartition[T, I](f, name)
	if err != nil {
		return Partition[T, I]{}, false
	}

	return p, true
}
