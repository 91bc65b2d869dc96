package blob

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
)

// Record is the constraint for record types owning a canonical partition
// name.
type Record interface {
	PartitionName() string
}

// Partition is a typed, index-addressable view of one partition: a flat
// array of fixed-size records of type T addressed by index type I. The view
// aliases the blob's bytes; it is free to copy and borrows its validity from
// the owning File.
type Partition[T any, I format.Ordinal] struct {
	data []T
}

// Len returns the partition's cardinality.
func (p Partition[T, I]) Len() int {
	return len(p.data)
}

// At returns the record at the given index. The index's linear part must be
// less than the partition's cardinality; a violation panics with
// errs.ErrIndexOutOfRange.
func (p Partition[T, I]) At(i I) *T {
	ix := i.Ix()
	if int64(ix) >= int64(len(p.data)) {
		panic(fmt.Errorf("%w: %d >= %d", errs.ErrIndexOutOfRange, ix, len(p.data)))
	}

	return &p.data[ix]
}

// Slice returns the sub-range [seq.Start, seq.Start+seq.Size) of the
// partition. A run exceeding the cardinality panics with
// errs.ErrSequenceOutOfRange.
func (p Partition[T, I]) Slice(seq format.Sequence) Partition[T, I] {
	start := uint64(seq.Start.Ix())
	size := uint64(seq.Size)
	if start+size > uint64(len(p.data)) {
		panic(fmt.Errorf("%w: [%d, %d) exceeds %d", errs.ErrSequenceOutOfRange, start, start+size, len(p.data)))
	}

	return Partition[T, I]{data: p.data[start : start+size]}
}

// All returns an iterator over (position, record) pairs in partition order.
//
// Example:
//
//	for i, decl := range file.ScopeDeclarations().All() {
//	    fmt.Println(i, decl.Name)
//	}
func (p Partition[T, I]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.data {
			if !yield(i, &p.data[i]) {
				return
			}
		}
	}
}

// Data returns the backing slice. Like every view derived from a File it
// borrows from the blob and must not be written through.
func (p Partition[T, I]) Data() []T {
	return p.data
}

// viewSlice reinterprets n records of type T starting at byte offset off.
// Callers guarantee bounds; Open validated every partition region against
// the blob length.
func viewSlice[T any](data []byte, off, n int) []T {
	if n == 0 {
		return nil
	}

	base := unsafe.Pointer(unsafe.SliceData(data))

	return unsafe.Slice((*T)(unsafe.Add(base, off)), n)
}
