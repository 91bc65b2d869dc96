package blob

import (
	"testing"
	"unsafe"

	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/internal/testblob"
	"github.com/arloliu/ifc/record"
	"github.com/stretchr/testify/require"
)

func TestEntrySizeGuard(t *testing.T) {
	// Advertise 8 bytes per element for a partition whose record layout is
	// 4 bytes.
	b := testblob.New()
	b.AddPartition("type.fundamental", 8, 1, make([]byte, 8))

	f, err := Open(b.Build())
	require.NoError(t, err)

	requirePanicsIs(t, errs.ErrEntrySizeMismatch, func() {
		f.FundamentalTypes()
	})
}

func TestMissingPartitionPanics(t *testing.T) {
	f, err := Open(testblob.New().Build())
	require.NoError(t, err)

	requirePanicsIs(t, errs.ErrMissingPartition, func() {
		f.ScopeDeclarations()
	})
}

func TestTryPartition(t *testing.T) {
	b := testblob.New()
	testblob.AddRecords(b, "type.fundamental", []record.FundamentalType{
		{Basis: format.BasisNamespace},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	t.Run("Present", func(t *testing.T) {
		p, ok := TryPartition[record.FundamentalType, format.TypeIndex](f, "type.fundamental")

		require.True(t, ok)
		require.Equal(t, 1, p.Len())
		require.Equal(t, format.BasisNamespace, p.At(format.MakeTypeIndex(format.TypeSortFundamental, 0)).Basis)
	})

	t.Run("Absent", func(t *testing.T) {
		_, ok := TryPartition[record.FundamentalType, format.TypeIndex](f, "type.designated")

		require.False(t, ok)
	})
}

func TestAccessorCacheIdempotence(t *testing.T) {
	b := testblob.New()
	testblob.AddRecords(b, "decl", []record.Declaration{
		{Index: format.MakeDeclIndex(format.DeclSortScope, 0)},
		{Index: format.MakeDeclIndex(format.DeclSortScope, 1)},
	})
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 2}})

	f, err := Open(b.Build())
	require.NoError(t, err)

	first := f.Declarations()
	second := f.Declarations()

	require.Equal(t, first.Len(), second.Len())
	require.Equal(t, unsafe.SliceData(first.Data()), unsafe.SliceData(second.Data()))

	// Same for an explicit-name accessor.
	require.Equal(t,
		unsafe.SliceData(f.ScopeDescriptors().Data()),
		unsafe.SliceData(f.ScopeDescriptors().Data()))
}

func TestPartitionAt_Bounds(t *testing.T) {
	b := testblob.New()
	testblob.AddRecords(b, "decl", []record.Declaration{
		{Index: format.MakeDeclIndex(format.DeclSortVariable, 0)},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	decls := f.Declarations()
	require.Equal(t, format.DeclSortVariable, decls.At(0).Index.Sort())

	requirePanicsIs(t, errs.ErrIndexOutOfRange, func() {
		decls.At(1)
	})
}

func TestHeapSliceBounds(t *testing.T) {
	elems := []format.ExprIndex{
		format.MakeExprIndex(format.ExprSortLiteral, 0),
		format.MakeExprIndex(format.ExprSortLiteral, 1),
		format.MakeExprIndex(format.ExprSortLiteral, 2),
	}

	b := testblob.New()
	testblob.AddRecords(b, "heap.expr", elems)

	f, err := Open(b.Build())
	require.NoError(t, err)

	heap := f.ExprHeap()

	t.Run("In-range run", func(t *testing.T) {
		run := heap.Slice(format.Sequence{Start: 1, Size: 2})

		require.Equal(t, 2, run.Len())
		require.Equal(t, elems[1], *run.At(0))
		require.Equal(t, elems[2], *run.At(1))
	})

	t.Run("Empty run at the end", func(t *testing.T) {
		run := heap.Slice(format.Sequence{Start: 3, Size: 0})

		require.Equal(t, 0, run.Len())
	})

	t.Run("Run past the end panics", func(t *testing.T) {
		requirePanicsIs(t, errs.ErrSequenceOutOfRange, func() {
			heap.Slice(format.Sequence{Start: 2, Size: 2})
		})
	})
}

func TestPartitionAll(t *testing.T) {
	b := testblob.New()
	testblob.AddRecords(b, "const.integer", []record.IntegerLiteral{
		{Value: 10}, {Value: 20}, {Value: 30},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	var got []uint64
	for i, lit := range f.IntegerLiterals().All() {
		require.Equal(t, len(got), i)
		got = append(got, lit.Value)
	}

	require.Equal(t, []uint64{10, 20, 30}, got)
}

func TestPreload(t *testing.T) {
	b := testblob.New()
	testblob.AddRecords(b, "decl", []record.Declaration{
		{Index: format.MakeDeclIndex(format.DeclSortScope, 0)},
	})
	testblob.AddRecords(b, "scope.desc", []format.Sequence{{Start: 0, Size: 1}})

	f, err := Open(b.Build())
	require.NoError(t, err)

	f.Preload()

	// Present partitions are resolved, absent ones stay cold, and the trait
	// maps are built even though no trait partition exists.
	require.True(t, f.cache[slotDeclarations].ok)
	require.True(t, f.cache[slotScopeDescriptors].ok)
	require.False(t, f.cache[slotFundamentalTypes].ok)
	require.NotNil(t, f.declAttrs)
	require.NotNil(t, f.deprecations)
	require.NotNil(t, f.friendships)
	require.NotNil(t, f.templateSpecs)
}
