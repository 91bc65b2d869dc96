package blob

import (
	"testing"

	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/internal/testblob"
	"github.com/arloliu/ifc/record"
	"github.com/stretchr/testify/require"
)

func TestDeclarationAttributes_UnionOrder(t *testing.T) {
	decl := format.MakeDeclIndex(format.DeclSortFunction, 7)
	a1 := format.MakeAttrIndex(format.AttrSortBasic, 1)
	a2 := format.MakeAttrIndex(format.AttrSortScoped, 2)
	a3 := format.MakeAttrIndex(format.AttrSortBasic, 3)

	b := testblob.New()
	testblob.AddRecords(b, "trait.attribute", []record.AssociatedTrait[format.AttrIndex]{
		{Decl: decl, Trait: a1},
	})
	testblob.AddRecords(b, ".msvc.trait.decl-attrs", []record.AssociatedTrait[format.AttrIndex]{
		{Decl: decl, Trait: a2},
		{Decl: decl, Trait: a3},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	// trait.attribute entries come first, then .msvc.trait.decl-attrs, each
	// in partition order, never deduplicated.
	require.Equal(t, []format.AttrIndex{a1, a2, a3}, f.DeclarationAttributes(decl))

	// A declaration with no attribute traits yields nothing.
	require.Empty(t, f.DeclarationAttributes(format.MakeDeclIndex(format.DeclSortFunction, 8)))
}

func TestDeclarationAttributes_Idempotent(t *testing.T) {
	decl := format.MakeDeclIndex(format.DeclSortVariable, 1)
	attr := format.MakeAttrIndex(format.AttrSortBasic, 0)

	b := testblob.New()
	testblob.AddRecords(b, "trait.attribute", []record.AssociatedTrait[format.AttrIndex]{
		{Decl: decl, Trait: attr},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	first := f.DeclarationAttributes(decl)
	second := f.DeclarationAttributes(decl)

	require.Equal(t, first, second)
	require.Equal(t, &first[0], &second[0])
}

func TestDeclarationAttributes_OnlyMsvcPartition(t *testing.T) {
	decl := format.MakeDeclIndex(format.DeclSortField, 0)
	attr := format.MakeAttrIndex(format.AttrSortCalled, 4)

	b := testblob.New()
	testblob.AddRecords(b, ".msvc.trait.decl-attrs", []record.AssociatedTrait[format.AttrIndex]{
		{Decl: decl, Trait: attr},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	require.Equal(t, []format.AttrIndex{attr}, f.DeclarationAttributes(decl))
}

func TestDeprecationText(t *testing.T) {
	t.Run("Missing partition yields null text", func(t *testing.T) {
		f, err := Open(testblob.New().Build())
		require.NoError(t, err)

		text := f.DeprecationText(format.MakeDeclIndex(format.DeclSortFunction, 0))

		require.True(t, text.IsNull())
	})

	t.Run("Duplicate keys resolve last-write-wins", func(t *testing.T) {
		decl := format.MakeDeclIndex(format.DeclSortFunction, 2)

		b := testblob.New()
		oldText := b.AddString("use v1")
		newText := b.AddString("use v2")
		testblob.AddRecords(b, "trait.deprecated", []record.AssociatedTrait[format.TextOffset]{
			{Decl: decl, Trait: oldText},
			{Decl: decl, Trait: newText},
		})

		f, err := Open(b.Build())
		require.NoError(t, err)

		require.Equal(t, newText, f.DeprecationText(decl))
		require.Equal(t, "use v2", f.GetString(f.DeprecationText(decl)))
	})
}

func TestFriendshipOfClass(t *testing.T) {
	decl := format.MakeDeclIndex(format.DeclSortScope, 3)
	seq := format.Sequence{Start: 4, Size: 2}

	b := testblob.New()
	testblob.AddRecords(b, "trait.friend", []record.AssociatedTrait[format.Sequence]{
		{Decl: decl, Trait: seq},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	require.Equal(t, seq, f.FriendshipOfClass(decl))
	require.Equal(t, format.Sequence{}, f.FriendshipOfClass(format.MakeDeclIndex(format.DeclSortScope, 9)))
}

func TestTemplateSpecializations(t *testing.T) {
	decl := format.MakeDeclIndex(format.DeclSortTemplate, 0)
	seq := format.Sequence{Start: 1, Size: 3}

	b := testblob.New()
	testblob.AddRecords(b, "trait.specialization", []record.AssociatedTrait[format.Sequence]{
		{Decl: decl, Trait: seq},
	})

	f, err := Open(b.Build())
	require.NoError(t, err)

	require.Equal(t, seq, f.TemplateSpecializations(decl))
	require.Equal(t, format.Sequence{}, f.TemplateSpecializations(format.MakeDeclIndex(format.DeclSortTemplate, 1)))
}
