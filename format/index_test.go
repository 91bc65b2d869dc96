package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeDeclIndex(t *testing.T) {
	idx := MakeDeclIndex(DeclSortFunction, 0x1234)

	require.Equal(t, DeclSortFunction, idx.Sort())
	require.Equal(t, uint32(0x1234), idx.Ix())
	require.False(t, idx.IsNull())
}

func TestDeclIndex_Null(t *testing.T) {
	var idx DeclIndex

	require.True(t, idx.IsNull())
	require.Equal(t, DeclSortVendorExtension, idx.Sort())
	require.Equal(t, uint32(0), idx.Ix())
}

func TestIndex_TagDoesNotLeak(t *testing.T) {
	// The linear part must mask the sort tag out completely.
	idx := MakeTypeIndex(TypeSortDecltype, 0xFFFFFF)

	require.Equal(t, TypeSortDecltype, idx.Sort())
	require.Equal(t, uint32(0xFFFFFF), idx.Ix())
}

func TestNameIndex_IdentifierCarriesTextOffset(t *testing.T) {
	idx := MakeNameIndex(NameSortIdentifier, 42)

	require.Equal(t, NameSortIdentifier, idx.Sort())
	require.Equal(t, uint32(42), idx.Ix())
}

func TestUnitIndex(t *testing.T) {
	unit := MakeUnitIndex(UnitSortPrimary, 7)

	require.Equal(t, UnitSortPrimary, unit.Sort())
	require.Equal(t, uint32(7), unit.Ix())
	require.Equal(t, "Primary", unit.Sort().String())
}

func TestSequence_IsEmpty(t *testing.T) {
	require.True(t, Sequence{}.IsEmpty())
	require.False(t, Sequence{Start: 0, Size: 1}.IsEmpty())
}

func TestSortStrings(t *testing.T) {
	require.Equal(t, "Template", DeclSortTemplate.String())
	require.Equal(t, "Operator", NameSortOperator.String())
	require.Equal(t, "Unilevel", ChartSortUnilevel.String())
	require.Equal(t, "FloatingPoint", LitSortFloatingPoint.String())
	require.Equal(t, "Unknown", DeclSort(0xFF).String())
}

func TestBasicSpecifiers_Has(t *testing.T) {
	s := SpecifierExternal | SpecifierDeprecated

	require.True(t, s.Has(SpecifierExternal))
	require.True(t, s.Has(SpecifierExternal|SpecifierDeprecated))
	require.False(t, s.Has(SpecifierInternal))
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Unknown", CompressionType(0xAA).String())
}
