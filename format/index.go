package format

// Tagged indexes pack a sort tag into the high 8 bits and a linear index
// into the low 24 bits. The tag selects which sub-partition of the family
// the index dereferences; the linear part addresses an element inside it.
const (
	sortShift = 24
	indexMask = (1 << sortShift) - 1
)

func pack(sort uint32, index uint32) uint32 {
	return sort<<sortShift | index&indexMask
}

// Ordinal is the constraint for types usable as a partition index: any
// 32-bit index type that can expose its linear part.
type Ordinal interface {
	~uint32
	Ix() uint32
}

// Index is an untagged linear index. Heaps, the declaration-reference
// partition and trait partitions are addressed by it, and Sequence starts
// are expressed in it.
type Index uint32

// Ix returns the linear index.
func (i Index) Ix() uint32 { return uint32(i) }

// ScopeIndex addresses the scope-descriptor partition.
type ScopeIndex uint32

// Ix returns the linear index.
func (i ScopeIndex) Ix() uint32 { return uint32(i) }

// StringIndex addresses the string-literal expression partition.
type StringIndex uint32

// Ix returns the linear index.
func (i StringIndex) Ix() uint32 { return uint32(i) }

// DeclIndex identifies a declaration. Its sort selects the declaration
// partition to consult.
type DeclIndex uint32

// MakeDeclIndex packs a sort and a linear index into a DeclIndex.
func MakeDeclIndex(sort DeclSort, index uint32) DeclIndex {
	return DeclIndex(pack(uint32(sort), index))
}

// Sort returns the declaration sort tag.
func (i DeclIndex) Sort() DeclSort { return DeclSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i DeclIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i DeclIndex) IsNull() bool { return i == 0 }

// TypeIndex identifies a type.
type TypeIndex uint32

// MakeTypeIndex packs a sort and a linear index into a TypeIndex.
func MakeTypeIndex(sort TypeSort, index uint32) TypeIndex {
	return TypeIndex(pack(uint32(sort), index))
}

// Sort returns the type sort tag.
func (i TypeIndex) Sort() TypeSort { return TypeSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i TypeIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i TypeIndex) IsNull() bool { return i == 0 }

// ExprIndex identifies an expression.
type ExprIndex uint32

// MakeExprIndex packs a sort and a linear index into an ExprIndex.
func MakeExprIndex(sort ExprSort, index uint32) ExprIndex {
	return ExprIndex(pack(uint32(sort), index))
}

// Sort returns the expression sort tag.
func (i ExprIndex) Sort() ExprSort { return ExprSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i ExprIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i ExprIndex) IsNull() bool { return i == 0 }

// NameIndex identifies a name. The Identifier sort carries a TextOffset in
// its linear part instead of a partition index.
type NameIndex uint32

// MakeNameIndex packs a sort and a linear index into a NameIndex.
func MakeNameIndex(sort NameSort, index uint32) NameIndex {
	return NameIndex(pack(uint32(sort), index))
}

// Sort returns the name sort tag.
func (i NameIndex) Sort() NameSort { return NameSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i NameIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i NameIndex) IsNull() bool { return i == 0 }

// AttrIndex identifies an attribute.
type AttrIndex uint32

// MakeAttrIndex packs a sort and a linear index into an AttrIndex.
func MakeAttrIndex(sort AttrSort, index uint32) AttrIndex {
	return AttrIndex(pack(uint32(sort), index))
}

// Sort returns the attribute sort tag.
func (i AttrIndex) Sort() AttrSort { return AttrSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i AttrIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i AttrIndex) IsNull() bool { return i == 0 }

// SyntaxIndex identifies a syntax-tree node.
type SyntaxIndex uint32

// MakeSyntaxIndex packs a sort and a linear index into a SyntaxIndex.
func MakeSyntaxIndex(sort SyntaxSort, index uint32) SyntaxIndex {
	return SyntaxIndex(pack(uint32(sort), index))
}

// Sort returns the syntax sort tag.
func (i SyntaxIndex) Sort() SyntaxSort { return SyntaxSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i SyntaxIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i SyntaxIndex) IsNull() bool { return i == 0 }

// ChartIndex identifies a template parameter chart.
type ChartIndex uint32

// MakeChartIndex packs a sort and a linear index into a ChartIndex.
func MakeChartIndex(sort ChartSort, index uint32) ChartIndex {
	return ChartIndex(pack(uint32(sort), index))
}

// Sort returns the chart sort tag.
func (i ChartIndex) Sort() ChartSort { return ChartSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i ChartIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i ChartIndex) IsNull() bool { return i == 0 }

// LitIndex identifies a stored literal value.
type LitIndex uint32

// MakeLitIndex packs a sort and a linear index into a LitIndex.
func MakeLitIndex(sort LitSort, index uint32) LitIndex {
	return LitIndex(pack(uint32(sort), index))
}

// Sort returns the literal sort tag.
func (i LitIndex) Sort() LitSort { return LitSort(i >> sortShift) }

// Ix returns the linear index within the sort's partition.
func (i LitIndex) Ix() uint32 { return uint32(i) & indexMask }

// IsNull reports whether the index is the null bit pattern.
func (i LitIndex) IsNull() bool { return i == 0 }

// UnitIndex describes the module unit the artifact represents. For the
// Primary and Partition sorts the linear part is a TextOffset naming the
// unit.
type UnitIndex uint32

// MakeUnitIndex packs a sort and a linear index into a UnitIndex.
func MakeUnitIndex(sort UnitSort, index uint32) UnitIndex {
	return UnitIndex(pack(uint32(sort), index))
}

// Sort returns the unit sort tag.
func (i UnitIndex) Sort() UnitSort { return UnitSort(i >> sortShift) }

// Ix returns the linear index.
func (i UnitIndex) Ix() uint32 { return uint32(i) & indexMask }
