package blob

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
)

// cacheSlot identifies one memoized partition resolution. Every accessor on
// the public surface owns a slot; the cache is a fixed-size array indexed by
// it, trading a few kilobytes for a zero-hash lookup on every call after the
// first.
type cacheSlot uint8

const (
	slotDeclarations cacheSlot = iota
	slotScopeDeclarations
	slotTemplateDeclarations
	slotPartialSpecializations
	slotSpecializations
	slotUsingDeclarations
	slotEnumerations
	slotEnumerators
	slotAliasDeclarations
	slotDeclReferences
	slotFunctions
	slotMethods
	slotConstructors
	slotDestructors
	slotVariables
	slotParameters
	slotFields
	slotFriends
	slotConcepts
	slotIntrinsicDeclarations
	slotDeductionGuides

	slotFundamentalTypes
	slotDesignatedTypes
	slotTorTypes
	slotSyntacticTypes
	slotExpansionTypes
	slotPointerTypes
	slotFunctionTypes
	slotMethodTypes
	slotArrayTypes
	slotBaseTypes
	slotTupleTypes
	slotLvalueReferences
	slotRvalueReferences
	slotQualifiedTypes
	slotForallTypes
	slotSyntaxTypes
	slotPlaceholderTypes
	slotTypenameTypes
	slotDecltypeTypes

	slotBasicAttributes
	slotScopedAttributes
	slotLabeledAttributes
	slotCalledAttributes
	slotExpandedAttributes
	slotFactoredAttributes
	slotElaboratedAttributes
	slotTupleAttributes

	slotLiteralExpressions
	slotTypeExpressions
	slotDeclExpressions
	slotUnqualifiedIDExpressions
	slotTemplateIDs
	slotTemplateReferences
	slotMonadExpressions
	slotDyadExpressions
	slotStringLiteralExpressions
	slotCallExpressions
	slotSizeofExpressions
	slotAlignofExpressions
	slotRequiresExpressions
	slotTupleExpressions
	slotPathExpressions
	slotReadExpressions
	slotSyntaxTreeExpressions
	slotExpressionLists
	slotQualifiedNameExpressions
	slotPackedTemplateArguments
	slotProductValueTypeExpressions
	slotSubobjectValues

	slotUnilevelCharts
	slotMultilevelCharts

	slotIntegerLiterals
	slotFPLiterals

	slotSimpleTypeSpecifiers
	slotDecltypeSpecifiers
	slotTypeSpecifierSeqs
	slotDeclSpecifierSeqs
	slotTypeIDSyntaxTrees
	slotDeclaratorSyntaxTrees
	slotPointerDeclaratorSyntaxTrees
	slotFunctionDeclaratorSyntaxTrees
	slotParameterDeclaratorSyntaxTrees
	slotExpressionSyntaxTrees
	slotRequiresClauseSyntaxTrees
	slotSimpleRequirementSyntaxTrees
	slotTypeRequirementSyntaxTrees
	slotNestedRequirementSyntaxTrees
	slotCompoundRequirementSyntaxTrees
	slotRequirementBodySyntaxTrees
	slotTypeTemplateArgumentSyntaxTrees
	slotTemplateArgumentListSyntaxTrees
	slotTemplateIDSyntaxTrees
	slotTypeTraitIntrinsicSyntaxTrees
	slotTupleSyntaxTrees

	slotOperatorNames
	slotConversionNames
	slotLiteralNames
	slotTemplateNames
	slotSpecializationNames
	slotSourceFileNames

	slotTypeHeap
	slotExprHeap
	slotAttrHeap
	slotSyntaxHeap

	slotImportedModules
	slotExportedModules

	slotDeductionGuideNames
	slotScopeDescriptors

	slotCount
)

// cacheEntry is a type-erased memoized partition resolution. Storing the
// bare (pointer, length) pair and re-typing on retrieval is sound because a
// slot is always retrieved with the record type that populated it.
type cacheEntry struct {
	ptr    unsafe.Pointer
	length int
	ok     bool
}

func cachedView[T any, I format.Ordinal](e *cacheEntry) Partition[T, I] {
	return Partition[T, I]{data: unsafe.Slice((*T)(e.ptr), e.length)}
}

// tryCached resolves the named partition through the slot cache, reporting
// absence instead of panicking.
func tryCached[T any, I format.Ordinal](f *File, slot cacheSlot, name string) (Partition[T, I], bool) {
	e := &f.cache[slot]
	if e.ok {
		return cachedView[T, I](e), true
	}

	p, err := getPartition[T, I](f, name)
	if err != nil {
		return Partition[T, I]{}, false
	}

	e.ptr = unsafe.Pointer(unsafe.SliceData(p.data))
	e.length = p.Len()
	e.ok = true

	return p, true
}

// mustCached resolves T's canonical partition through the slot cache,
// panicking with errs.ErrMissingPartition if the TOC does not list it.
func mustCached[T Record, I format.Ordinal](f *File, slot cacheSlot) Partition[T, I] {
	var z T
	name := z.PartitionName()
	p, ok := tryCached[T, I](f, slot, name)
	if !ok {
		panic(fmt.Errorf("%w: %q", errs.ErrMissingPartition, name))
	}

	return p
}

// mustCachedNamed is mustCached for partitions resolved by an explicit name
// rather than a record type's canonical one (heaps, module references, the
// deduction-guide name list and scope descriptors).
func mustCachedNamed[T any, I format.Ordinal](f *File, slot cacheSlot, name string) Partition[T, I] {
	p, ok := tryCached[T, I](f, slot, name)
	if !ok {
		panic(fmt.Errorf("%w: %q", errs.ErrMissingPartition, name))
	}

	return p
}

// Preload resolves every accessor's partition and builds every trait map on
// the calling goroutine. Once it returns, the file's lazy state is fully
// populated and concurrent readers need no further synchronization.
// Partitions absent from the TOC stay cold; touching them later through
// their panicking accessor is still a format-contract violation.
func (f *File) Preload() {
	for _, warm := range warmers {
		warmOne(f, warm)
	}

	f.DeclarationAttributes(0)
	f.DeprecationText(0)
	f.FriendshipOfClass(0)
	f.TemplateSpecializations(0)
}

func warmOne(f *File, warm func(*File)) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok && errors.Is(err, errs.ErrMissingPartition) {
			return
		}
		panic(r)
	}()

	warm(f)
}
