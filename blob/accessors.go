package blob

import (
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/record"
)

// The accessor catalogue. Every partition family of the format gets a named
// accessor returning its typed, cached view; the bodies are mechanical and
// the value is discoverability and the typed return. Canonical-name
// accessors resolve through the record type's PartitionName; the heaps,
// module-reference partitions, the deduction-guide name list and the scope
// descriptors carry explicit format-level names.

// Explicit partition names not owned by a record type.
const (
	typeHeapName   = "heap.type"
	exprHeapName   = "heap.expr"
	attrHeapName   = "heap.attr"
	syntaxHeapName = "heap.syn"

	importedModulesName = "module.imported"
	exportedModulesName = "module.exported"

	deductionGuideNamesName = "name.guide"
	scopeDescriptorsName    = "scope.desc"
)

// Declarations returns the "decl" partition: the tagged declaration
// references that scope descriptors slice into.
func (f *File) Declarations() Partition[record.Declaration, format.Index] {
	return mustCached[record.Declaration, format.Index](f, slotDeclarations)
}

func (f *File) ScopeDeclarations() Partition[record.ScopeDeclaration, format.DeclIndex] {
	return mustCached[record.ScopeDeclaration, format.DeclIndex](f, slotScopeDeclarations)
}

func (f *File) TemplateDeclarations() Partition[record.TemplateDeclaration, format.DeclIndex] {
	return mustCached[record.TemplateDeclaration, format.DeclIndex](f, slotTemplateDeclarations)
}

func (f *File) PartialSpecializations() Partition[record.PartialSpecialization, format.DeclIndex] {
	return mustCached[record.PartialSpecialization, format.DeclIndex](f, slotPartialSpecializations)
}

func (f *File) Specializations() Partition[record.Specialization, format.DeclIndex] {
	return mustCached[record.Specialization, format.DeclIndex](f, slotSpecializations)
}

func (f *File) UsingDeclarations() Partition[record.UsingDeclaration, format.DeclIndex] {
	return mustCached[record.UsingDeclaration, format.DeclIndex](f, slotUsingDeclarations)
}

func (f *File) Enumerations() Partition[record.Enumeration, format.DeclIndex] {
	return mustCached[record.Enumeration, format.DeclIndex](f, slotEnumerations)
}

func (f *File) Enumerators() Partition[record.Enumerator, format.DeclIndex] {
	return mustCached[record.Enumerator, format.DeclIndex](f, slotEnumerators)
}

func (f *File) AliasDeclarations() Partition[record.AliasDeclaration, format.DeclIndex] {
	return mustCached[record.AliasDeclaration, format.DeclIndex](f, slotAliasDeclarations)
}

func (f *File) DeclReferences() Partition[record.DeclReference, format.DeclIndex] {
	return mustCached[record.DeclReference, format.DeclIndex](f, slotDeclReferences)
}

func (f *File) Functions() Partition[record.FunctionDeclaration, format.DeclIndex] {
	return mustCached[record.FunctionDeclaration, format.DeclIndex](f, slotFunctions)
}

func (f *File) Methods() Partition[record.MethodDeclaration, format.DeclIndex] {
	return mustCached[record.MethodDeclaration, format.DeclIndex](f, slotMethods)
}

func (f *File) Constructors() Partition[record.Constructor, format.DeclIndex] {
	return mustCached[record.Constructor, format.DeclIndex](f, slotConstructors)
}

func (f *File) Destructors() Partition[record.Destructor, format.DeclIndex] {
	return mustCached[record.Destructor, format.DeclIndex](f, slotDestructors)
}

func (f *File) Variables() Partition[record.VariableDeclaration, format.DeclIndex] {
	return mustCached[record.VariableDeclaration, format.DeclIndex](f, slotVariables)
}

func (f *File) Parameters() Partition[record.ParameterDeclaration, format.DeclIndex] {
	return mustCached[record.ParameterDeclaration, format.DeclIndex](f, slotParameters)
}

func (f *File) Fields() Partition[record.FieldDeclaration, format.DeclIndex] {
	return mustCached[record.FieldDeclaration, format.DeclIndex](f, slotFields)
}

func (f *File) Friends() Partition[record.FriendDeclaration, format.DeclIndex] {
	return mustCached[record.FriendDeclaration, format.DeclIndex](f, slotFriends)
}

func (f *File) Concepts() Partition[record.Concept, format.DeclIndex] {
	return mustCached[record.Concept, format.DeclIndex](f, slotConcepts)
}

func (f *File) IntrinsicDeclarations() Partition[record.IntrinsicDeclaration, format.DeclIndex] {
	return mustCached[record.IntrinsicDeclaration, format.DeclIndex](f, slotIntrinsicDeclarations)
}

func (f *File) DeductionGuides() Partition[record.DeductionGuide, format.DeclIndex] {
	return mustCached[record.DeductionGuide, format.DeclIndex](f, slotDeductionGuides)
}

func (f *File) FundamentalTypes() Partition[record.FundamentalType, format.TypeIndex] {
	return mustCached[record.FundamentalType, format.TypeIndex](f, slotFundamentalTypes)
}

func (f *File) DesignatedTypes() Partition[record.DesignatedType, format.TypeIndex] {
	return mustCached[record.DesignatedType, format.TypeIndex](f, slotDesignatedTypes)
}

func (f *File) TorTypes() Partition[record.TorType, format.TypeIndex] {
	return mustCached[record.TorType, format.TypeIndex](f, slotTorTypes)
}

func (f *File) SyntacticTypes() Partition[record.SyntacticType, format.TypeIndex] {
	return mustCached[record.SyntacticType, format.TypeIndex](f, slotSyntacticTypes)
}

func (f *File) ExpansionTypes() Partition[record.ExpansionType, format.TypeIndex] {
	return mustCached[record.ExpansionType, format.TypeIndex](f, slotExpansionTypes)
}

func (f *File) PointerTypes() Partition[record.PointerType, format.TypeIndex] {
	return mustCached[record.PointerType, format.TypeIndex](f, slotPointerTypes)
}

func (f *File) FunctionTypes() Partition[record.FunctionType, format.TypeIndex] {
	return mustCached[record.FunctionType, format.TypeIndex](f, slotFunctionTypes)
}

func (f *File) MethodTypes() Partition[record.MethodType, format.TypeIndex] {
	return mustCached[record.MethodType, format.TypeIndex](f, slotMethodTypes)
}

func (f *File) ArrayTypes() Partition[record.ArrayType, format.TypeIndex] {
	return mustCached[record.ArrayType, format.TypeIndex](f, slotArrayTypes)
}

func (f *File) BaseTypes() Partition[record.BaseType, format.TypeIndex] {
	return mustCached[record.BaseType, format.TypeIndex](f, slotBaseTypes)
}

func (f *File) TupleTypes() Partition[record.TupleType, format.TypeIndex] {
	return mustCached[record.TupleType, format.TypeIndex](f, slotTupleTypes)
}

func (f *File) LvalueReferences() Partition[record.LvalueReference, format.TypeIndex] {
	return mustCached[record.LvalueReference, format.TypeIndex](f, slotLvalueReferences)
}

func (f *File) RvalueReferences() Partition[record.RvalueReference, format.TypeIndex] {
	return mustCached[record.RvalueReference, format.TypeIndex](f, slotRvalueReferences)
}

func (f *File) QualifiedTypes() Partition[record.QualifiedType, format.TypeIndex] {
	return mustCached[record.QualifiedType, format.TypeIndex](f, slotQualifiedTypes)
}

func (f *File) ForallTypes() Partition[record.ForallType, format.TypeIndex] {
	return mustCached[record.ForallType, format.TypeIndex](f, slotForallTypes)
}

func (f *File) SyntaxTypes() Partition[record.SyntaxType, format.TypeIndex] {
	return mustCached[record.SyntaxType, format.TypeIndex](f, slotSyntaxTypes)
}

func (f *File) PlaceholderTypes() Partition[record.PlaceholderType, format.TypeIndex] {
	return mustCached[record.PlaceholderType, format.TypeIndex](f, slotPlaceholderTypes)
}

func (f *File) TypenameTypes() Partition[record.TypenameType, format.TypeIndex] {
	return mustCached[record.TypenameType, format.TypeIndex](f, slotTypenameTypes)
}

func (f *File) DecltypeTypes() Partition[record.DecltypeType, format.TypeIndex] {
	return mustCached[record.DecltypeType, format.TypeIndex](f, slotDecltypeTypes)
}

func (f *File) BasicAttributes() Partition[record.AttrBasic, format.AttrIndex] {
	return mustCached[record.AttrBasic, format.AttrIndex](f, slotBasicAttributes)
}

func (f *File) ScopedAttributes() Partition[record.AttrScoped, format.AttrIndex] {
	return mustCached[record.AttrScoped, format.AttrIndex](f, slotScopedAttributes)
}

func (f *File) LabeledAttributes() Partition[record.AttrLabeled, format.AttrIndex] {
	return mustCached[record.AttrLabeled, format.AttrIndex](f, slotLabeledAttributes)
}

func (f *File) CalledAttributes() Partition[record.AttrCalled, format.AttrIndex] {
	return mustCached[record.AttrCalled, format.AttrIndex](f, slotCalledAttributes)
}

func (f *File) ExpandedAttributes() Partition[record.AttrExpanded, format.AttrIndex] {
	return mustCached[record.AttrExpanded, format.AttrIndex](f, slotExpandedAttributes)
}

func (f *File) FactoredAttributes() Partition[record.AttrFactored, format.AttrIndex] {
	return mustCached[record.AttrFactored, format.AttrIndex](f, slotFactoredAttributes)
}

func (f *File) ElaboratedAttributes() Partition[record.AttrElaborated, format.AttrIndex] {
	return mustCached[record.AttrElaborated, format.AttrIndex](f, slotElaboratedAttributes)
}

func (f *File) TupleAttributes() Partition[record.AttrTuple, format.AttrIndex] {
	return mustCached[record.AttrTuple, format.AttrIndex](f, slotTupleAttributes)
}

func (f *File) LiteralExpressions() Partition[record.LiteralExpression, format.ExprIndex] {
	return mustCached[record.LiteralExpression, format.ExprIndex](f, slotLiteralExpressions)
}

func (f *File) TypeExpressions() Partition[record.TypeExpression, format.ExprIndex] {
	return mustCached[record.TypeExpression, format.ExprIndex](f, slotTypeExpressions)
}

func (f *File) DeclExpressions() Partition[record.NamedDecl, format.ExprIndex] {
	return mustCached[record.NamedDecl, format.ExprIndex](f, slotDeclExpressions)
}

func (f *File) UnqualifiedIDExpressions() Partition[record.UnqualifiedID, format.ExprIndex] {
	return mustCached[record.UnqualifiedID, format.ExprIndex](f, slotUnqualifiedIDExpressions)
}

func (f *File) TemplateIDs() Partition[record.TemplateID, format.ExprIndex] {
	return mustCached[record.TemplateID, format.ExprIndex](f, slotTemplateIDs)
}

func (f *File) TemplateReferences() Partition[record.TemplateReference, format.ExprIndex] {
	return mustCached[record.TemplateReference, format.ExprIndex](f, slotTemplateReferences)
}

func (f *File) MonadExpressions() Partition[record.MonadExpression, format.ExprIndex] {
	return mustCached[record.MonadExpression, format.ExprIndex](f, slotMonadExpressions)
}

func (f *File) DyadExpressions() Partition[record.DyadExpression, format.ExprIndex] {
	return mustCached[record.DyadExpression, format.ExprIndex](f, slotDyadExpressions)
}

// StringLiteralExpressions returns the "expr.string" partition, addressed
// by StringIndex rather than ExprIndex.
func (f *File) StringLiteralExpressions() Partition[record.StringLiteral, format.StringIndex] {
	return mustCached[record.StringLiteral, format.StringIndex](f, slotStringLiteralExpressions)
}

func (f *File) CallExpressions() Partition[record.CallExpression, format.ExprIndex] {
	return mustCached[record.CallExpression, format.ExprIndex](f, slotCallExpressions)
}

func (f *File) SizeofExpressions() Partition[record.SizeofExpression, format.ExprIndex] {
	return mustCached[record.SizeofExpression, format.ExprIndex](f, slotSizeofExpressions)
}

func (f *File) AlignofExpressions() Partition[record.AlignofExpression, format.ExprIndex] {
	return mustCached[record.AlignofExpression, format.ExprIndex](f, slotAlignofExpressions)
}

func (f *File) RequiresExpressions() Partition[record.RequiresExpression, format.ExprIndex] {
	return mustCached[record.RequiresExpression, format.ExprIndex](f, slotRequiresExpressions)
}

func (f *File) TupleExpressions() Partition[record.TupleExpression, format.ExprIndex] {
	return mustCached[record.TupleExpression, format.ExprIndex](f, slotTupleExpressions)
}

func (f *File) PathExpressions() Partition[record.PathExpression, format.ExprIndex] {
	return mustCached[record.PathExpression, format.ExprIndex](f, slotPathExpressions)
}

func (f *File) ReadExpressions() Partition[record.ReadExpression, format.ExprIndex] {
	return mustCached[record.ReadExpression, format.ExprIndex](f, slotReadExpressions)
}

func (f *File) SyntaxTreeExpressions() Partition[record.SyntaxTreeExpression, format.ExprIndex] {
	return mustCached[record.SyntaxTreeExpression, format.ExprIndex](f, slotSyntaxTreeExpressions)
}

func (f *File) ExpressionLists() Partition[record.ExpressionList, format.ExprIndex] {
	return mustCached[record.ExpressionList, format.ExprIndex](f, slotExpressionLists)
}

func (f *File) QualifiedNameExpressions() Partition[record.QualifiedNameExpression, format.ExprIndex] {
	return mustCached[record.QualifiedNameExpression, format.ExprIndex](f, slotQualifiedNameExpressions)
}

func (f *File) PackedTemplateArguments() Partition[record.PackedTemplateArguments, format.ExprIndex] {
	return mustCached[record.PackedTemplateArguments, format.ExprIndex](f, slotPackedTemplateArguments)
}

func (f *File) ProductValueTypeExpressions() Partition[record.ProductValueType, format.ExprIndex] {
	return mustCached[record.ProductValueType, format.ExprIndex](f, slotProductValueTypeExpressions)
}

func (f *File) SubobjectValues() Partition[record.SubobjectValue, format.ExprIndex] {
	return mustCached[record.SubobjectValue, format.ExprIndex](f, slotSubobjectValues)
}

func (f *File) UnilevelCharts() Partition[record.ChartUnilevel, format.ChartIndex] {
	return mustCached[record.ChartUnilevel, format.ChartIndex](f, slotUnilevelCharts)
}

func (f *File) MultilevelCharts() Partition[record.ChartMultilevel, format.ChartIndex] {
	return mustCached[record.ChartMultilevel, format.ChartIndex](f, slotMultilevelCharts)
}

func (f *File) IntegerLiterals() Partition[record.IntegerLiteral, format.LitIndex] {
	return mustCached[record.IntegerLiteral, format.LitIndex](f, slotIntegerLiterals)
}

func (f *File) FPLiterals() Partition[record.FPLiteral, format.LitIndex] {
	return mustCached[record.FPLiteral, format.LitIndex](f, slotFPLiterals)
}

func (f *File) SimpleTypeSpecifiers() Partition[record.SimpleTypeSpecifier, format.SyntaxIndex] {
	return mustCached[record.SimpleTypeSpecifier, format.SyntaxIndex](f, slotSimpleTypeSpecifiers)
}

func (f *File) DecltypeSpecifiers() Partition[record.DecltypeSpecifier, format.SyntaxIndex] {
	return mustCached[record.DecltypeSpecifier, format.SyntaxIndex](f, slotDecltypeSpecifiers)
}

func (f *File) TypeSpecifierSeqs() Partition[record.TypeSpecifierSeq, format.SyntaxIndex] {
	return mustCached[record.TypeSpecifierSeq, format.SyntaxIndex](f, slotTypeSpecifierSeqs)
}

func (f *File) DeclSpecifierSeqs() Partition[record.DeclSpecifierSeq, format.SyntaxIndex] {
	return mustCached[record.DeclSpecifierSeq, format.SyntaxIndex](f, slotDeclSpecifierSeqs)
}

func (f *File) TypeIDSyntaxTrees() Partition[record.TypeIDSyntax, format.SyntaxIndex] {
	return mustCached[record.TypeIDSyntax, format.SyntaxIndex](f, slotTypeIDSyntaxTrees)
}

func (f *File) DeclaratorSyntaxTrees() Partition[record.DeclaratorSyntax, format.SyntaxIndex] {
	return mustCached[record.DeclaratorSyntax, format.SyntaxIndex](f, slotDeclaratorSyntaxTrees)
}

func (f *File) PointerDeclaratorSyntaxTrees() Partition[record.PointerDeclaratorSyntax, format.SyntaxIndex] {
	return mustCached[record.PointerDeclaratorSyntax, format.SyntaxIndex](f, slotPointerDeclaratorSyntaxTrees)
}

func (f *File) FunctionDeclaratorSyntaxTrees() Partition[record.FunctionDeclaratorSyntax, format.SyntaxIndex] {
	return mustCached[record.FunctionDeclaratorSyntax, format.SyntaxIndex](f, slotFunctionDeclaratorSyntaxTrees)
}

func (f *File) ParameterDeclaratorSyntaxTrees() Partition[record.ParameterDeclaratorSyntax, format.SyntaxIndex] {
	return mustCached[record.ParameterDeclaratorSyntax, format.SyntaxIndex](f, slotParameterDeclaratorSyntaxTrees)
}

func (f *File) ExpressionSyntaxTrees() Partition[record.ExpressionSyntax, format.SyntaxIndex] {
	return mustCached[record.ExpressionSyntax, format.SyntaxIndex](f, slotExpressionSyntaxTrees)
}

func (f *File) RequiresClauseSyntaxTrees() Partition[record.RequiresClauseSyntax, format.SyntaxIndex] {
	return mustCached[record.RequiresClauseSyntax, format.SyntaxIndex](f, slotRequiresClauseSyntaxTrees)
}

func (f *File) SimpleRequirementSyntaxTrees() Partition[record.SimpleRequirementSyntax, format.SyntaxIndex] {
	return mustCached[record.SimpleRequirementSyntax, format.SyntaxIndex](f, slotSimpleRequirementSyntaxTrees)
}

func (f *File) TypeRequirementSyntaxTrees() Partition[record.TypeRequirementSyntax, format.SyntaxIndex] {
	return mustCached[record.TypeRequirementSyntax, format.SyntaxIndex](f, slotTypeRequirementSyntaxTrees)
}

func (f *File) NestedRequirementSyntaxTrees() Partition[record.NestedRequirementSyntax, format.SyntaxIndex] {
	return mustCached[record.NestedRequirementSyntax, format.SyntaxIndex](f, slotNestedRequirementSyntaxTrees)
}

func (f *File) CompoundRequirementSyntaxTrees() Partition[record.CompoundRequirementSyntax, format.SyntaxIndex] {
	return mustCached[record.CompoundRequirementSyntax, format.SyntaxIndex](f, slotCompoundRequirementSyntaxTrees)
}

func (f *File) RequirementBodySyntaxTrees() Partition[record.RequirementBodySyntax, format.SyntaxIndex] {
	return mustCached[record.RequirementBodySyntax, format.SyntaxIndex](f, slotRequirementBodySyntaxTrees)
}

func (f *File) TypeTemplateArgumentSyntaxTrees() Partition[record.TypeTemplateArgumentSyntax, format.SyntaxIndex] {
	return mustCached[record.TypeTemplateArgumentSyntax, format.SyntaxIndex](f, slotTypeTemplateArgumentSyntaxTrees)
}

func (f *File) TemplateArgumentListSyntaxTrees() Partition[record.TemplateArgumentListSyntax, format.SyntaxIndex] {
	return mustCached[record.TemplateArgumentListSyntax, format.SyntaxIndex](f, slotTemplateArgumentListSyntaxTrees)
}

func (f *File) TemplateIDSyntaxTrees() Partition[record.TemplateIDSyntax, format.SyntaxIndex] {
	return mustCached[record.TemplateIDSyntax, format.SyntaxIndex](f, slotTemplateIDSyntaxTrees)
}

func (f *File) TypeTraitIntrinsicSyntaxTrees() Partition[record.TypeTraitIntrinsicSyntax, format.SyntaxIndex] {
	return mustCached[record.TypeTraitIntrinsicSyntax, format.SyntaxIndex](f, slotTypeTraitIntrinsicSyntaxTrees)
}

func (f *File) TupleSyntaxTrees() Partition[record.TupleSyntax, format.SyntaxIndex] {
	return mustCached[record.TupleSyntax, format.SyntaxIndex](f, slotTupleSyntaxTrees)
}

func (f *File) OperatorNames() Partition[record.OperatorFunctionName, format.NameIndex] {
	return mustCached[record.OperatorFunctionName, format.NameIndex](f, slotOperatorNames)
}

func (f *File) ConversionNames() Partition[record.ConversionFunctionName, format.NameIndex] {
	return mustCached[record.ConversionFunctionName, format.NameIndex](f, slotConversionNames)
}

func (f *File) LiteralNames() Partition[record.LiteralName, format.NameIndex] {
	return mustCached[record.LiteralName, format.NameIndex](f, slotLiteralNames)
}

func (f *File) TemplateNames() Partition[record.TemplateName, format.NameIndex] {
	return mustCached[record.TemplateName, format.NameIndex](f, slotTemplateNames)
}

func (f *File) SpecializationNames() Partition[record.SpecializationName, format.NameIndex] {
	return mustCached[record.SpecializationName, format.NameIndex](f, slotSpecializationNames)
}

func (f *File) SourceFileNames() Partition[record.SourceFileName, format.NameIndex] {
	return mustCached[record.SourceFileName, format.NameIndex](f, slotSourceFileNames)
}

// TypeHeap returns the "heap.type" partition: the index array that tuple
// types and other records slice into through sequences.
func (f *File) TypeHeap() Partition[format.TypeIndex, format.Index] {
	return mustCachedNamed[format.TypeIndex, format.Index](f, slotTypeHeap, typeHeapName)
}

// ExprHeap returns the "heap.expr" partition.
func (f *File) ExprHeap() Partition[format.ExprIndex, format.Index] {
	return mustCachedNamed[format.ExprIndex, format.Index](f, slotExprHeap, exprHeapName)
}

// AttrHeap returns the "heap.attr" partition.
func (f *File) AttrHeap() Partition[format.AttrIndex, format.Index] {
	return mustCachedNamed[format.AttrIndex, format.Index](f, slotAttrHeap, attrHeapName)
}

// SyntaxHeap returns the "heap.syn" partition.
func (f *File) SyntaxHeap() Partition[format.SyntaxIndex, format.Index] {
	return mustCachedNamed[format.SyntaxIndex, format.Index](f, slotSyntaxHeap, syntaxHeapName)
}

// ImportedModules returns the "module.imported" partition.
func (f *File) ImportedModules() Partition[record.ModuleReference, format.Index] {
	return mustCachedNamed[record.ModuleReference, format.Index](f, slotImportedModules, importedModulesName)
}

// ExportedModules returns the "module.exported" partition.
func (f *File) ExportedModules() Partition[record.ModuleReference, format.Index] {
	return mustCachedNamed[record.ModuleReference, format.Index](f, slotExportedModules, exportedModulesName)
}

// DeductionGuideNames returns the "name.guide" partition: the list of
// deduction-guide declarations.
func (f *File) DeductionGuideNames() Partition[format.DeclIndex, format.Index] {
	return mustCachedNamed[format.DeclIndex, format.Index](f, slotDeductionGuideNames, deductionGuideNamesName)
}

// ScopeDescriptors returns the "scope.desc" partition mapping each scope to
// its run of declarations inside the "decl" partition.
func (f *File) ScopeDescriptors() Partition[format.Sequence, format.ScopeIndex] {
	return mustCachedNamed[format.Sequence, format.ScopeIndex](f, slotScopeDescriptors, scopeDescriptorsName)
}

// warmers lists one resolution per accessor for Preload.
var warmers = []func(*File){
	func(f *File) { f.Declarations() },
	func(f *File) { f.ScopeDeclarations() },
	func(f *File) { f.TemplateDeclarations() },
	func(f *File) { f.PartialSpecializations() },
	func(f *File) { f.Specializations() },
	func(f *File) { f.UsingDeclarations() },
	func(f *File) { f.Enumerations() },
	func(f *File) { f.Enumerators() },
	func(f *File) { f.AliasDeclarations() },
	func(f *File) { f.DeclReferences() },
	func(f *File) { f.Functions() },
	func(f *File) { f.Methods() },
	func(f *File) { f.Constructors() },
	func(f *File) { f.Destructors() },
	func(f *File) { f.Variables() },
	func(f *File) { f.Parameters() },
	func(f *File) { f.Fields() },
	func(f *File) { f.Friends() },
	func(f *File) { f.Concepts() },
	func(f *File) { f.IntrinsicDeclarations() },
	func(f *File) { f.DeductionGuides() },
	func(f *File) { f.FundamentalTypes() },
	func(f *File) { f.DesignatedTypes() },
	func(f *File) { f.TorTypes() },
	func(f *File) { f.SyntacticTypes() },
	func(f *File) { f.ExpansionTypes() },
	func(f *File) { f.PointerTypes() },
	func(f *File) { f.FunctionTypes() },
	func(f *File) { f.MethodTypes() },
	func(f *File) { f.ArrayTypes() },
	func(f *File) { f.BaseTypes() },
	func(f *File) { f.TupleTypes() },
	func(f *File) { f.LvalueReferences() },
	func(f *File) { f.RvalueReferences() },
	func(f *File) { f.QualifiedTypes() },
	func(f *File) { f.ForallTypes() },
	func(f *File) { f.SyntaxTypes() },
	func(f *File) { f.PlaceholderTypes() },
	func(f *File) { f.TypenameTypes() },
	func(f *File) { f.DecltypeTypes() },
	func(f *File) { f.BasicAttributes() },
	func(f *File) { f.ScopedAttributes() },
	func(f *File) { f.LabeledAttributes() },
	func(f *File) { f.CalledAttributes() },
	func(f *File) { f.ExpandedAttributes() },
	func(f *File) { f.FactoredAttributes() },
	func(f *File) { f.ElaboratedAttributes() },
	func(f *File) { f.TupleAttributes() },
	func(f *File) { f.LiteralExpressions() },
	func(f *File) { f.TypeExpressions() },
	func(f *File) { f.DeclExpressions() },
	func(f *File) { f.UnqualifiedIDExpressions() },
	func(f *File) { f.TemplateIDs() },
	func(f *File) { f.TemplateReferences() },
	func(f *File) { f.MonadExpressions() },
	func(f *File) { f.DyadExpressions() },
	func(f *File) { f.StringLiteralExpressions() },
	func(f *File) { f.CallExpressions() },
	func(f *File) { f.SizeofExpressions() },
	func(f *File) { f.AlignofExpressions() },
	func(f *File) { f.RequiresExpressions() },
	func(f *File) { f.TupleExpressions() },
	func(f *File) { f.PathExpressions() },
	func(f *File) { f.ReadExpressions() },
	func(f *File) { f.SyntaxTreeExpressions() },
	func(f *File) { f.ExpressionLists() },
	func(f *File) { f.QualifiedNameExpressions() },
	func(f *File) { f.PackedTemplateArguments() },
	func(f *File) { f.ProductValueTypeExpressions() },
	func(f *File) { f.SubobjectValues() },
	func(f *File) { f.UnilevelCharts() },
	func(f *File) { f.MultilevelCharts() },
	func(f *File) { f.IntegerLiterals() },
	func(f *File) { f.FPLiterals() },
	func(f *File) { f.SimpleTypeSpecifiers() },
	func(f *File) { f.DecltypeSpecifiers() },
	func(f *File) { f.TypeSpecifierSeqs() },
	func(f *File) { f.DeclSpecifierSeqs() },
	func(f *File) { f.TypeIDSyntaxTrees() },
	func(f *File) { f.DeclaratorSyntaxTrees() },
	func(f *File) { f.PointerDeclaratorSyntaxTrees() },
	func(f *File) { f.FunctionDeclaratorSyntaxTrees() },
	func(f *File) { f.ParameterDeclaratorSyntaxTrees() },
	func(f *File) { f.ExpressionSyntaxTrees() },
	func(f *File) { f.RequiresClauseSyntaxTrees() },
	func(f *File) { f.SimpleRequirementSyntaxTrees() },
	func(f *File) { f.TypeRequirementSyntaxTrees() },
	func(f *File) { f.NestedRequirementSyntaxTrees() },
	func(f *File) { f.CompoundRequirementSyntaxTrees() },
	func(f *File) { f.RequirementBodySyntaxTrees() },
	func(f *File) { f.TypeTemplateArgumentSyntaxTrees() },
	func(f *File) { f.TemplateArgumentListSyntaxTrees() },
	func(f *File) { f.TemplateIDSyntaxTrees() },
	func(f *File) { f.TypeTraitIntrinsicSyntaxTrees() },
	func(f *File) { f.TupleSyntaxTrees() },
	func(f *File) { f.OperatorNames() },
	func(f *File) { f.ConversionNames() },
	func(f *File) { f.LiteralNames() },
	func(f *File) { f.TemplateNames() },
	func(f *File) { f.SpecializationNames() },
	func(f *File) { f.SourceFileNames() },
	func(f *File) { f.TypeHeap() },
	func(f *File) { f.ExprHeap() },
	func(f *File) { f.AttrHeap() },
	func(f *File) { f.SyntaxHeap() },
	func(f *File) { f.ImportedModules() },
	func(f *File) { f.ExportedModules() },
	func(f *File) { f.DeductionGuideNames() },
	func(f *File) { f.ScopeDescriptors() },
}
