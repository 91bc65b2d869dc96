package format

type (
	DeclSort   uint8
	TypeSort   uint8
	ExprSort   uint8
	NameSort   uint8
	AttrSort   uint8
	SyntaxSort uint8
	ChartSort  uint8
	LitSort    uint8
	UnitSort   uint8
)

// Declaration sorts. Sort 0 is reserved for vendor extensions so that the
// whole-zero bit pattern stays the null declaration index.
const (
	DeclSortVendorExtension DeclSort = iota
	DeclSortScope
	DeclSortTemplate
	DeclSortPartialSpecialization
	DeclSortSpecialization
	DeclSortUsing
	DeclSortEnumeration
	DeclSortEnumerator
	DeclSortAlias
	DeclSortReference
	DeclSortFunction
	DeclSortMethod
	DeclSortConstructor
	DeclSortDestructor
	DeclSortVariable
	DeclSortParameter
	DeclSortField
	DeclSortFriend
	DeclSortConcept
	DeclSortIntrinsic
	DeclSortDeductionGuide
)

// Type sorts.
const (
	TypeSortVendorExtension TypeSort = iota
	TypeSortFundamental
	TypeSortDesignated
	TypeSortTor
	TypeSortSyntactic
	TypeSortExpansion
	TypeSortPointer
	TypeSortFunction
	TypeSortMethod
	TypeSortArray
	TypeSortBase
	TypeSortTuple
	TypeSortLvalueReference
	TypeSortRvalueReference
	TypeSortQualified
	TypeSortForall
	TypeSortSyntax
	TypeSortPlaceholder
	TypeSortTypename
	TypeSortDecltype
)

// Expression sorts.
const (
	ExprSortVendorExtension ExprSort = iota
	ExprSortLiteral
	ExprSortType
	ExprSortNamedDecl
	ExprSortUnqualifiedID
	ExprSortTemplateID
	ExprSortTemplateReference
	ExprSortMonad
	ExprSortDyad
	ExprSortString
	ExprSortCall
	ExprSortSizeof
	ExprSortAlignof
	ExprSortRequires
	ExprSortTuple
	ExprSortPath
	ExprSortRead
	ExprSortSyntaxTree
	ExprSortList
	ExprSortQualifiedName
	ExprSortPackedTemplateArguments
	ExprSortProductValueType
	ExprSortSubobjectValue
)

// Name sorts. Identifier is sort 0: an identifier name carries a TextOffset
// in its linear part rather than a partition index, so the null name and the
// null text coincide.
const (
	NameSortIdentifier NameSort = iota
	NameSortOperator
	NameSortConversion
	NameSortLiteral
	NameSortTemplate
	NameSortSpecialization
	NameSortSourceFile
	NameSortGuide
)

// Attribute sorts.
const (
	AttrSortNothing AttrSort = iota
	AttrSortBasic
	AttrSortScoped
	AttrSortLabeled
	AttrSortCalled
	AttrSortExpanded
	AttrSortFactored
	AttrSortElaborated
	AttrSortTuple
)

// Syntax-tree sorts.
const (
	SyntaxSortVendorExtension SyntaxSort = iota
	SyntaxSortSimpleTypeSpecifier
	SyntaxSortDecltypeSpecifier
	SyntaxSortTypeSpecifierSeq
	SyntaxSortDeclSpecifierSeq
	SyntaxSortTypeID
	SyntaxSortDeclarator
	SyntaxSortPointerDeclarator
	SyntaxSortFunctionDeclarator
	SyntaxSortParameterDeclarator
	SyntaxSortExpression
	SyntaxSortRequiresClause
	SyntaxSortSimpleRequirement
	SyntaxSortTypeRequirement
	SyntaxSortNestedRequirement
	SyntaxSortCompoundRequirement
	SyntaxSortRequirementBody
	SyntaxSortTypeTemplateArgument
	SyntaxSortTemplateArgumentList
	SyntaxSortTemplateID
	SyntaxSortTypeTraitIntrinsic
	SyntaxSortTuple
)

// Chart sorts.
const (
	ChartSortNone ChartSort = iota
	ChartSortUnilevel
	ChartSortMultilevel
)

// Literal sorts. Immediate literals store their value directly in the
// index's linear part and have no partition record.
const (
	LitSortImmediate LitSort = iota
	LitSortInteger
	LitSortFloatingPoint
)

// Unit sorts.
const (
	UnitSortSource UnitSort = iota
	UnitSortPrimary
	UnitSortPartition
	UnitSortHeader
	UnitSortExportedTU
)

func (s DeclSort) String() string {
	switch s {
	case DeclSortVendorExtension:
		return "VendorExtension"
	case DeclSortScope:
		return "Scope"
	case DeclSortTemplate:
		return "Template"
	case DeclSortPartialSpecialization:
		return "PartialSpecialization"
	case DeclSortSpecialization:
		return "Specialization"
	case DeclSortUsing:
		return "Using"
	case DeclSortEnumeration:
		return "Enumeration"
	case DeclSortEnumerator:
		return "Enumerator"
	case DeclSortAlias:
		return "Alias"
	case DeclSortReference:
		return "Reference"
	case DeclSortFunction:
		return "Function"
	case DeclSortMethod:
		return "Method"
	case DeclSortConstructor:
		return "Constructor"
	case DeclSortDestructor:
		return "Destructor"
	case DeclSortVariable:
		return "Variable"
	case DeclSortParameter:
		return "Parameter"
	case DeclSortField:
		return "Field"
	case DeclSortFriend:
		return "Friend"
	case DeclSortConcept:
		return "Concept"
	case DeclSortIntrinsic:
		return "Intrinsic"
	case DeclSortDeductionGuide:
		return "DeductionGuide"
	default:
		return "Unknown"
	}
}

func (s NameSort) String() string {
	switch s {
	case NameSortIdentifier:
		return "Identifier"
	case NameSortOperator:
		return "Operator"
	case NameSortConversion:
		return "Conversion"
	case NameSortLiteral:
		return "Literal"
	case NameSortTemplate:
		return "Template"
	case NameSortSpecialization:
		return "Specialization"
	case NameSortSourceFile:
		return "SourceFile"
	case NameSortGuide:
		return "Guide"
	default:
		return "Unknown"
	}
}

func (s UnitSort) String() string {
	switch s {
	case UnitSortSource:
		return "Source"
	case UnitSortPrimary:
		return "Primary"
	case UnitSortPartition:
		return "Partition"
	case UnitSortHeader:
		return "Header"
	case UnitSortExportedTU:
		return "ExportedTU"
	default:
		return "Unknown"
	}
}

func (s ChartSort) String() string {
	switch s {
	case ChartSortNone:
		return "None"
	case ChartSortUnilevel:
		return "Unilevel"
	case ChartSortMultilevel:
		return "Multilevel"
	default:
		return "Unknown"
	}
}

func (s LitSort) String() string {
	switch s {
	case LitSortImmediate:
		return "Immediate"
	case LitSortInteger:
		return "Integer"
	case LitSortFloatingPoint:
		return "FloatingPoint"
	default:
		return "Unknown"
	}
}
