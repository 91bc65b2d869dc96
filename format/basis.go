package format

// TypeBasis identifies a fundamental type, including the pseudo-bases the
// compiler uses for scope kinds (class, struct, union, namespace).
type TypeBasis uint8

const (
	BasisVoid TypeBasis = iota
	BasisBool
	BasisChar
	BasisWchar
	BasisInt
	BasisFloat
	BasisDouble
	BasisNullptr
	BasisEllipsis
	BasisClass
	BasisStruct
	BasisUnion
	BasisEnum
	BasisTypename
	BasisNamespace
	BasisInterface
)

func (b TypeBasis) String() string {
	switch b {
	case BasisVoid:
		return "Void"
	case BasisBool:
		return "Bool"
	case BasisChar:
		return "Char"
	case BasisWchar:
		return "Wchar"
	case BasisInt:
		return "Int"
	case BasisFloat:
		return "Float"
	case BasisDouble:
		return "Double"
	case BasisNullptr:
		return "Nullptr"
	case BasisEllipsis:
		return "Ellipsis"
	case BasisClass:
		return "Class"
	case BasisStruct:
		return "Struct"
	case BasisUnion:
		return "Union"
	case BasisEnum:
		return "Enum"
	case BasisTypename:
		return "Typename"
	case BasisNamespace:
		return "Namespace"
	case BasisInterface:
		return "Interface"
	default:
		return "Unknown"
	}
}

// TypePrecision refines a fundamental basis with a bit width.
type TypePrecision uint8

const (
	PrecisionDefault TypePrecision = iota
	PrecisionShort
	PrecisionLong
	PrecisionBit8
	PrecisionBit16
	PrecisionBit32
	PrecisionBit64
	PrecisionBit128
)

// TypeSign refines a fundamental basis with signedness.
type TypeSign uint8

const (
	SignPlain TypeSign = iota
	SignSigned
	SignUnsigned
)

// Access is a member access level.
type Access uint8

const (
	AccessNone Access = iota
	AccessPrivate
	AccessProtected
	AccessPublic
)

func (a Access) String() string {
	switch a {
	case AccessNone:
		return "None"
	case AccessPrivate:
		return "Private"
	case AccessProtected:
		return "Protected"
	case AccessPublic:
		return "Public"
	default:
		return "Unknown"
	}
}

// BasicSpecifiers is a bitset of fundamental declaration specifiers.
type BasicSpecifiers uint32

const (
	SpecifierC                  BasicSpecifiers = 1 << iota // extern "C" linkage
	SpecifierInternal                                       // internal linkage
	SpecifierVague                                          // vague linkage (inline, template instantiation)
	SpecifierExternal                                       // external linkage
	SpecifierDeprecated                                     // carries a deprecation trait
	SpecifierInitializedInClass                             // defined or initialized in a class scope
	SpecifierNonExported                                    // not exported from the module
	SpecifierIsMemberOfGlobalModule
)

// Has reports whether every specifier in mask is set.
func (s BasicSpecifiers) Has(mask BasicSpecifiers) bool {
	return s&mask == mask
}

// Qualifiers is a bitset of cv-qualifiers on a qualified type.
type Qualifiers uint8

const (
	QualifierConst Qualifiers = 1 << iota
	QualifierVolatile
	QualifierRestrict
)

// CallingConvention identifies the calling convention of a function or
// method type.
type CallingConvention uint8

const (
	ConventionCdecl CallingConvention = iota
	ConventionFast
	ConventionStd
	ConventionThis
	ConventionVector
)

// Operator encodes an overloadable operator. The high nibble is the operator
// category, the remainder the operator within the category; the reader
// treats the value as opaque and the view resolves the source spelling
// through the name partition's text.
type Operator uint16

// ExpansionMode distinguishes the forms of a pack-expansion type.
type ExpansionMode uint8

const (
	ExpansionFull ExpansionMode = iota
	ExpansionPartial
)

// ReadKind distinguishes the forms of an lvalue-to-rvalue read.
type ReadKind uint8

const (
	ReadIndirection ReadKind = iota
	ReadRemoveReference
	ReadLvalueToRvalue
)
