package record

import "github.com/arloliu/ifc/format"

// FundamentalType describes a builtin type or scope-kind basis.
type FundamentalType struct {
	Basis     format.TypeBasis
	Precision format.TypePrecision
	Sign      format.TypeSign
	_         [1]byte
}

func (FundamentalType) PartitionName() string { return "type.fundamental" }

// DesignatedType refers to a user-defined type through its declaration.
type DesignatedType struct {
	Decl format.DeclIndex
}

func (DesignatedType) PartitionName() string { return "type.designated" }

// TorType is the type of a constructor or destructor.
type TorType struct {
	Source     format.TypeIndex
	Convention format.CallingConvention
	_          [3]byte
}

func (TorType) PartitionName() string { return "type.tor" }

// SyntacticType is a type expressed through an expression.
type SyntacticType struct {
	Expr format.ExprIndex
}

func (SyntacticType) PartitionName() string { return "type.syntactic" }

// ExpansionType is a pack expansion.
type ExpansionType struct {
	Pack format.TypeIndex
	Mode format.ExpansionMode
	_    [3]byte
}

func (ExpansionType) PartitionName() string { return "type.expansion" }

// PointerType is a pointer to its pointee.
type PointerType struct {
	Pointee format.TypeIndex
}

func (PointerType) PartitionName() string { return "type.pointer" }

// FunctionType describes a function type. Source is the parameter type
// tuple, Target the return type.
type FunctionType struct {
	Target     format.TypeIndex
	Source     format.TypeIndex
	Eh         format.ExprIndex
	Convention format.CallingConvention
	Traits     uint8
	_          [2]byte
}

func (FunctionType) PartitionName() string { return "type.function" }

// MethodType describes a non-static member function type.
type MethodType struct {
	Target     format.TypeIndex
	Source     format.TypeIndex
	Class      format.TypeIndex
	Convention format.CallingConvention
	Traits     uint8
	_          [2]byte
}

func (MethodType) PartitionName() string { return "type.method" }

// ArrayType describes an array of Element with the given bound.
type ArrayType struct {
	Element format.TypeIndex
	Bound   format.ExprIndex
}

func (ArrayType) PartitionName() string { return "type.array" }

// BaseType is a base-class specifier inside a class definition.
type BaseType struct {
	Type   format.TypeIndex
	Access format.Access
	Traits uint8
	_      [2]byte
}

func (BaseType) PartitionName() string { return "type.base" }

// TupleType is a fixed sequence of types; Elements runs inside heap.type.
type TupleType struct {
	Elements format.Sequence
}

func (TupleType) PartitionName() string { return "type.tuple" }

// LvalueReference is an lvalue reference to its referee.
type LvalueReference struct {
	Referee format.TypeIndex
}

func (LvalueReference) PartitionName() string { return "type.lvalue-reference" }

// RvalueReference is an rvalue reference to its referee.
type RvalueReference struct {
	Referee format.TypeIndex
}

func (RvalueReference) PartitionName() string { return "type.rvalue-reference" }

// QualifiedType applies cv-qualifiers to an unqualified type.
type QualifiedType struct {
	Unqualified format.TypeIndex
	Qualifiers  format.Qualifiers
	_           [3]byte
}

func (QualifiedType) PartitionName() string { return "type.qualified" }

// ForallType is a universally quantified type: the subject under the chart's
// parameters.
type ForallType struct {
	Chart   format.ChartIndex
	Subject format.TypeIndex
}

func (ForallType) PartitionName() string { return "type.forall" }

// SyntaxType is a type carried as an unresolved syntax tree.
type SyntaxType struct {
	Syntax format.SyntaxIndex
}

func (SyntaxType) PartitionName() string { return "type.syntax" }

// PlaceholderType is an auto or decltype(auto) placeholder, possibly
// constrained and possibly already elaborated to a concrete type.
type PlaceholderType struct {
	Constraint  format.ExprIndex
	Elaboration format.TypeIndex
	Kind        uint8
	_           [3]byte
}

func (PlaceholderType) PartitionName() string { return "type.placeholder" }

// TypenameType is a dependent type named by a qualified path.
type TypenameType struct {
	Path format.ExprIndex
}

func (TypenameType) PartitionName() string { return "type.typename" }

// DecltypeType is the type of a decltype specifier.
type DecltypeType struct {
	Argument format.SyntaxIndex
}

func (DecltypeType) PartitionName() string { return "type.decltype" }
