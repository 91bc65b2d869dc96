package record

import "github.com/arloliu/ifc/format"

// Syntax-tree records preserve the parsed shape of constructs the compiler
// does not semantically elaborate inside a module interface, such as the
// bodies of requires-expressions. They reference each other by SyntaxIndex
// and variable-length children run inside heap.syn.

// SimpleTypeSpecifier is a type named by a single keyword or identifier.
type SimpleTypeSpecifier struct {
	Type    format.TypeIndex
	Keyword format.Word
}

func (SimpleTypeSpecifier) PartitionName() string { return "syntax.simple-type-specifier" }

// DecltypeSpecifier is a decltype(expression) specifier.
type DecltypeSpecifier struct {
	Expression format.ExprIndex
}

func (DecltypeSpecifier) PartitionName() string { return "syntax.decltype-specifier" }

// TypeSpecifierSeq is a sequence of type specifiers.
type TypeSpecifierSeq struct {
	Type       format.TypeIndex
	Qualifiers format.Qualifiers
	_          [3]byte
}

func (TypeSpecifierSeq) PartitionName() string { return "syntax.type-specifier-seq" }

// DeclSpecifierSeq is a sequence of declaration specifiers.
type DeclSpecifierSeq struct {
	Type       format.TypeIndex
	Qualifiers format.Qualifiers
	_          [3]byte
}

func (DeclSpecifierSeq) PartitionName() string { return "syntax.decl-specifier-seq" }

// TypeIDSyntax is a type-id: specifiers plus an abstract declarator.
type TypeIDSyntax struct {
	Specifier  format.SyntaxIndex
	Declarator format.SyntaxIndex
}

func (TypeIDSyntax) PartitionName() string { return "syntax.type-id" }

// DeclaratorSyntax is a declarator.
type DeclaratorSyntax struct {
	Pointer    format.SyntaxIndex
	Function   format.SyntaxIndex
	Qualifiers format.Qualifiers
	_          [3]byte
}

func (DeclaratorSyntax) PartitionName() string { return "syntax.declarator" }

// PointerDeclaratorSyntax is a pointer, reference or pointer-to-member
// declarator.
type PointerDeclaratorSyntax struct {
	Child format.SyntaxIndex
	// Kind distinguishes *, &, && and pointer-to-member forms.
	Kind       uint8
	Qualifiers format.Qualifiers
	_          [2]byte
}

func (PointerDeclaratorSyntax) PartitionName() string { return "syntax.pointer-declarator" }

// FunctionDeclaratorSyntax is a function declarator.
type FunctionDeclaratorSyntax struct {
	Parameters    format.SyntaxIndex
	ExceptionSpec format.SyntaxIndex
	Traits        uint8
	_             [3]byte
}

func (FunctionDeclaratorSyntax) PartitionName() string { return "syntax.function-declarator" }

// ParameterDeclaratorSyntax is one parameter of a function declarator.
type ParameterDeclaratorSyntax struct {
	Specifiers format.SyntaxIndex
	Declarator format.SyntaxIndex
	Default    format.ExprIndex
}

func (ParameterDeclaratorSyntax) PartitionName() string { return "syntax.parameter-declarator" }

// ExpressionSyntax carries an expression in syntax position.
type ExpressionSyntax struct {
	Expression format.ExprIndex
}

func (ExpressionSyntax) PartitionName() string { return "syntax.expression" }

// RequiresClauseSyntax is a requires-clause constraint.
type RequiresClauseSyntax struct {
	Expression format.ExprIndex
}

func (RequiresClauseSyntax) PartitionName() string { return "syntax.requires-clause" }

// SimpleRequirementSyntax is an expression requirement.
type SimpleRequirementSyntax struct {
	Expression format.ExprIndex
}

func (SimpleRequirementSyntax) PartitionName() string { return "syntax.simple-requirement" }

// TypeRequirementSyntax is a type requirement.
type TypeRequirementSyntax struct {
	Type format.SyntaxIndex
}

func (TypeRequirementSyntax) PartitionName() string { return "syntax.type-requirement" }

// NestedRequirementSyntax is a nested constraint requirement.
type NestedRequirementSyntax struct {
	Constraint format.ExprIndex
}

func (NestedRequirementSyntax) PartitionName() string { return "syntax.nested-requirement" }

// CompoundRequirementSyntax is a compound requirement with an optional
// return-type constraint.
type CompoundRequirementSyntax struct {
	Expression     format.ExprIndex
	TypeConstraint format.SyntaxIndex
	IsNoexcept     uint8
	_              [3]byte
}

func (CompoundRequirementSyntax) PartitionName() string { return "syntax.compound-requirement" }

// RequirementBodySyntax is the body of a requires-expression; Requirements
// runs inside heap.syn.
type RequirementBodySyntax struct {
	Requirements format.Sequence
}

func (RequirementBodySyntax) PartitionName() string { return "syntax.requirement-body" }

// TypeTemplateArgumentSyntax is a type template argument.
type TypeTemplateArgumentSyntax struct {
	Argument format.SyntaxIndex
}

func (TypeTemplateArgumentSyntax) PartitionName() string { return "syntax.type-template-argument" }

// TemplateArgumentListSyntax is a template argument list; Arguments runs
// inside heap.syn.
type TemplateArgumentListSyntax struct {
	Arguments format.Sequence
}

func (TemplateArgumentListSyntax) PartitionName() string { return "syntax.template-argument-list" }

// TemplateIDSyntax is a template-id.
type TemplateIDSyntax struct {
	Name      format.NameIndex
	Arguments format.SyntaxIndex
}

func (TemplateIDSyntax) PartitionName() string { return "syntax.template-id" }

// TypeTraitIntrinsicSyntax is a compiler type-trait intrinsic application.
type TypeTraitIntrinsicSyntax struct {
	Arguments format.SyntaxIndex
	Intrinsic format.Operator
	_         [2]byte
}

func (TypeTraitIntrinsicSyntax) PartitionName() string { return "syntax.type-trait-intrinsic" }

// TupleSyntax is a fixed sequence of syntax nodes; Elements runs inside
// heap.syn.
type TupleSyntax struct {
	Elements format.Sequence
}

func (TupleSyntax) PartitionName() string { return "syntax.tuple" }
