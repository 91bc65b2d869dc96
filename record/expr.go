package record

import "github.com/arloliu/ifc/format"

// LiteralExpression is a literal constant with its stored value.
type LiteralExpression struct {
	Type  format.TypeIndex
	Value format.LitIndex
}

func (LiteralExpression) PartitionName() string { return "expr.literal" }

// TypeExpression denotes a type used in expression position.
type TypeExpression struct {
	Denotation format.TypeIndex
}

func (TypeExpression) PartitionName() string { return "expr.type" }

// NamedDecl is a reference to a declaration.
type NamedDecl struct {
	Type format.TypeIndex
	Decl format.DeclIndex
}

func (NamedDecl) PartitionName() string { return "expr.decl" }

// UnqualifiedID is an unresolved unqualified name in expression position.
type UnqualifiedID struct {
	Type       format.TypeIndex
	Name       format.NameIndex
	Resolution format.ExprIndex
}

func (UnqualifiedID) PartitionName() string { return "expr.unqualified-id" }

// TemplateID applies template arguments to a primary template reference.
type TemplateID struct {
	Type      format.TypeIndex
	Primary   format.ExprIndex
	Arguments format.ExprIndex
}

func (TemplateID) PartitionName() string { return "expr.template-id" }

// TemplateReference names a member template of a dependent parent.
type TemplateReference struct {
	Member     format.NameIndex
	MemberType format.TypeIndex
	Parent     format.ExprIndex
	Arguments  format.ExprIndex
}

func (TemplateReference) PartitionName() string { return "expr.template-reference" }

// MonadExpression is a unary operator application.
type MonadExpression struct {
	Type    format.TypeIndex
	Operand format.ExprIndex
	Op      format.Operator
	_       [2]byte
}

func (MonadExpression) PartitionName() string { return "expr.monad" }

// DyadExpression is a binary operator application.
type DyadExpression struct {
	Type  format.TypeIndex
	Left  format.ExprIndex
	Right format.ExprIndex
	Op    format.Operator
	_     [2]byte
}

func (DyadExpression) PartitionName() string { return "expr.dyad" }

// StringLiteral is a string-literal constant. Start and Size delimit the
// bytes inside the string table; Suffix is the literal suffix, if any.
// The partition is addressed by StringIndex.
type StringLiteral struct {
	Start  format.TextOffset
	Size   format.Cardinality
	Suffix format.TextOffset
}

func (StringLiteral) PartitionName() string { return "expr.string" }

// CallExpression is a function call.
type CallExpression struct {
	Type      format.TypeIndex
	Function  format.ExprIndex
	Arguments format.ExprIndex
}

func (CallExpression) PartitionName() string { return "expr.call" }

// SizeofExpression is sizeof applied to a type.
type SizeofExpression struct {
	Type    format.TypeIndex
	Operand format.TypeIndex
}

func (SizeofExpression) PartitionName() string { return "expr.sizeof" }

// AlignofExpression is alignof applied to a type.
type AlignofExpression struct {
	Type    format.TypeIndex
	Operand format.TypeIndex
}

func (AlignofExpression) PartitionName() string { return "expr.alignof" }

// RequiresExpression is a requires-expression with its parameter chart and
// requirement body.
type RequiresExpression struct {
	Type       format.TypeIndex
	Parameters format.ChartIndex
	Body       format.SyntaxIndex
}

func (RequiresExpression) PartitionName() string { return "expr.requires" }

// TupleExpression is a fixed sequence of expressions; Seq runs inside
// heap.expr.
type TupleExpression struct {
	Type format.TypeIndex
	Seq  format.Sequence
}

func (TupleExpression) PartitionName() string { return "expr.tuple" }

// PathExpression selects a member through a scope path.
type PathExpression struct {
	Type   format.TypeIndex
	Scope  format.ExprIndex
	Member format.ExprIndex
}

func (PathExpression) PartitionName() string { return "expr.path" }

// ReadExpression is an lvalue-to-rvalue conversion or similar read.
type ReadExpression struct {
	Type  format.TypeIndex
	Child format.ExprIndex
	Kind  format.ReadKind
	_     [3]byte
}

func (ReadExpression) PartitionName() string { return "expr.read" }

// SyntaxTreeExpression carries an unresolved syntax tree in expression
// position.
type SyntaxTreeExpression struct {
	Syntax format.SyntaxIndex
}

func (SyntaxTreeExpression) PartitionName() string { return "expr.syntax-tree" }

// ExpressionList is a delimited list of expressions; Contents runs inside
// heap.expr.
type ExpressionList struct {
	Contents format.Sequence
	// Delimiter distinguishes parenthesized, braced and bare lists.
	Delimiter uint8
	_         [3]byte
}

func (ExpressionList) PartitionName() string { return "expr.list" }

// QualifiedNameExpression is a qualified name; Elements points at a tuple
// expression holding the path components.
type QualifiedNameExpression struct {
	Type     format.TypeIndex
	Elements format.ExprIndex
}

func (QualifiedNameExpression) PartitionName() string { return "expr.qualified-name" }

// PackedTemplateArguments is a captured template argument pack.
type PackedTemplateArguments struct {
	Type      format.TypeIndex
	Arguments format.ExprIndex
}

func (PackedTemplateArguments) PartitionName() string { return "expr.packed-template-arguments" }

// ProductValueType is an aggregate value of product type (a braced
// initializer of a structure).
type ProductValueType struct {
	Type      format.TypeIndex
	Structure format.TypeIndex
	Members   format.ExprIndex
}

func (ProductValueType) PartitionName() string { return "expr.product-value-type" }

// SubobjectValue is the value of a single subobject inside an aggregate.
type SubobjectValue struct {
	Value format.ExprIndex
}

func (SubobjectValue) PartitionName() string { return "expr.subobject-value" }
