package record

import "github.com/arloliu/ifc/format"

// Declaration is one element of the "decl" partition: a tagged reference to
// a declaration record in one of the sorted declaration partitions. Scope
// descriptors are sequences over this partition.
type Declaration struct {
	Index format.DeclIndex
}

func (Declaration) PartitionName() string { return "decl" }

// ScopeDeclaration describes a namespace, class, struct, union or other
// entity that introduces a scope. The kind is carried by the fundamental
// type at Type.
type ScopeDeclaration struct {
	Name format.NameIndex
	// Type points at the fundamental type describing the scope kind
	// (class, struct, union, namespace).
	Type format.TypeIndex
	// Base is the base-class specification, or null.
	Base format.TypeIndex
	// Initializer is the scope descriptor holding the members, or null for
	// an incomplete scope.
	Initializer format.ScopeIndex
	HomeScope   format.DeclIndex
	Alignment   uint32
	Specifiers  format.BasicSpecifiers
	Access      format.Access
	Properties  uint8
	_           [2]byte
}

func (ScopeDeclaration) PartitionName() string { return "decl.scope" }

// TemplateDeclaration describes a template and the entity it parameterizes.
type TemplateDeclaration struct {
	Name      format.NameIndex
	HomeScope format.DeclIndex
	// Chart is the template parameter chart.
	Chart format.ChartIndex
	// Entity is the templated declaration.
	Entity     format.DeclIndex
	Type       format.TypeIndex
	Specifiers format.BasicSpecifiers
	Access     format.Access
	_          [3]byte
}

func (TemplateDeclaration) PartitionName() string { return "decl.template" }

// PartialSpecialization describes a partial specialization of a template.
type PartialSpecialization struct {
	Name               format.NameIndex
	HomeScope          format.DeclIndex
	Chart              format.ChartIndex
	Entity             format.DeclIndex
	SpecializationForm format.Index
	Specifiers         format.BasicSpecifiers
	Access             format.Access
	_                  [3]byte
}

func (PartialSpecialization) PartitionName() string { return "decl.partial-specialization" }

// Specialization describes an explicit or implicit specialization of a
// template for a particular argument list.
type Specialization struct {
	Template  format.DeclIndex
	Arguments format.ExprIndex
	Decl      format.DeclIndex
	// Form distinguishes implicit, explicit and extern specializations.
	Form uint8
	_    [3]byte
}

func (Specialization) PartitionName() string { return "decl.specialization" }

// UsingDeclaration describes a using-declaration and its resolution.
type UsingDeclaration struct {
	Name       format.NameIndex
	HomeScope  format.DeclIndex
	Resolution format.DeclIndex
	Parent     format.ExprIndex
	Specifiers format.BasicSpecifiers
	Access     format.Access
	IsHidden   uint8
	_          [2]byte
}

func (UsingDeclaration) PartitionName() string { return "decl.using" }

// Enumeration describes an enumeration type. Initializer is the run of its
// enumerators inside the "decl.enumerator" partition.
type Enumeration struct {
	Name format.NameIndex
	// Type is the underlying integral type.
	Type        format.TypeIndex
	Base        format.TypeIndex
	Initializer format.Sequence
	HomeScope   format.DeclIndex
	Alignment   uint32
	Specifiers  format.BasicSpecifiers
	Access      format.Access
	_           [3]byte
}

func (Enumeration) PartitionName() string { return "decl.enum" }

// Enumerator describes one enumerator of an enumeration.
type Enumerator struct {
	Name        format.NameIndex
	Initializer format.ExprIndex
	Specifiers  format.BasicSpecifiers
	Access      format.Access
	_           [3]byte
}

func (Enumerator) PartitionName() string { return "decl.enumerator" }

// AliasDeclaration describes a type alias.
type AliasDeclaration struct {
	Name format.NameIndex
	// Aliasee is the type the alias denotes.
	Aliasee    format.TypeIndex
	HomeScope  format.DeclIndex
	Specifiers format.BasicSpecifiers
	Access     format.Access
	_          [3]byte
}

func (AliasDeclaration) PartitionName() string { return "decl.alias" }

// DeclReference refers to a declaration exported by another module.
type DeclReference struct {
	// Unit identifies the owning module.
	Unit ModuleReference
	// LocalIndex is the declaration's index inside the owning module.
	LocalIndex format.DeclIndex
}

func (DeclReference) PartitionName() string { return "decl.reference" }

// FunctionDeclaration describes a free or static member function.
type FunctionDeclaration struct {
	Name       format.NameIndex
	Type       format.TypeIndex
	HomeScope  format.DeclIndex
	Chart      format.ChartIndex
	Specifiers format.BasicSpecifiers
	// Traits is a bitset of function traits (inline, constexpr, noexcept…).
	Traits     uint16
	Access     format.Access
	Convention format.CallingConvention
}

func (FunctionDeclaration) PartitionName() string { return "decl.function" }

// MethodDeclaration describes a non-static member function.
type MethodDeclaration struct {
	Name       format.NameIndex
	Type       format.TypeIndex
	HomeScope  format.DeclIndex
	Chart      format.ChartIndex
	Specifiers format.BasicSpecifiers
	Traits     uint16
	Access     format.Access
	Convention format.CallingConvention
}

func (MethodDeclaration) PartitionName() string { return "decl.method" }

// Constructor describes a constructor.
type Constructor struct {
	Name       format.NameIndex
	Type       format.TypeIndex
	HomeScope  format.DeclIndex
	Chart      format.ChartIndex
	Specifiers format.BasicSpecifiers
	Traits     uint16
	Access     format.Access
	Convention format.CallingConvention
}

func (Constructor) PartitionName() string { return "decl.constructor" }

// Destructor describes a destructor.
type Destructor struct {
	Name       format.NameIndex
	HomeScope  format.DeclIndex
	Specifiers format.BasicSpecifiers
	Traits     uint16
	Access     format.Access
	Convention format.CallingConvention
}

func (Destructor) PartitionName() string { return "decl.destructor" }

// VariableDeclaration describes a variable.
type VariableDeclaration struct {
	Name        format.NameIndex
	Type        format.TypeIndex
	HomeScope   format.DeclIndex
	Initializer format.ExprIndex
	Alignment   format.ExprIndex
	Specifiers  format.BasicSpecifiers
	Access      format.Access
	Properties  uint8
	_           [2]byte
}

func (VariableDeclaration) PartitionName() string { return "decl.variable" }

// ParameterDeclaration describes a function or template parameter.
type ParameterDeclaration struct {
	Name    format.NameIndex
	Type    format.TypeIndex
	Default format.ExprIndex
	// Position is the 1-based position within the parameter list; Level is
	// the template nesting depth.
	Position uint16
	Level    uint16
	// Sort distinguishes object, type and template parameters.
	Sort       uint8
	Properties uint8
	_          [2]byte
}

func (ParameterDeclaration) PartitionName() string { return "decl.parameter" }

// FieldDeclaration describes a non-static data member.
type FieldDeclaration struct {
	Name        format.NameIndex
	Type        format.TypeIndex
	HomeScope   format.DeclIndex
	Initializer format.ExprIndex
	Alignment   uint32
	Specifiers  format.BasicSpecifiers
	Access      format.Access
	_           [3]byte
}

func (FieldDeclaration) PartitionName() string { return "decl.field" }

// FriendDeclaration describes a friend of a class.
type FriendDeclaration struct {
	Entity format.ExprIndex
}

func (FriendDeclaration) PartitionName() string { return "decl.friend" }

// Concept describes a concept definition.
type Concept struct {
	Name       format.NameIndex
	HomeScope  format.DeclIndex
	Type       format.TypeIndex
	Chart      format.ChartIndex
	Constraint format.ExprIndex
	Head       format.SyntaxIndex
	Body       format.SyntaxIndex
	Specifiers format.BasicSpecifiers
	Access     format.Access
	_          [3]byte
}

func (Concept) PartitionName() string { return "decl.concept" }

// IntrinsicDeclaration describes a compiler intrinsic.
type IntrinsicDeclaration struct {
	Name       format.NameIndex
	Type       format.TypeIndex
	HomeScope  format.DeclIndex
	Specifiers format.BasicSpecifiers
	Access     format.Access
	_          [3]byte
}

func (IntrinsicDeclaration) PartitionName() string { return "decl.intrinsic" }

// DeductionGuide describes a class template argument deduction guide.
type DeductionGuide struct {
	Name      format.NameIndex
	HomeScope format.DeclIndex
	// Source is the parameter chart; Target the deduced specialization.
	Source     format.ChartIndex
	Target     format.ExprIndex
	Specifiers format.BasicSpecifiers
	Access     format.Access
	_          [3]byte
}

func (DeductionGuide) PartitionName() string { return "decl.deduction-guide" }
