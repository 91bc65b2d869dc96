package record

import "github.com/arloliu/ifc/format"

// OperatorFunctionName names an overloaded operator. Name is the source
// spelling ("operator+"), Operator the encoded operator value.
type OperatorFunctionName struct {
	Name     format.TextOffset
	Operator format.Operator
	_        [2]byte
}

func (OperatorFunctionName) PartitionName() string { return "name.operator" }

// ConversionFunctionName names a conversion function by its target type.
type ConversionFunctionName struct {
	Target format.TypeIndex
	Name   format.TextOffset
}

func (ConversionFunctionName) PartitionName() string { return "name.conversion" }

// LiteralName names a user-defined literal operator by its suffix.
type LiteralName struct {
	Suffix format.TextOffset
}

func (LiteralName) PartitionName() string { return "name.literal" }

// TemplateName names a template as a nested name component.
type TemplateName struct {
	Name format.NameIndex
}

func (TemplateName) PartitionName() string { return "name.template" }

// SpecializationName names a template specialization: the primary name plus
// a template argument list.
type SpecializationName struct {
	Primary   format.NameIndex
	Arguments format.ExprIndex
}

func (SpecializationName) PartitionName() string { return "name.specialization" }

// SourceFileName names a header unit by its source path.
type SourceFileName struct {
	Path  format.TextOffset
	Guard format.TextOffset
}

func (SourceFileName) PartitionName() string { return "name.source-file" }
