package view

import (
	"github.com/arloliu/ifc/blob"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/record"
)

// Name wraps a NameIndex and resolves its payload through the name
// partition selected by the index's sort tag, or through the string table
// for identifiers.
type Name struct {
	file  *blob.File
	index format.NameIndex
}

// NewName wraps a name index.
func NewName(file *blob.File, index format.NameIndex) Name {
	return Name{file: file, index: index}
}

// Sort returns the name sort.
func (n Name) Sort() format.NameSort {
	return n.index.Sort()
}

// IsNull reports whether the name is the null name.
func (n Name) IsNull() bool {
	return n.index.IsNull()
}

// IsIdentifier reports whether the name is a plain identifier.
func (n Name) IsIdentifier() bool {
	return n.index.Sort() == format.NameSortIdentifier
}

// AsIdentifier returns the identifier's spelling. The linear part of an
// identifier name is a text offset, not a partition index.
func (n Name) AsIdentifier() string {
	return n.file.GetString(format.TextOffset(n.index.Ix()))
}

// IsOperator reports whether the name names an overloaded operator.
func (n Name) IsOperator() bool {
	return n.index.Sort() == format.NameSortOperator
}

// OperatorName returns the operator's source spelling, e.g. "operator+".
func (n Name) OperatorName() string {
	return n.file.GetString(n.file.OperatorNames().At(n.index).Name)
}

// Operator returns the encoded operator value.
func (n Name) Operator() format.Operator {
	return n.file.OperatorNames().At(n.index).Operator
}

// IsLiteral reports whether the name names a user-defined literal operator.
func (n Name) IsLiteral() bool {
	return n.index.Sort() == format.NameSortLiteral
}

// AsLiteral returns the literal operator's suffix.
func (n Name) AsLiteral() string {
	return n.file.GetString(n.file.LiteralNames().At(n.index).Suffix)
}

// IsSpecialization reports whether the name names a template
// specialization.
func (n Name) IsSpecialization() bool {
	return n.index.Sort() == format.NameSortSpecialization
}

// AsSpecialization returns the specialization-name wrapper.
func (n Name) AsSpecialization() SpecializationName {
	return SpecializationName{file: n.file, rec: n.file.SpecializationNames().At(n.index)}
}

// String returns a displayable spelling for the identifier, operator and
// literal sorts, and the sort name otherwise.
func (n Name) String() string {
	switch n.index.Sort() {
	case format.NameSortIdentifier:
		return n.AsIdentifier()
	case format.NameSortOperator:
		return n.OperatorName()
	case format.NameSortLiteral:
		return n.AsLiteral()
	default:
		return n.index.Sort().String()
	}
}

// Identifies reports whether n is the identifier s.
func Identifies(n Name, s string) bool {
	return n.IsIdentifier() && n.AsIdentifier() == s
}

// SpecializationName pairs a primary name with a template argument list.
type SpecializationName struct {
	file *blob.File
	rec  *record.SpecializationName
}

// Primary returns the primary template's name.
func (s SpecializationName) Primary() Name {
	return Name{file: s.file, index: s.rec.Primary}
}

// Arguments returns the template argument list.
func (s SpecializationName) Arguments() Expression {
	return Expression{file: s.file, index: s.rec.Arguments}
}
