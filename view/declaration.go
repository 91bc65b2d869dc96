package view

import (
	"iter"

	"github.com/arloliu/ifc/blob"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/record"
)

// Declaration is a tagged declaration handle. Its sort selects which typed
// wrapper applies.
type Declaration struct {
	file  *blob.File
	index format.DeclIndex
}

// NewDeclaration wraps a declaration index.
func NewDeclaration(file *blob.File, index format.DeclIndex) Declaration {
	return Declaration{file: file, index: index}
}

// Index returns the underlying declaration index.
func (d Declaration) Index() format.DeclIndex {
	return d.index
}

// Sort returns the declaration sort.
func (d Declaration) Sort() format.DeclSort {
	return d.index.Sort()
}

// IsNull reports whether the handle is the null declaration.
func (d Declaration) IsNull() bool {
	return d.index.IsNull()
}

// IsScope reports whether the declaration is a scope (namespace, class,
// struct or union).
func (d Declaration) IsScope() bool {
	return d.index.Sort() == format.DeclSortScope
}

// AsScope returns the scope-declaration wrapper. The sort must be Scope.
func (d Declaration) AsScope() ScopeDeclaration {
	return ScopeDeclaration{file: d.file, rec: d.file.ScopeDeclarations().At(d.index)}
}

// IsTemplate reports whether the declaration is a template.
func (d Declaration) IsTemplate() bool {
	return d.index.Sort() == format.DeclSortTemplate
}

// AsTemplate returns the template-declaration wrapper. The sort must be
// Template.
func (d Declaration) AsTemplate() TemplateDeclaration {
	return TemplateDeclaration{
		file:  d.file,
		index: d.index,
		rec:   d.file.TemplateDeclarations().At(d.index),
	}
}

// Attributes returns the attributes attached to the declaration through the
// trait partitions.
func (d Declaration) Attributes() []format.AttrIndex {
	return d.file.DeclarationAttributes(d.index)
}

// DeprecationText returns the declaration's deprecation message, or "" if
// it carries none.
func (d Declaration) DeprecationText() string {
	text := d.file.DeprecationText(d.index)
	if text.IsNull() {
		return ""
	}

	return d.file.GetString(text)
}

// ScopeDeclaration wraps a namespace, class, struct or union declaration.
type ScopeDeclaration struct {
	file *blob.File
	rec  *record.ScopeDeclaration
}

// Name returns the declaration's name.
func (s ScopeDeclaration) Name() Name {
	return Name{file: s.file, index: s.rec.Name}
}

// HomeScope returns the declaration that owns this scope, or the null
// declaration for members of the global namespace.
func (s ScopeDeclaration) HomeScope() Declaration {
	return Declaration{file: s.file, index: s.rec.HomeScope}
}

// Kind returns the scope kind from the fundamental-types partition: the
// basis of the type designated by the record's type field.
func (s ScopeDeclaration) Kind() format.TypeBasis {
	return s.file.FundamentalTypes().At(s.rec.Type).Basis
}

// IsNamespace reports whether the scope is a namespace.
func (s ScopeDeclaration) IsNamespace() bool {
	return s.Kind() == format.BasisNamespace
}

// IsClassOrStruct reports whether the scope is a class or struct.
func (s ScopeDeclaration) IsClassOrStruct() bool {
	kind := s.Kind()

	return kind == format.BasisClass || kind == format.BasisStruct
}

// Members returns the scope's member run. For an incomplete scope the run
// is empty.
func (s ScopeDeclaration) Members() Scope {
	if s.rec.Initializer == 0 {
		return Scope{file: s.file}
	}

	return Scope{file: s.file, seq: *s.file.ScopeDescriptors().At(s.rec.Initializer)}
}

// Specifiers returns the declaration's basic specifiers.
func (s ScopeDeclaration) Specifiers() format.BasicSpecifiers {
	return s.rec.Specifiers
}

// Access returns the declaration's access level.
func (s ScopeDeclaration) Access() format.Access {
	return s.rec.Access
}

// TemplateDeclaration wraps a template and the entity it parameterizes.
type TemplateDeclaration struct {
	file  *blob.File
	index format.DeclIndex
	rec   *record.TemplateDeclaration
}

// Name returns the template's name.
func (t TemplateDeclaration) Name() Name {
	return Name{file: t.file, index: t.rec.Name}
}

// Entity returns the templated declaration.
func (t TemplateDeclaration) Entity() Declaration {
	return Declaration{file: t.file, index: t.rec.Entity}
}

// Chart returns the template parameter chart.
func (t TemplateDeclaration) Chart() Chart {
	return Chart{file: t.file, index: t.rec.Chart}
}

// HomeScope returns the declaration that owns the template.
func (t TemplateDeclaration) HomeScope() Declaration {
	return Declaration{file: t.file, index: t.rec.HomeScope}
}

// Specifiers returns the template's basic specifiers.
func (t TemplateDeclaration) Specifiers() format.BasicSpecifiers {
	return t.rec.Specifiers
}

// Access returns the template's access level.
func (t TemplateDeclaration) Access() format.Access {
	return t.rec.Access
}

// Specializations iterates over the template's specializations: the "decl"
// partition sliced by the trait-derived specialization run. A template
// without the trait yields an empty sequence.
func (t TemplateDeclaration) Specializations() iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		seq := t.file.TemplateSpecializations(t.index)
		for _, d := range t.file.Declarations().Slice(seq).All() {
			if !yield(Declaration{file: t.file, index: d.Index}) {
				return
			}
		}
	}
}
