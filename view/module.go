package view

import (
	"iter"

	"github.com/arloliu/ifc/blob"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/record"
)

// Module is the whole-artifact view: the translated module interface as a
// browsable object.
type Module struct {
	file *blob.File
}

// NewModule wraps an opened file.
func NewModule(file *blob.File) Module {
	return Module{file: file}
}

// File returns the underlying reader.
func (m Module) File() *blob.File {
	return m.file
}

// Unit returns the unit description from the file header.
func (m Module) Unit() UnitDescription {
	return UnitDescription{file: m.file, unit: m.file.Unit()}
}

// GlobalNamespace returns the scope of the global namespace.
func (m Module) GlobalNamespace() Scope {
	return Scope{file: m.file, seq: m.file.GlobalScope()}
}

// ScopeDeclarations iterates over every scope declaration in the module.
func (m Module) ScopeDeclarations() iter.Seq[ScopeDeclaration] {
	return func(yield func(ScopeDeclaration) bool) {
		for _, rec := range m.file.ScopeDeclarations().All() {
			if !yield(ScopeDeclaration{file: m.file, rec: rec}) {
				return
			}
		}
	}
}

// Imports iterates over the modules this module imports.
func (m Module) Imports() iter.Seq[ModuleReference] {
	return moduleReferences(m.file, m.file.ImportedModules())
}

// Exports iterates over the modules this module re-exports.
func (m Module) Exports() iter.Seq[ModuleReference] {
	return moduleReferences(m.file, m.file.ExportedModules())
}

func moduleReferences(file *blob.File, refs blob.Partition[record.ModuleReference, format.Index]) iter.Seq[ModuleReference] {
	return func(yield func(ModuleReference) bool) {
		for _, ref := range refs.All() {
			if !yield(ModuleReference{file: file, ref: *ref}) {
				return
			}
		}
	}
}

// UnitDescription describes the module unit an artifact represents.
type UnitDescription struct {
	file *blob.File
	unit format.UnitIndex
}

// Sort returns the unit sort.
func (u UnitDescription) Sort() format.UnitSort {
	return u.unit.Sort()
}

// IsPrimary reports whether the artifact is a primary module interface.
func (u UnitDescription) IsPrimary() bool {
	return u.unit.Sort() == format.UnitSortPrimary
}

// IsPartition reports whether the artifact is a module partition.
func (u UnitDescription) IsPartition() bool {
	return u.unit.Sort() == format.UnitSortPartition
}

// Name returns the unit's name. It is meaningful for the Primary and
// Partition sorts, whose linear part is a text offset.
func (u UnitDescription) Name() string {
	return u.file.GetString(format.TextOffset(u.unit.Ix()))
}

// ModuleReference is a named reference to another module.
type ModuleReference struct {
	file *blob.File
	ref  record.ModuleReference
}

// Owner returns the owning module's name, or "" for the global module
// fragment.
func (r ModuleReference) Owner() string {
	if r.ref.Owner.IsNull() {
		return ""
	}

	return r.file.GetString(r.ref.Owner)
}

// Partition returns the partition name, or "" if the reference names a
// whole module.
func (r ModuleReference) Partition() string {
	if r.ref.Partition.IsNull() {
		return ""
	}

	return r.file.GetString(r.ref.Partition)
}

// Resolve looks the referenced module up in the environment the file was
// opened with.
func (r ModuleReference) Resolve() (*blob.File, error) {
	return r.file.ImportedModule(r.ref)
}

// Scope is a run of declarations: a namespace body, a class body, or the
// global namespace.
type Scope struct {
	file *blob.File
	seq  format.Sequence
}

// Len returns the number of declarations in the scope.
func (s Scope) Len() int {
	return s.seq.Size.Count()
}

// Sequence returns the underlying run inside the "decl" partition.
func (s Scope) Sequence() format.Sequence {
	return s.seq
}

// Declarations iterates over the scope's declarations in declaration order.
func (s Scope) Declarations() iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		for _, d := range s.file.Declarations().Slice(s.seq).All() {
			if !yield(Declaration{file: s.file, index: d.Index}) {
				return
			}
		}
	}
}
