package record

import "github.com/arloliu/ifc/format"

// ModuleReference names another module: an owner module name and an
// optional partition name, both as string-table offsets. A null Owner with a
// non-null Partition names a module of the global module fragment; a
// non-null Owner with a non-null Partition names "owner:partition".
//
// The same record shape fills both the module.imported and module.exported
// partitions, so it is resolved by explicit partition name.
type ModuleReference struct {
	Owner     format.TextOffset
	Partition format.TextOffset
}

// AssociatedTrait attaches side data to a declaration. Trait partitions are
// arrays of these pairs; the reader folds them into per-declaration maps on
// first use.
type AssociatedTrait[T any] struct {
	Decl  format.DeclIndex
	Trait T
}
