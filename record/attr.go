package record

import "github.com/arloliu/ifc/format"

// AttrBasic is a single-word attribute, e.g. [[noreturn]].
type AttrBasic struct {
	Word format.Word
}

func (AttrBasic) PartitionName() string { return "attr.basic" }

// AttrScoped is a scoped attribute, e.g. [[msvc::forceinline]].
type AttrScoped struct {
	Scope  format.Word
	Member format.Word
}

func (AttrScoped) PartitionName() string { return "attr.scoped" }

// AttrLabeled is an attribute argument with a label, e.g. audit in
// [[clang::suppress(audit)]].
type AttrLabeled struct {
	Label     format.Word
	Attribute format.AttrIndex
}

func (AttrLabeled) PartitionName() string { return "attr.labeled" }

// AttrCalled is an attribute with call syntax, e.g. [[deprecated("msg")]].
type AttrCalled struct {
	Function  format.AttrIndex
	Arguments format.AttrIndex
}

func (AttrCalled) PartitionName() string { return "attr.called" }

// AttrExpanded is a pack-expanded attribute.
type AttrExpanded struct {
	Operand format.AttrIndex
}

func (AttrExpanded) PartitionName() string { return "attr.expanded" }

// AttrFactored is an attribute with a factored-out scope, e.g.
// [[using msvc: opt(2), inline]].
type AttrFactored struct {
	Factor format.Word
	Terms  format.AttrIndex
}

func (AttrFactored) PartitionName() string { return "attr.factored" }

// AttrElaborated is an attribute whose argument is a full expression.
type AttrElaborated struct {
	Expression format.ExprIndex
}

func (AttrElaborated) PartitionName() string { return "attr.elaborated" }

// AttrTuple is a sequence of attributes; Elements runs inside heap.attr.
type AttrTuple struct {
	Elements format.Sequence
}

func (AttrTuple) PartitionName() string { return "attr.tuple" }
