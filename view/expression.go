package view

import (
	"fmt"
	"iter"

	"github.com/arloliu/ifc/blob"
	"github.com/arloliu/ifc/errs"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/record"
)

// Expression is a tagged expression handle.
type Expression struct {
	file  *blob.File
	index format.ExprIndex
}

// NewExpression wraps an expression index.
func NewExpression(file *blob.File, index format.ExprIndex) Expression {
	return Expression{file: file, index: index}
}

// Index returns the underlying expression index.
func (e Expression) Index() format.ExprIndex {
	return e.index
}

// Sort returns the expression sort.
func (e Expression) Sort() format.ExprSort {
	return e.index.Sort()
}

// IsNull reports whether the handle is the null expression.
func (e Expression) IsNull() bool {
	return e.index.IsNull()
}

// IsTuple reports whether the expression is a tuple.
func (e Expression) IsTuple() bool {
	return e.index.Sort() == format.ExprSortTuple
}

// AsTuple returns the tuple view. The sort must be Tuple.
func (e Expression) AsTuple() TupleExpressionView {
	return TupleExpressionView{file: e.file, rec: e.file.TupleExpressions().At(e.index)}
}

// IsQualifiedName reports whether the expression is a qualified name.
func (e Expression) IsQualifiedName() bool {
	return e.index.Sort() == format.ExprSortQualifiedName
}

// QualifiedNameParts returns the component run of a qualified-name
// expression. The record's elements field must carry a tuple expression;
// anything else is a format-contract violation.
func (e Expression) QualifiedNameParts() TupleExpressionView {
	elements := e.file.QualifiedNameExpressions().At(e.index).Elements
	if elements.Sort() != format.ExprSortTuple {
		panic(fmt.Errorf("%w: qualified-name elements are %d, want tuple", errs.ErrIndexOutOfRange, elements.Sort()))
	}

	return TupleExpressionView{file: e.file, rec: e.file.TupleExpressions().At(elements)}
}

// TupleExpressionView is a tuple expression's element run inside the
// expression heap.
type TupleExpressionView struct {
	file *blob.File
	rec  *record.TupleExpression
}

// Len returns the number of elements.
func (t TupleExpressionView) Len() int {
	return t.rec.Seq.Size.Count()
}

// Elements returns the element indexes: the expression heap sliced by the
// tuple's sequence.
func (t TupleExpressionView) Elements() blob.Partition[format.ExprIndex, format.Index] {
	return t.file.ExprHeap().Slice(t.rec.Seq)
}

// All iterates over the elements as expressions.
func (t TupleExpressionView) All() iter.Seq[Expression] {
	return func(yield func(Expression) bool) {
		for _, idx := range t.Elements().All() {
			if !yield(Expression{file: t.file, index: *idx}) {
				return
			}
		}
	}
}
