package view

import (
	"iter"

	"github.com/arloliu/ifc/blob"
	"github.com/arloliu/ifc/format"
	"github.com/arloliu/ifc/record"
)

// Chart is a tagged template-parameter-chart handle.
type Chart struct {
	file  *blob.File
	index format.ChartIndex
}

// Sort returns the chart sort.
func (c Chart) Sort() format.ChartSort {
	return c.index.Sort()
}

// IsNull reports whether the handle is the null chart.
func (c Chart) IsNull() bool {
	return c.index.IsNull()
}

// AsUnilevel returns the single-level chart view. The sort must be
// Unilevel.
func (c Chart) AsUnilevel() UnilevelChart {
	return UnilevelChart{file: c.file, rec: c.file.UnilevelCharts().At(c.index)}
}

// AsMultilevel returns the multi-level chart view. The sort must be
// Multilevel.
func (c Chart) AsMultilevel() MultilevelChart {
	return MultilevelChart{file: c.file, rec: c.file.MultilevelCharts().At(c.index)}
}

// UnilevelChart is one template parameter list plus its optional
// requires-clause constraint.
type UnilevelChart struct {
	file *blob.File
	rec  *record.ChartUnilevel
}

// Len returns the number of parameters.
func (c UnilevelChart) Len() int {
	return c.rec.Parameters.Size.Count()
}

// Parameters iterates over the parameter declarations.
func (c UnilevelChart) Parameters() iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		for _, d := range c.file.Declarations().Slice(c.rec.Parameters).All() {
			if !yield(Declaration{file: c.file, index: d.Index}) {
				return
			}
		}
	}
}

// Constraint returns the requires-clause constraint, or the null
// expression.
func (c UnilevelChart) Constraint() Expression {
	return Expression{file: c.file, index: c.rec.Requires}
}

// MultilevelChart is a nested chart for member templates of templates.
type MultilevelChart struct {
	file *blob.File
	rec  *record.ChartMultilevel
}

// Len returns the number of levels.
func (c MultilevelChart) Len() int {
	return c.rec.Levels.Size.Count()
}

// Levels iterates over the chart's levels, outermost first.
func (c MultilevelChart) Levels() iter.Seq[UnilevelChart] {
	return func(yield func(UnilevelChart) bool) {
		for _, rec := range c.file.UnilevelCharts().Slice(c.rec.Levels).All() {
			if !yield(UnilevelChart{file: c.file, rec: rec}) {
				return
			}
		}
	}
}
