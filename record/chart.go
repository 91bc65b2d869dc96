package record

import "github.com/arloliu/ifc/format"

// ChartUnilevel is a single-level template parameter chart: a run of
// parameter declarations inside the "decl" partition plus an optional
// requires-clause constraint.
type ChartUnilevel struct {
	Parameters format.Sequence
	Requires   format.ExprIndex
}

func (ChartUnilevel) PartitionName() string { return "chart.unilevel" }

// ChartMultilevel is a multi-level chart for member templates of templates:
// a run of unilevel charts inside the "chart.unilevel" partition.
type ChartMultilevel struct {
	Levels format.Sequence
}

func (ChartMultilevel) PartitionName() string { return "chart.multilevel" }
