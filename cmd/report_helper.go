package main

import (
	"github.com/rmohr/reductor/pkg/api/reductor"
	"github.com/rmohr/reductor/pkg/dataset"
	"github.com/rmohr/reductor/pkg/reduct"
	"github.com/rmohr/reductor/pkg/significance"
)

func toReport(table *dataset.Table, measure significance.Measure, result *reduct.Result) *reductor.Report {
	report := &reductor.Report{
		Dataset:      table.Name,
		Measure:      measure.Name(),
		Instances:    table.Size(),
		Attributes:   table.Names(result.Attributes),
		Core:         table.Names(result.Core),
		Candidate:    table.Names(result.Candidate),
		Reduct:       table.Names(result.Reduct),
		Significance: result.Significance,
	}
	for _, step := range result.Steps {
		report.Steps = append(report.Steps, reductor.Step{
			Attribute:    table.AttributeName(step.Attribute),
			Significance: step.Significance,
			Boundary:     step.Boundary,
		})
	}
	return report
}
