package template

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/rmohr/reductor/pkg/api/reductor"
)

// Render prints the outcome of a reduct search as a table.
func Render(writer io.Writer, report *reductor.Report) error {
	tabWriter := tabwriter.NewWriter(writer, 0, 8, 1, '\t', 0)
	if _, err := fmt.Fprintln(tabWriter, "Step\tAttribute\tSignificance\tBoundary"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintf(tabWriter, " core\t%s\t\t\n", list(report.Core)); err != nil {
		return fmt.Errorf("failed to write entry: %v", err)
	}
	for i, step := range report.Steps {
		if _, err := fmt.Fprintf(tabWriter, " %d\t%s\t%v\t%s\n", i+1, step.Attribute, step.Significance, humanize.Comma(int64(step.Boundary))); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if _, err := fmt.Fprintln(tabWriter, "\t\t\t\nSummary:\t\t\t"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	rows := [][2]string{
		{"Dataset", report.Dataset},
		{"Instances", humanize.Comma(int64(report.Instances))},
		{"Attributes", fmt.Sprintf("%d", len(report.Attributes))},
		{"Measure", report.Measure},
		{"Significance", fmt.Sprintf("%v", report.Significance)},
		{"Reduct", fmt.Sprintf("%s (%d attributes)", list(report.Reduct), len(report.Reduct))},
	}
	if report.Minimum != nil {
		rows = append(rows, [2]string{"Minimum", fmt.Sprintf("%s (%d attributes)", list(report.Minimum), len(report.Minimum))})
	}
	if report.Duration != "" {
		rows = append(rows, [2]string{"Duration", report.Duration})
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tabWriter, " %s:\t%s\t\t\n", row[0], row[1]); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if err := tabWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %v", err)
	}
	return nil
}

func list(names []string) string {
	if len(names) == 0 {
		return "{}"
	}
	return "{" + strings.Join(names, ", ") + "}"
}
