package template

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/dataset"
	"github.com/rmohr/reductor/pkg/region"
)

// RenderRegions prints every equivalence class with its key, decision summary
// and region, followed by the region sizes.
func RenderRegions(writer io.Writer, table *dataset.Table, attributes api.AttributeSet, regions *region.Regions) error {
	tabWriter := tabwriter.NewWriter(writer, 0, 8, 1, '\t', 0)
	if _, err := fmt.Fprintf(tabWriter, "Class (%s)\tSize\tDecision\tRegion\n", strings.Join(table.Names(attributes), ", ")); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	sizes := map[region.Region]int{}
	for _, l := range regions.Classes {
		key := make([]string, 0, len(attributes))
		for _, a := range attributes {
			key = append(key, table.Label(a, table.Value(l.Class[0], a)))
		}
		decision := "*"
		if !l.Decision.IsBoundary() {
			decision = table.Label(api.DecisionIndex, l.Decision.Value)
		}
		sizes[l.Region] += l.Class.Size()
		if _, err := fmt.Fprintf(tabWriter, " (%s)\t%s\t%s\t%s\n", strings.Join(key, ", "), humanize.Comma(int64(l.Class.Size())), decision, l.Region); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if _, err := fmt.Fprintln(tabWriter, "\t\t\t\nSummary:\t\t\t"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	for _, r := range []region.Region{region.Positive, region.Negative, region.Boundary} {
		if _, err := fmt.Fprintf(tabWriter, " %s:\t%s\t\t\n", r, humanize.Comma(int64(sizes[r]))); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if err := tabWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %v", err)
	}
	return nil
}
