package main

import (
	"fmt"
	"strings"

	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/reduct"
	"github.com/rmohr/reductor/pkg/significance"
	"github.com/spf13/cobra"
)

type scoreOpts struct {
	measure string
	workers int
}

var scoreopts = scoreOpts{}

func NewScoreCmd() *cobra.Command {

	scoreCmd := &cobra.Command{
		Use:   "score SUBSET...",
		Short: "prints the significance of attribute subsets",
		Long: `prints the significance of every given attribute subset. Subsets are comma separated attribute names or indices,
an empty string denotes the empty set. The subsets are scored in parallel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(cmd.Context())
			if err != nil {
				return err
			}
			measure, err := significance.MeasureByName(scoreopts.measure)
			if err != nil {
				return err
			}
			candidates := make([]api.AttributeSet, 0, len(args))
			for _, arg := range args {
				var names []string
				if arg != "" {
					names = strings.Split(arg, ",")
				}
				attributes, err := table.Lookup(names)
				if err != nil {
					return err
				}
				candidates = append(candidates, attributes)
			}
			scores, err := reduct.ScoreAll(cmd.Context(), table.Universe, candidates, measure, scoreopts.workers)
			if err != nil {
				return err
			}
			for i, s := range scores {
				fmt.Printf("{%s}\t%v\n", strings.Join(table.Names(candidates[i]), ","), s)
			}
			return nil
		},
	}

	addDatasetHelperFlags(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreopts.measure, "measure", "m", significance.PositiveRegion.Name(), "significance measure (positive, dependency)")
	scoreCmd.Flags().IntVarP(&scoreopts.workers, "workers", "w", 0, "number of subsets scored in parallel, defaults to the number of CPUs")
	return scoreCmd
}
