package main

import (
	"fmt"
	"os"

	"github.com/rmohr/reductor/cmd/template"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/partition"
	"github.com/rmohr/reductor/pkg/region"
	"github.com/spf13/cobra"
)

type partitionOpts struct {
	target string
}

var partitionopts = partitionOpts{}

func NewPartitionCmd() *cobra.Command {

	partitionCmd := &cobra.Command{
		Use:   "partition [ATTRIBUTE...]",
		Short: "prints the equivalence classes and their regions",
		Long: `partitions the dataset by the given attributes and labels every class as positive, negative or boundary.
With --target only classes deciding the target value are positive, otherwise every consistent class is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(cmd.Context())
			if err != nil {
				return err
			}
			attributes, err := selectAttributes(table, args)
			if err != nil {
				return err
			}
			target := region.AnyDecision
			if partitionopts.target != "" {
				target = api.Missing
				for code, v := range table.Values[api.DecisionIndex] {
					if v == partitionopts.target {
						target = code
					}
				}
				if target == api.Missing {
					return fmt.Errorf("decision value %q does not exist", partitionopts.target)
				}
			}
			classes, err := partition.EquivalenceClasses(table.Universe, attributes)
			if err != nil {
				return err
			}
			return template.RenderRegions(os.Stdout, table, attributes, region.Classify(table.Universe, classes, target))
		},
	}

	addDatasetHelperFlags(partitionCmd)
	partitionCmd.Flags().StringVarP(&partitionopts.target, "target", "t", "", "decision value whose consistent classes form the positive region")
	return partitionCmd
}
