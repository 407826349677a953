package main

import (
	"fmt"

	"github.com/rmohr/reductor/pkg/reduct"
	"github.com/rmohr/reductor/pkg/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewExactCmd() *cobra.Command {

	exactCmd := &cobra.Command{
		Use:   "exact [ATTRIBUTE...]",
		Short: "computes a minimum reduct with a SAT solver",
		Long: `encodes the discernibility function of the dataset and solves for a reduct of minimum size.
The greedy reduct is checked against the same function. Only feasible for small datasets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(cmd.Context())
			if err != nil {
				return err
			}
			attributes, err := selectAttributes(table, args)
			if err != nil {
				return err
			}
			logrus.Info("Loading discernibility function.")
			model, err := sat.NewLoader().Load(table.Universe, attributes)
			if err != nil {
				return err
			}
			logrus.Info("Solving.")
			minimum, err := sat.Resolve(model)
			if err != nil {
				return err
			}
			greedy, err := reduct.Reduct(table.Universe, attributes)
			if err != nil {
				return err
			}
			if !model.Satisfied(greedy) {
				return fmt.Errorf("greedy reduct %v does not satisfy the discernibility function", table.Names(greedy))
			}
			fmt.Printf("minimum:\t%v (%d)\n", table.Names(minimum), len(minimum))
			fmt.Printf("greedy:\t%v (%d)\n", table.Names(greedy), len(greedy))
			return nil
		},
	}

	addDatasetHelperFlags(exactCmd)
	return exactCmd
}
