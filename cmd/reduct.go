package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rmohr/reductor/cmd/template"
	"github.com/rmohr/reductor/pkg/reduct"
	"github.com/rmohr/reductor/pkg/sat"
	"github.com/rmohr/reductor/pkg/significance"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

type reductOpts struct {
	measure  string
	fastExit bool
	verify   bool
	exact    bool
	out      string
}

var reductopts = reductOpts{}

func NewReductCmd() *cobra.Command {

	reductCmd := &cobra.Command{
		Use:   "reduct [ATTRIBUTE...]",
		Short: "computes a reduct of the dataset",
		Long: `computes the core and then greedily adds the most significant attribute until the positive region of all attributes is reached.
A final inspection drops every attribute which turned out to be redundant. Without arguments all usable attributes are considered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(cmd.Context())
			if err != nil {
				return err
			}
			attributes, err := selectAttributes(table, args)
			if err != nil {
				return err
			}
			measure, err := significance.MeasureByName(reductopts.measure)
			if err != nil {
				return err
			}
			engine := reduct.NewEngine(table.Universe, reduct.Options{
				Measure:  measure,
				FastExit: reductopts.fastExit,
				Verify:   reductopts.verify,
			})
			logrus.Info("Searching reduct.")
			start := time.Now()
			result, err := engine.Reduct(attributes)
			if err != nil {
				return err
			}
			report := toReport(table, measure, result)
			report.Duration = time.Since(start).Round(time.Microsecond).String()

			if reductopts.exact {
				logrus.Info("Solving for a minimum reduct.")
				model, err := sat.NewLoader().Load(table.Universe, attributes)
				if err != nil {
					return err
				}
				minimum, err := sat.Resolve(model)
				if err != nil {
					return err
				}
				report.Minimum = table.Names(minimum)
			}

			if err := template.Render(os.Stdout, report); err != nil {
				return err
			}
			if reductopts.out != "" {
				data, err := yaml.Marshal(report)
				if err != nil {
					return fmt.Errorf("failed to marshal report: %v", err)
				}
				if err := os.WriteFile(reductopts.out, data, 0666); err != nil {
					return fmt.Errorf("failed to write report: %v", err)
				}
				logrus.Infof("Wrote report to %s.", reductopts.out)
			}
			return nil
		},
	}

	addDatasetHelperFlags(reductCmd)
	reductCmd.Flags().StringVarP(&reductopts.measure, "measure", "m", significance.PositiveRegion.Name(), "significance measure (positive, dependency)")
	reductCmd.Flags().BoolVar(&reductopts.fastExit, "fast-exit", false, "stop testing an attribute for redundancy as soon as the boundary grows")
	reductCmd.Flags().BoolVar(&reductopts.verify, "verify", false, "cross-check every incremental step against a full partition")
	reductCmd.Flags().BoolVar(&reductopts.exact, "exact", false, "additionally compute a minimum reduct with the SAT solver")
	reductCmd.Flags().StringVarP(&reductopts.out, "output", "o", "", "where to write the report as yaml")
	return reductCmd
}
