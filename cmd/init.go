package main

import (
	"github.com/rmohr/reductor/pkg/dataset"
	"github.com/spf13/cobra"
)

type InitOpts struct {
	csv       string
	decision  string
	separator string
	out       string
}

var initopts = InitOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a dataset file for a local CSV file",
		Long:  `Create a dataset.yaml file describing a local CSV file and its decision column`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dataset.NewDatasetInit(initopts.csv, initopts.decision, initopts.separator, initopts.out).Init()
		},
	}

	initCmd.Flags().StringVar(&initopts.csv, "csv", "", "CSV file with a header row")
	initCmd.Flags().StringVar(&initopts.decision, "decision", "", "name of the decision column, defaults to the last column")
	initCmd.Flags().StringVar(&initopts.separator, "separator", "", "field separator of the CSV file, defaults to a comma")
	initCmd.Flags().StringVarP(&initopts.out, "output", "o", "dataset.yaml", "where to write the dataset information")
	err := initCmd.MarkFlagRequired("csv")
	if err != nil {
		panic(err)
	}
	return initCmd
}
