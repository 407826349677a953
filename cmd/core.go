package main

import (
	"fmt"

	"github.com/rmohr/reductor/pkg/reduct"
	"github.com/spf13/cobra"
)

func NewCoreCmd() *cobra.Command {

	coreCmd := &cobra.Command{
		Use:   "core [ATTRIBUTE...]",
		Short: "prints the indispensable attributes of the dataset",
		Long:  `prints every attribute whose removal enlarges the boundary region`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(cmd.Context())
			if err != nil {
				return err
			}
			attributes, err := selectAttributes(table, args)
			if err != nil {
				return err
			}
			core, err := reduct.Core(table.Universe, attributes)
			if err != nil {
				return err
			}
			for _, name := range table.Names(core) {
				fmt.Println(name)
			}
			return nil
		},
	}

	addDatasetHelperFlags(coreCmd)
	return coreCmd
}
