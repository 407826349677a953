package main

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/dataset"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type datasetHelperOpts struct {
	file string
}

var datasethelperopts = datasetHelperOpts{}

func addDatasetHelperFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&datasethelperopts.file, "dataset", "d", "dataset.yaml", "dataset description file")
	dataset.AddCacheHelperFlags(cmd)
}

func loadTable(ctx context.Context) (*dataset.Table, error) {
	ds, err := dataset.LoadDatasetFile(datasethelperopts.file)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loading dataset %s.", ds.Name)
	table, err := dataset.NewCSVLoader(ds, dataset.NewCacheHelper()).Load(ctx)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded %s instances with %d attributes.", humanize.Comma(int64(table.Size())), table.ConditionalCount())
	return table, nil
}

// selectAttributes maps the given names to attributes. Without names all
// usable attributes are selected.
func selectAttributes(table *dataset.Table, names []string) (api.AttributeSet, error) {
	if len(names) == 0 {
		return dataset.UsableAttributes(table.Universe, nil), nil
	}
	return table.Lookup(names)
}
