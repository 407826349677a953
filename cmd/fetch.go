package main

import (
	"github.com/rmohr/reductor/pkg/dataset"
	"github.com/spf13/cobra"
)

type FetchOpts struct {
	force bool
}

var fetchopts = &FetchOpts{}

func NewFetchCmd() *cobra.Command {

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download remote datasets",
		Long:  `Download the dataset referenced by the url of a dataset file into the cache directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.LoadDatasetFile(datasethelperopts.file)
			if err != nil {
				return err
			}
			cacheHelper := dataset.NewCacheHelper()
			if cacheHelper.Exists(ds) && !fetchopts.force {
				return nil
			}
			return dataset.NewRemoteFetcher(cacheHelper).Fetch(ds)
		},
	}

	addDatasetHelperFlags(fetchCmd)
	fetchCmd.Flags().BoolVarP(&fetchopts.force, "force", "f", false, "download again even if the dataset is cached")
	return fetchCmd
}
