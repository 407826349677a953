package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "reductor",
	Short: "reductor computes attribute reducts of decision tables",
	Long:  `The tool finds minimal attribute subsets of a decision table which keep the positive region of the full attribute set, following rough set theory`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewFetchCmd())
	rootCmd.AddCommand(NewReductCmd())
	rootCmd.AddCommand(NewCoreCmd())
	rootCmd.AddCommand(NewScoreCmd())
	rootCmd.AddCommand(NewPartitionCmd())
	rootCmd.AddCommand(NewExactCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
