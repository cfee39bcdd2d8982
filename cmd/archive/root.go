package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "archive",
		Short: "Knowledge archive for vehicle parts",
		Long: `archive serves the vehicle parts catalog over HTTP and answers
catalog questions from the command line.

The dataset comes from CATALOG_SOURCE (embedded, file or mongo).`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newRoutesCmd(),
		newCrumbsCmd(),
		newSearchCmd(),
	)

	return root
}
