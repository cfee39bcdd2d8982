package main

import (
	"github.com/spf13/cobra"

	"github.com/you-humble/knowledge-archive/internal/app"
	"github.com/you-humble/knowledge-archive/platform/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := app.New(ctx)
			if err != nil {
				logger.Error(ctx,
					"❌ Failed to create an application",
					logger.ErrorF(err),
				)
				return err
			}

			if err := a.Run(ctx); err != nil {
				logger.Error(ctx, "❌ Archive server error", logger.ErrorF(err))
				return err
			}
			return nil
		},
	}
}
