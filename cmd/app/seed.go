package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"astrasafe/internal/services"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo place directory into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var seeder services.SeedServiceInterface
			app := fx.New(coreModules(), fx.Populate(&seeder))

			ctx := cmd.Context()
			startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
			defer cancel()
			if err := app.Start(startCtx); err != nil {
				return err
			}
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
				defer cancel()
				_ = app.Stop(stopCtx)
			}()

			inserted, err := seeder.Seed(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d places\n", inserted)
			return nil
		},
	}
}
