package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/postgres"
)

var migrateStatusOnly bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes",
	Long:  "Aplica las migraciones embebidas (goose) y muestra la versión de esquema resultante.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if !migrateStatusOnly {
			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}
			log.Info().Msg("migraciones aplicadas")
		}
		v, err := postgres.MigrationVersion(ctx, pool)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "versión de esquema: %d\n", v)
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatusOnly, "status", false, "solo muestra la versión actual")
}
