package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/internal/infrastructure/postgres"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/config"
	"github.com/KIMHYUNJUN95/return-linen-management-main-sub000/pkg/logger"
)

var (
	logLevel string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "harutl",
	Short:         "Herramientas de operación de HARU",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		cfg = c
		level := c.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		// Los logs van a stderr para no mezclarse con la salida de reportes.
		log = logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()}).Component("harutl")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "nivel de log (trace, debug, info, warn, error)")
	rootCmd.AddCommand(migrateCmd, reportCmd, normalizeCmd)
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, nil
}
