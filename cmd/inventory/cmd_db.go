package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/inventory/app/models"
	"github.com/shashiranjanraj/inventory/config"
	"github.com/shashiranjanraj/inventory/database/seeders"
	"github.com/shashiranjanraj/inventory/pkg/database"
	"github.com/shashiranjanraj/inventory/pkg/logger"
)

// boot loads config, installs the logger and opens the pool. Any failure is
// fatal to the command.
func boot(ctx context.Context) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(os.Stdout, cfg.IsProduction())

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

// inventory migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the products table and its indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck

		fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
		return database.Migrate(cmd.Context(), db, &models.Product{})
	},
}

// inventory seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo products (existing SKUs are skipped)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck

		fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
		return seeders.RunAll(cmd.Context(), db, cmd.OutOrStdout())
	},
}
