package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/inventory/app/controllers"
	"github.com/shashiranjanraj/inventory/app/repositories"
	"github.com/shashiranjanraj/inventory/app/routes"
	"github.com/shashiranjanraj/inventory/pkg/app"
	"github.com/shashiranjanraj/inventory/pkg/database"
	"github.com/shashiranjanraj/inventory/pkg/logger"
	"github.com/shashiranjanraj/inventory/pkg/metrics"
	"github.com/shashiranjanraj/inventory/pkg/router"
)

// inventory serve: start the HTTP server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, db, err := boot(ctx)
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck

		repo := repositories.NewProductRepository(db, cfg.DBTimeout)
		products := controllers.NewProductController(repo)
		health := controllers.NewHealthController(repo)

		logger.Info("inventory api starting", "env", cfg.AppEnv, "port", cfg.Port, "allowed_origin", cfg.AllowedOrigin)
		return app.New(cfg).
			Routes(func(r *router.Router) { routes.RegisterAPI(r, products, health) }).
			Serve(ctx)
	},
}

// inventory route:list: print the named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		r.Get("/metrics", "metrics", metrics.Handler())
		routes.RegisterAPI(r, controllers.NewProductController(nil), controllers.NewHealthController(nil))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
