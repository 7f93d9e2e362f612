// Package app assembles the HTTP application: global middleware, the
// /metrics endpoint and whatever routes the caller registers.
//
//	app.New(cfg).
//	    Routes(func(r *router.Router) { routes.RegisterAPI(r, products, health) }).
//	    Serve(ctx)
package app

import (
	"context"

	"github.com/shashiranjanraj/inventory/config"
	"github.com/shashiranjanraj/inventory/internal/server"
	"github.com/shashiranjanraj/inventory/pkg/router"
)

// Application holds the configuration and route callbacks for one server.
type Application struct {
	cfg       *config.Config
	routesFns []func(*router.Router)
}

// New creates an Application for cfg.
func New(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// Routes adds a route-registration callback. Callbacks run in order when the
// handler is built.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// Serve listens on the configured port until ctx is cancelled, then drains
// in-flight requests for at most cfg.ShutdownTimeout.
func (a *Application) Serve(ctx context.Context) error {
	return server.Run(ctx, server.Options{
		Addr:            a.cfg.Addr(),
		Handler:         a.Handler(),
		ShutdownTimeout: a.cfg.ShutdownTimeout,
	})
}
