package app

import (
	"net/http"

	"github.com/shashiranjanraj/inventory/pkg/metrics"
	"github.com/shashiranjanraj/inventory/pkg/middleware"
	"github.com/shashiranjanraj/inventory/pkg/reqid"
	"github.com/shashiranjanraj/inventory/pkg/response"
	"github.com/shashiranjanraj/inventory/pkg/router"
)

// Handler builds the router with the global middleware stack.
func (a *Application) Handler() http.Handler {
	r := router.New()

	// Outermost first:
	//  1. metrics   total latency, labelled by route pattern
	//  2. reqid     so everything below can log the id
	//  3. recovery  panics become a logged 500
	//  4. logger    one line per request
	//  5. CORS      single configured origin
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(a.cfg.AllowedOrigin)))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/metrics", "metrics", metrics.Handler())

	for _, fn := range a.routesFns {
		fn(r)
	}

	return r.Handler()
}
