package routes

import (
	"strconv"

	"github.com/shashiranjanraj/inventory/app/controllers"
	"github.com/shashiranjanraj/inventory/pkg/router"
)

// RegisterAPI mounts the health checks and the product endpoints.
func RegisterAPI(r *router.Router, products *controllers.ProductController, health *controllers.HealthController) {
	r.Get("/health", "health", health.Live)
	r.Get("/health/ready", "health.ready", health.Ready)

	api := r.Group("/products")
	api.Get("/", "products.index", products.Index)
	api.Post("/", "products.store", products.Store)
	api.Get("/{id}", "products.show", products.Show)
	api.Put("/{id}", "products.update", products.Update)
	api.Delete("/{id}", "products.destroy", products.Destroy)

	products.LocateWith(func(id int64) (string, error) {
		return r.URL("products.show", map[string]string{"id": strconv.FormatInt(id, 10)})
	})
}
