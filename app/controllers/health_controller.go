package controllers

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/inventory/pkg/logger"
	"github.com/shashiranjanraj/inventory/pkg/response"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

type healthBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Live handles GET /health. It never touches the database.
func (c *HealthController) Live(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, healthBody{Status: "ok", Message: "Inventory API is running"})
}

// Ready handles GET /health/ready.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	if err := c.db.Ping(r.Context()); err != nil {
		logger.WithCtx(r.Context()).Warn("readiness check failed", "error", err)
		response.JSON(w, http.StatusServiceUnavailable, healthBody{Status: "unavailable", Message: "Database is unreachable"})
		return
	}
	response.Success(w, healthBody{Status: "ok", Message: "Database is reachable"})
}
