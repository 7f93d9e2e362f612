package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	store := newFakeStore()
	store.failErr = errors.New("must not be called")

	rec := do(t, newHandler(store), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Inventory API is running"}`, rec.Body.String())
	assert.Zero(t, store.Calls())
}

func TestHealthReady(t *testing.T) {
	store := newFakeStore()
	h := newHandler(store)

	rec := do(t, h, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	store.pingErr = errors.New("connection refused")
	rec = do(t, h, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decode(t, rec)["status"])
}
