package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/inventory/pkg/middleware"
)

const origin = "https://inventory.example.com"

func corsHandler() (http.Handler, *bool) {
	reached := new(bool)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*reached = true
		w.WriteHeader(http.StatusOK)
	})
	return middleware.CORS(middleware.DefaultCORSOptions(origin + "/"))(next), reached
}

func TestCORS_AllowedOrigin(t *testing.T) {
	h, reached := corsHandler()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.True(t, *reached)
	assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

func TestCORS_OtherOriginGetsNoHeaders(t *testing.T) {
	h, reached := corsHandler()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.True(t, *reached, "simple requests still reach the handler; the browser enforces")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_NeverWildcard(t *testing.T) {
	h, _ := corsHandler()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "*")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	h, reached := corsHandler()
	req := httptest.NewRequest(http.MethodOptions, "/products/1", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	assert.Equal(t, "300", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_PreflightFromOtherOriginIsForbidden(t *testing.T) {
	h, reached := corsHandler()
	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}
