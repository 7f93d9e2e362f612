package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/inventory/pkg/response"
)

// CORSOptions configures the CORS middleware. Exactly one origin is allowed
// and credentials are always permitted, so a wildcard is never emitted.
type CORSOptions struct {
	AllowedOrigin  string // e.g. "https://inventory.example.com"
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // seconds for preflight cache
}

// DefaultCORSOptions returns the methods and headers the product API needs.
func DefaultCORSOptions(origin string) CORSOptions {
	return CORSOptions{
		AllowedOrigin:  strings.TrimRight(origin, "/"),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}
}

// CORS adds Access-Control headers for the configured origin only. Requests
// from other origins get no CORS headers, and their preflights are refused.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			allowed := origin != "" && origin == opts.AllowedOrigin
			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
			if !preflight {
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				response.Forbidden(w)
				return
			}
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
			if opts.MaxAge > 0 {
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAge))
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
