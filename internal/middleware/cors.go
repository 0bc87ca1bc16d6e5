package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// DevFrontendOrigin is the local frontend dev server, always allowed.
const DevFrontendOrigin = "http://localhost:5173"

// CORS builds the cross-origin policy: requests without an Origin header
// (curl, server-to-server) pass untouched, browsers are limited to the
// configured frontend plus the local dev server.
func CORS(frontendURL string) *cors.Cors {
	origins := []string{DevFrontendOrigin}
	if frontendURL != "" {
		origins = append(origins, frontendURL)
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
}
