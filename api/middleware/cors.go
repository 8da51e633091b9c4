package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware for the JSON API. The API is open to any
// origin; browser pages are served same-origin and never hit this.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Idempotency-Key", "X-Requested-With"},
		MaxAge:         300,
	}).Handler
}
