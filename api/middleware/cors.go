package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",          // local dev frontend
	"http://localhost:5173",          // vite dev server
	"https://roomvibe.vercel.app",     // deployed frontend
	"https://www.roomvibe.design",     // custom domain
}

// CORS returns middleware that applies the API's allowed origin policy.
// Credentials stay enabled so the session cookie travels on cross-origin
// requests from the frontend.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
