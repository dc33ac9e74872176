package middleware

import "net/http"

// NoStore disables caching on responses that reflect auth state, so a
// back-button after logout never replays a signed-in page.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
