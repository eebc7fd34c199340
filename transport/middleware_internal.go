package transport

import (
	"crypto/subtle"
	"net/http"
)

// InternalMiddleware guards service-to-service routes with a static API key.
// Callers must also identify themselves via X-Internal-Service.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := []byte(r.Header.Get("Authorization"))
			if r.Header.Get("X-Internal-Service") == "" ||
				subtle.ConstantTimeCompare(auth, expected) != 1 {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
