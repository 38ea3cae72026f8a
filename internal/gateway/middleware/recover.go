package middleware

import (
	"log"
	"net/http"
)

// RecoverMiddleware turns panics into plain 500 responses. Whatever blew up
// is logged; the client only ever sees the generic internal-error body.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[RecoverMiddleware] Panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				http.Error(w, `{"error": "internal error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
