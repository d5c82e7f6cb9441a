package middleware

import (
	"net/http"
)

// frameAncestors allows the portal to be embedded in the mykaarma dealer
// dashboard and nowhere else.
const frameAncestors = "frame-ancestors 'self' https://*.mykaarma.com https://*.mykaarma.com:*;"

// SecurityHeaders sets the response headers required to run inside the dealer
// dashboard iframe.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Security-Policy", frameAncestors)
			w.Header().Del("X-Frame-Options")

			next.ServeHTTP(w, r)
		})
	}
}
