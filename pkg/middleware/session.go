package middleware

import (
	"net/http"

	"github.com/mykaarma/cem-portal-api/internal/domain"
	"github.com/mykaarma/cem-portal-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RequireSession restricts a route to authenticated portal users.
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warnf("unauthenticated access attempt: %s %s", r.Method, r.URL.Path)
				apiErrors.WriteError(w, apiErrors.ErrNotAuthorized, "Sign-in required", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromRequest returns the session claims attached by Session, if any.
func ClaimsFromRequest(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
