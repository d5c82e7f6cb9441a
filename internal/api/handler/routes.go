package handler

import (
	"net/http"

	"github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally"
	"github.com/mykaarma/cem-portal-api/infrastructure/sso"
	"github.com/mykaarma/cem-portal-api/internal/api/handler/router"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/usecases/authenticating"
	"github.com/mykaarma/cem-portal-api/internal/usecases/coaching"
	"github.com/mykaarma/cem-portal-api/pkg/middleware"
)

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cfg),
		},
	}
}

// Authentication wires the SAML sign-on flow and the session probe. All of
// these are public: the callback creates the session, and /api/auth/me
// answers unauthenticated callers with authenticated=false.
func Authentication(provider *sso.Provider, service authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/login/saml",
			Method:  http.MethodGet,
			Handler: SAMLLogin(provider),
		},
		{
			Path:    "/login/saml/callback",
			Method:  http.MethodPost,
			Handler: SAMLCallback(provider, service, cfg),
		},
		{
			Path:    "/logout",
			Method:  http.MethodGet,
			Handler: Logout(provider),
		},
		{
			Path:    "/logout/callback",
			Method:  http.MethodGet,
			Handler: LogoutCallback(provider),
		},
		{
			Path:    "/logout/callback",
			Method:  http.MethodPost,
			Handler: LogoutCallback(provider),
		},
		{
			Path:    "/saml/metadata",
			Method:  http.MethodGet,
			Handler: SAMLMetadata(provider),
		},
		{
			Path:    "/api/auth/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func VitallyProxy(service vitally.Integrator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/vitally/accounts/:uuid",
			Method:  http.MethodGet,
			Handler: GetVitallyAccount(service, cfg),
		},
	}
}

func Coach(service coaching.Coacher) []router.Route {
	return []router.Route{
		{
			Path:        "/api/coach/review",
			Method:      http.MethodPost,
			Handler:     GenerateReview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
	}
}
