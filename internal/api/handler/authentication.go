package handler

import (
	"net/http"
	"strings"

	"github.com/mykaarma/cem-portal-api/infrastructure/sso"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/usecases/authenticating"
	"github.com/mykaarma/cem-portal-api/pkg/apiErrors"
	"github.com/mykaarma/cem-portal-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type MeResponse struct {
	Authenticated bool    `json:"authenticated"`
	User          *MeUser `json:"user,omitempty"`
}

type MeUser struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	DealerUUID string `json:"dealerUuid"`
}

// SAMLLogin redirects the browser to the IdP to start sign-on.
func SAMLLogin(provider *sso.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			apiErrors.WriteError(w, apiErrors.ErrSSODisabled, "Single sign-on is not configured", nil)
			return
		}

		loginURL, err := provider.LoginURL(sanitizeReturnTo(r.URL.Query().Get("return_to")))
		if err != nil {
			logrus.WithError(err).Error("failed to build SAML login redirect")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error starting sign-on", nil)
			return
		}

		http.Redirect(w, r, loginURL, http.StatusFound)
	}
}

// SAMLCallback consumes the IdP assertion, mints a session token and sets the
// session cookie before sending the user back into the portal.
func SAMLCallback(provider *sso.Provider, service authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			apiErrors.WriteError(w, apiErrors.ErrSSODisabled, "Single sign-on is not configured", nil)
			return
		}

		user, err := provider.ParseCallback(r)
		if err != nil {
			logrus.WithError(err).Warn("SAML assertion rejected")
			apiErrors.WriteError(w, apiErrors.ErrSSOFailed, "Error when processing SAML response", nil)
			return
		}

		token, err := service.IssueSession(user)
		if err != nil {
			logrus.WithError(err).Error("failed to issue session after SAML callback")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error creating session", nil)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Secure:   cfg.App.Env == "production",
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, sanitizeReturnTo(r.FormValue("RelayState")), http.StatusFound)
	}
}

// Logout clears the session cookie and, when possible, sends the browser to
// the IdP single-logout endpoint.
func Logout(provider *sso.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)

		if provider != nil {
			if claims, ok := middleware.ClaimsFromRequest(r); ok {
				logoutURL, err := provider.LogoutURL(claims.NameID)
				if err != nil {
					logrus.WithError(err).Warn("failed to build single-logout redirect")
				} else if logoutURL != "" {
					http.Redirect(w, r, logoutURL, http.StatusFound)
					return
				}
			}
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// LogoutCallback terminates the single-logout flow: the IdP sends the browser
// back here with its LogoutResponse after Logout redirected to the SLO
// endpoint. The local session cookie is already cleared by then, so a bad
// response is logged but still lands the user back on the portal.
func LogoutCallback(provider *sso.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)

		if provider != nil {
			if err := provider.ValidateLogoutCallback(r); err != nil {
				logrus.WithError(err).Warn("invalid single-logout response from IdP")
			}
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// SAMLMetadata serves the SP metadata document consumed by the IdP.
func SAMLMetadata(provider *sso.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			apiErrors.WriteError(w, apiErrors.ErrSSODisabled, "Single sign-on is not configured", nil)
			return
		}

		metadata, err := provider.Metadata()
		if err != nil {
			logrus.WithError(err).Error("failed to render SP metadata")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error rendering metadata", nil)
			return
		}

		w.Header().Set("Content-Type", "application/samlmetadata+xml")
		w.Write(metadata)
	}
}

// GetMe reports the signed-in user. Unauthenticated callers get a 200 with
// authenticated=false so the frontend can branch without error handling.
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims, ok := middleware.ClaimsFromRequest(r)
		if !ok {
			json.NewEncoder(w).Encode(MeResponse{Authenticated: false})
			return
		}

		json.NewEncoder(w).Encode(MeResponse{
			Authenticated: true,
			User: &MeUser{
				Email:      claims.Email,
				FirstName:  claims.FirstName,
				LastName:   claims.LastName,
				DealerUUID: claims.DealerUUID,
			},
		})
	}
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// sanitizeReturnTo keeps post-login redirects inside the portal.
func sanitizeReturnTo(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}
