package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mykaarma/cem-portal-api/infrastructure/sso"
	"github.com/mykaarma/cem-portal-api/internal/api/handler/router"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/usecases/authenticating"
	"github.com/mykaarma/cem-portal-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idpMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<EntityDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata" entityID="https://idp.example.com/metadata">
  <IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol">
    <SingleLogoutService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect" Location="https://idp.example.com/slo"/>
    <SingleSignOnService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect" Location="https://idp.example.com/sso"/>
  </IDPSSODescriptor>
</EntityDescriptor>`

// testSSOProvider builds a provider against a stub IdP metadata endpoint.
func testSSOProvider(t *testing.T) *sso.Provider {
	metadataServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/samlmetadata+xml")
		w.Write([]byte(idpMetadata))
	}))
	t.Cleanup(metadataServer.Close)

	provider, err := sso.New(&config.Config{
		SAML: config.SAML{
			RootURL:        "https://cem.mykaarma.com",
			EntityID:       "https://cem.mykaarma.com",
			IDPMetadataURL: metadataServer.URL,
		},
	})
	require.NoError(t, err)

	return provider
}

func authRouter(t *testing.T, provider *sso.Provider) router.Router {
	cfg := &config.Config{
		Auth: config.Auth{Secret: "test-secret", SessionTTLHours: 8},
	}

	return router.New(
		router.WithRoutes(Authentication(provider, authenticating.NewService(cfg), cfg)...),
	)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie set", middleware.SessionCookieName)
	return nil
}

func TestSAMLLogin_RedirectsToIdP(t *testing.T) {
	rt := authRouter(t, testSSOProvider(t))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login/saml?return_to=/dashboard", nil))

	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get("Location")
	assert.Contains(t, location, "https://idp.example.com/sso")
	assert.Contains(t, location, "SAMLRequest=")
	assert.Contains(t, location, "RelayState=%2Fdashboard")
}

func TestSAMLLogin_Disabled(t *testing.T) {
	rt := authRouter(t, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login/saml", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogout_ClearsCookieAndRedirectsHome(t *testing.T) {
	rt := authRouter(t, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogoutCallback_InvalidResponseStillLandsHome(t *testing.T) {
	rt := authRouter(t, testSSOProvider(t))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout/callback?SAMLResponse=not-a-response", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogoutCallback_Disabled(t *testing.T) {
	rt := authRouter(t, nil)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout/callback", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSAMLMetadata_AdvertisesLogoutCallback(t *testing.T) {
	rt := authRouter(t, testSSOProvider(t))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/saml/metadata", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/samlmetadata+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "https://cem.mykaarma.com")
	assert.Contains(t, rec.Body.String(), "/logout/callback")
}

func TestGetMe(t *testing.T) {
	rt := authRouter(t, nil)

	t.Run("unauthenticated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Authenticated)
		assert.Nil(t, resp.User)
	})

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, sessionClaims()))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Authenticated)
		require.NotNil(t, resp.User)
		assert.Equal(t, "jordan.reyes@mykaarma.com", resp.User.Email)
	})
}

func TestSanitizeReturnTo(t *testing.T) {
	assert.Equal(t, "/dashboard", sanitizeReturnTo("/dashboard"))
	assert.Equal(t, "/", sanitizeReturnTo(""))
	assert.Equal(t, "/", sanitizeReturnTo("https://evil.example.com"))
	assert.Equal(t, "/", sanitizeReturnTo("//evil.example.com"))
}
