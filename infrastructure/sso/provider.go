package sso

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/url"
	"time"

	"github.com/crewjam/saml"
	"github.com/crewjam/saml/samlsp"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Provider wraps the SAML service provider for the dealer-portal IdP.
// Assertion validation and signature checking are entirely delegated to
// crewjam/saml; this layer only maps assertions onto portal identities.
type Provider struct {
	cfg *config.Config
	sp  *saml.ServiceProvider
}

// New builds the service provider and fetches the IdP metadata once at
// startup. The SP itself is unsigned, matching how the portal is registered
// with the accounts IdP.
func New(cfg *config.Config) (*Provider, error) {
	rootURL, err := url.Parse(cfg.SAML.RootURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing SAML root URL")
	}

	metadataURL, err := url.Parse(cfg.SAML.IDPMetadataURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing IdP metadata URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idpMetadata, err := samlsp.FetchMetadata(ctx, &http.Client{Timeout: 10 * time.Second}, *metadataURL)
	if err != nil {
		return nil, errors.Wrap(err, "fetching IdP metadata")
	}

	sp := &saml.ServiceProvider{
		EntityID:          cfg.SAML.EntityID,
		AcsURL:            *rootURL.JoinPath("/login/saml/callback"),
		SloURL:            *rootURL.JoinPath("/logout/callback"),
		MetadataURL:       *rootURL.JoinPath("/saml/metadata"),
		IDPMetadata:       idpMetadata,
		AllowIDPInitiated: true,
		AuthnNameIDFormat: saml.TransientNameIDFormat,
	}

	logrus.WithFields(logrus.Fields{
		"idp_entity_id": idpMetadata.EntityID,
		"sp_entity_id":  sp.EntityID,
	}).Info("SAML service provider initialized")

	return &Provider{cfg: cfg, sp: sp}, nil
}

// LoginURL builds the IdP redirect starting the sign-on flow.
func (p *Provider) LoginURL(relayState string) (string, error) {
	idpURL := p.sp.GetSSOBindingLocation(saml.HTTPRedirectBinding)

	authnRequest, err := p.sp.MakeAuthenticationRequest(idpURL, saml.HTTPRedirectBinding, saml.HTTPPostBinding)
	if err != nil {
		return "", errors.Wrap(err, "building authentication request")
	}

	redirectURL, err := authnRequest.Redirect(relayState, p.sp)
	if err != nil {
		return "", errors.Wrap(err, "building IdP redirect")
	}

	return redirectURL.String(), nil
}

// ParseCallback validates the posted assertion and extracts the portal user.
func (p *Provider) ParseCallback(r *http.Request) (*domain.UserIdentity, error) {
	assertion, err := p.sp.ParseResponse(r, nil)
	if err != nil {
		return nil, errors.Wrap(err, "processing SAML response")
	}

	user := &domain.UserIdentity{
		Email:      attributeValue(assertion, "email"),
		FirstName:  attributeValue(assertion, "firstName"),
		LastName:   attributeValue(assertion, "lastName"),
		DealerUUID: attributeValue(assertion, "dealerUuid"),
	}

	if assertion.Subject != nil && assertion.Subject.NameID != nil {
		user.NameID = assertion.Subject.NameID.Value
	}

	return user, nil
}

// LogoutURL builds the single-logout redirect. Empty when the IdP does not
// advertise an SLO endpoint or the session carries no NameID.
func (p *Provider) LogoutURL(nameID string) (string, error) {
	if nameID == "" || p.sp.GetSLOBindingLocation(saml.HTTPRedirectBinding) == "" {
		return "", nil
	}

	logoutURL, err := p.sp.MakeRedirectLogoutRequest(nameID, "")
	if err != nil {
		return "", errors.Wrap(err, "building logout request")
	}

	return logoutURL.String(), nil
}

// ValidateLogoutCallback checks the LogoutResponse the IdP sends back after a
// single-logout request.
func (p *Provider) ValidateLogoutCallback(r *http.Request) error {
	if err := p.sp.ValidateLogoutResponseRequest(r); err != nil {
		return errors.Wrap(err, "validating logout response")
	}
	return nil
}

// Metadata renders the SP metadata document served to the IdP.
func (p *Provider) Metadata() ([]byte, error) {
	return xml.MarshalIndent(p.sp.Metadata(), "", "  ")
}

func attributeValue(assertion *saml.Assertion, name string) string {
	for _, statement := range assertion.AttributeStatements {
		for _, attribute := range statement.Attributes {
			if attribute.Name != name && attribute.FriendlyName != name {
				continue
			}
			for _, value := range attribute.Values {
				if value.Value != "" {
					return value.Value
				}
			}
		}
	}
	return ""
}
