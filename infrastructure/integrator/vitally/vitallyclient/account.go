package vitallyclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	vitallydomain "github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally/domain"
	"github.com/mykaarma/cem-portal-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetAccountRaw fetches one account and returns the upstream JSON body as-is.
// Upstream statuses are mapped to typed errors so callers can distinguish an
// invalid token from an unknown account.
func (c *VitallyClient) GetAccountRaw(uuid string) ([]byte, error) {
	if c.config.Vitally.APIToken == "" {
		return nil, vitallydomain.ErrMissingToken
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Vitally.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing vitally base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, "accounts", uuid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating vitally request")
	}

	req.Header.Set("Authorization", fmt.Sprintf("%s %s", authScheme(c.config.Vitally.AuthType), c.config.Vitally.APIToken))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "executing vitally request")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, vitallydomain.ErrUnauthorized
	case http.StatusNotFound:
		return nil, vitallydomain.ErrNotFound
	default:
		return nil, &vitallydomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading vitally response")
	}

	logrus.WithField("account_uuid", uuid).Debug("vitally account fetched")
	logrus.Trace(utils.PrettyJson(body))

	return body, nil
}

// GetAccount fetches one account and decodes it into the loose Account shape.
func (c *VitallyClient) GetAccount(uuid string) (*vitallydomain.Account, error) {
	body, err := c.GetAccountRaw(uuid)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errors.Wrap(err, "decoding vitally response")
	}

	account := &vitallydomain.Account{Fields: fields}
	if name, ok := fields["name"].(string); ok {
		account.Name = strings.TrimSpace(name)
	}

	return account, nil
}

// authScheme maps the configured auth type to the Authorization scheme.
// Vitally tenants use Basic by default; some are provisioned with Bearer.
func authScheme(authType string) string {
	if strings.EqualFold(authType, "bearer") {
		return "Bearer"
	}
	return "Basic"
}
