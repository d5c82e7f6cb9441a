package vitallyclient

import (
	"net/http"
	"time"

	vitallydomain "github.com/mykaarma/cem-portal-api/infrastructure/integrator/vitally/domain"
	"github.com/mykaarma/cem-portal-api/internal/config"
)

type Client interface {
	GetAccount(uuid string) (*vitallydomain.Account, error)
	GetAccountRaw(uuid string) ([]byte, error)
}

type VitallyClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient creates a Vitally REST API client. Calls are short single reads,
// so the timeout is deliberately tight and there is no retry.
func NewClient(cfg *config.Config) Client {
	return &VitallyClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		config: cfg,
	}
}
