package vitallydomain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingToken indicates the Vitally API token is not configured.
	ErrMissingToken = errors.New("vitally API token not configured")

	// ErrUnauthorized indicates the upstream rejected the configured token.
	ErrUnauthorized = errors.New("vitally API token rejected")

	// ErrNotFound indicates no Vitally account matches the requested UUID.
	ErrNotFound = errors.New("vitally account not found")
)

// UpstreamError carries a non-2xx upstream status that has no dedicated
// sentinel, so the proxy endpoint can forward it.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("vitally request failed with status: %s", e.Status)
}
