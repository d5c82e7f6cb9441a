package authenticating

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidToken  = errors.New("invalid session token")
	ErrExpiredToken  = errors.New("expired session token")
	ErrMissingSecret = errors.New("auth secret not configured")
	ErrMissingEmail  = errors.New("identity provider asserted no email")
)
