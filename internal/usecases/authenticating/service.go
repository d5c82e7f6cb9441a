package authenticating

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/domain"
	"github.com/mykaarma/cem-portal-api/pkg/utils"
	"github.com/pkg/errors"
)

// Authenticator issues and validates portal session tokens. There is no local
// user store: identity comes entirely from the SAML assertion, and the session
// is a signed claim set.
type Authenticator interface {
	IssueSession(user *domain.UserIdentity) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// IssueSession mints a signed session token for an asserted user.
func (s *Service) IssueSession(user *domain.UserIdentity) (string, error) {
	if s.cfg.Auth.Secret == "" {
		return "", ErrMissingSecret
	}

	if user.Email == "" {
		return "", ErrMissingEmail
	}

	tokenID, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "generating session token ID")
	}

	now := time.Now()
	ttl := time.Duration(s.cfg.Auth.SessionTTLHours) * time.Hour

	claims := &domain.Claims{
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		DealerUUID: user.DealerUUID,
		NameID:     user.NameID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", errors.Wrap(err, "signing session token")
	}

	return signed, nil
}

// ValidateToken parses and verifies a session token.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}

	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
