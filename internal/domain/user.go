package domain

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UserIdentity is the portal user as asserted by the identity provider.
type UserIdentity struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	DealerUUID string `json:"dealerUuid"`
	NameID     string `json:"-"`
}

// FullName returns the display name used on coaching reports.
func (u UserIdentity) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

type Claims struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	DealerUUID string `json:"dealerUuid,omitempty"`
	NameID     string `json:"nameId,omitempty"`
	jwt.RegisteredClaims
}

// Identity rebuilds the asserted user from session claims.
func (c *Claims) Identity() UserIdentity {
	return UserIdentity{
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		DealerUUID: c.DealerUUID,
		NameID:     c.NameID,
	}
}
