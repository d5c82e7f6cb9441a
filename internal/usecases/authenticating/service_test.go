package authenticating

import (
	"testing"

	"github.com/mykaarma/cem-portal-api/internal/config"
	"github.com/mykaarma/cem-portal-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttlHours int) *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:          "test-secret",
			SessionTTLHours: ttlHours,
		},
	}
}

func testIdentity() *domain.UserIdentity {
	return &domain.UserIdentity{
		Email:      "jordan.reyes@mykaarma.com",
		FirstName:  "Jordan",
		LastName:   "Reyes",
		DealerUUID: "dealer-42",
		NameID:     "transient-name-id",
	}
}

func TestIssueAndValidateSession(t *testing.T) {
	service := NewService(testConfig(8))

	token, err := service.IssueSession(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "jordan.reyes@mykaarma.com", claims.Email)
	assert.Equal(t, "Jordan", claims.FirstName)
	assert.Equal(t, "Reyes", claims.LastName)
	assert.Equal(t, "dealer-42", claims.DealerUUID)
	assert.Equal(t, "transient-name-id", claims.NameID)
	assert.Equal(t, "Jordan Reyes", claims.Identity().FullName())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Tampered(t *testing.T) {
	service := NewService(testConfig(8))

	token, err := service.IssueSession(testIdentity())
	require.NoError(t, err)

	_, err = service.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService(testConfig(8))

	token, err := issuer.IssueSession(testIdentity())
	require.NoError(t, err)

	verifier := NewService(&config.Config{
		Auth: config.Auth{Secret: "another-secret", SessionTTLHours: 8},
	})

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService(testConfig(-1))

	token, err := service.IssueSession(testIdentity())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestIssueSession_MissingSecret(t *testing.T) {
	service := NewService(&config.Config{})

	_, err := service.IssueSession(testIdentity())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueSession_MissingEmail(t *testing.T) {
	service := NewService(testConfig(8))

	_, err := service.IssueSession(&domain.UserIdentity{})
	assert.ErrorIs(t, err, ErrMissingEmail)
}

func TestFullName_FallsBackToEmail(t *testing.T) {
	identity := domain.UserIdentity{Email: "coach@mykaarma.com"}

	assert.Equal(t, "coach@mykaarma.com", identity.FullName())
}
