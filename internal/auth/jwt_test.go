package auth

import (
	"testing"
	"time"

	"github.com/nordrens-as/planning-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret",
		JWTIssuer: "nordrens-planning",
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	v := NewJWTValidator(testAuthConfig())

	token, err := v.IssueToken("dispatcher-ui", "Dispatcher UI", time.Hour)
	require.NoError(t, err)

	caller, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dispatcher-ui", caller.Subject)
	assert.Equal(t, "Dispatcher UI", caller.DisplayName)
	assert.False(t, caller.System)
}

func TestValidateToken_FallsBackToSubjectName(t *testing.T) {
	v := NewJWTValidator(testAuthConfig())

	token, err := v.IssueToken("batch-runner", "", time.Hour)
	require.NoError(t, err)

	caller, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "batch-runner", caller.DisplayName)
}

func TestValidateToken_Expired(t *testing.T) {
	v := NewJWTValidator(testAuthConfig())

	token, err := v.IssueToken("late", "Late", -time.Minute)
	require.NoError(t, err)

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	other := NewJWTValidator(&config.AuthConfig{JWTSecret: "test-secret", JWTIssuer: "someone-else"})
	token, err := other.IssueToken("svc", "Svc", time.Hour)
	require.NoError(t, err)

	v := NewJWTValidator(testAuthConfig())
	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other := NewJWTValidator(&config.AuthConfig{JWTSecret: "other-secret", JWTIssuer: "nordrens-planning"})
	token, err := other.IssueToken("svc", "Svc", time.Hour)
	require.NoError(t, err)

	v := NewJWTValidator(testAuthConfig())
	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_NoSecretConfigured(t *testing.T) {
	v := NewJWTValidator(&config.AuthConfig{JWTIssuer: "nordrens-planning"})
	_, err := v.ValidateToken("whatever")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
