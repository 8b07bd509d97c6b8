package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrosikkim/config"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{IssueTokens: true}}
	cfg.Auth.SecretKey.Access = "test-access-secret"
	cfg.Auth.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(testAuthConfig())
	assert.NoError(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	farmerID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(farmerID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, farmerID, claims.FarmerID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateRejectsRefreshSignature(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret, so they must
	// not pass access-token validation.
	_, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_ValidateRejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}
