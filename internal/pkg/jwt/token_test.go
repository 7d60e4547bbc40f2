package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Issuer:     "sentinela-test",
			Expiration: 60,
		},
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "subject", cfg)

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	tokenString, _, err := GenerateToken(userID, "desk", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "desk", (*claims)["role"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "subject", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "another-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenMalformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "test-secret-key")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
