package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreale4125-ux/taplinknfc/config"
	"github.com/lreale4125-ux/taplinknfc/internal/domain/entity"
)

func testJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service, err := NewJWTService(testJWTConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	require.NotNil(t, service)

	companyID := uuid.New()
	user := &entity.User{
		ID:                 uuid.New(),
		Username:           "mario",
		Role:               entity.RoleUser,
		CompanyID:          &companyID,
		CanAccessWallet:    true,
		CanAccessAnalytics: true,
	}

	token, err := service.Generate(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Validate(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "mario", claims.Username)
	assert.Equal(t, entity.RoleUser, claims.Role)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, companyID, *claims.CompanyID)
	assert.True(t, claims.CanAccessWallet)
	assert.True(t, claims.CanAccessAnalytics)
	assert.False(t, claims.CanAccessPOS)
}

func TestJWTService_InvalidToken(t *testing.T) {
	service, err := NewJWTService(testJWTConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := service.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret_one_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret_two_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Generate(&entity.User{ID: uuid.New(), Username: "mario", Role: entity.RoleUser})
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service, err := NewJWTService(testJWTConfig("test_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := service.Generate(&entity.User{ID: uuid.New(), Username: "mario", Role: entity.RoleUser})
	require.NoError(t, err)

	claims, err := service.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	service, err := NewJWTService(testJWTConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, service)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
