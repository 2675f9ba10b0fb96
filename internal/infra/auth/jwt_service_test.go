package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{
		SecretKey: struct {
			Access  string `json:"access" yaml:"access"`
			Refresh string `json:"refresh" yaml:"refresh"`
		}{
			Access:  access,
			Refresh: refresh,
		},
	}

	return cfg
}

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	jwtService, err := NewJWTService(newTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	return jwtService
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)

	userID := uuid.New()
	roles := []string{"user", "staff"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	assert.NoError(t, err)
	require.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, userID.String(), accessClaims.Subject)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	assert.NoError(t, err)
	require.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	jwtService := newTestJWTService(t)
	other, err := NewJWTService(newTestConfig("another_access_secret", "another_refresh_secret"))
	require.NoError(t, err)

	accessToken, _, err := other.GenerateTokens(uuid.New(), []string{"user"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService := newTestJWTService(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService := newTestJWTService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		UserID: uuid.New(),
		Type:   "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	tokenString, err := forged.SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_ConfiguredDurations(t *testing.T) {
	cfg := newTestConfig("a", "b")
	cfg.Auth = &config.AuthConfig{AccessTokenDuration: 5 * time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, jwtService.GetAccessTokenDuration())

	defaults, err := NewJWTService(newTestConfig("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, defaults.GetAccessTokenDuration())
}
