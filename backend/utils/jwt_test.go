package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"horsera/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret"}
}

// extract runs ExtractTokenClaims inside a real request.
func extract(t *testing.T, cfg *config.Config, authHeader string) (*TokenClaims, error) {
	t.Helper()

	var claims *TokenClaims
	var claimsErr error

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		claims, claimsErr = ExtractTokenClaims(c, cfg)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	_, err := app.Test(req)
	require.NoError(t, err)

	return claims, claimsErr
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateJWTToken("alice", RoleUser, cfg)
	require.NoError(t, err)

	claims, err := extract(t, cfg, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, RoleUser, claims.Role)

	token, err = GenerateJWTToken("root", RoleAdmin, cfg)
	require.NoError(t, err)

	claims, err = extract(t, cfg, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestMissingToken(t *testing.T) {
	_, err := extract(t, testConfig(), "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestMalformedToken(t *testing.T) {
	_, err := extract(t, testConfig(), "Bearer not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	cfg := testConfig()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"role":     RoleUser,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = extract(t, cfg, "Bearer "+tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken("alice", RoleUser, &config.Config{JWTSecret: "othersecret"})
	require.NoError(t, err)

	_, err = extract(t, testConfig(), "Bearer "+token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
