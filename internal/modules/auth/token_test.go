package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/model"
	"github.com/stretchr/testify/require"
)

func testConfig(secret, expires string) *config.Config {
	return &config.Config{
		Auth: config.Auth{JWTSecret: secret, TokenExpires: expires},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig("test-secret", "1h")
	user := &model.User{Id: 42, Username: "alice", Email: "alice@example.com", Role: "admin"}

	token, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := ParseToken(token, cfg)
	require.NoError(t, err)
	require.Equal(t, Identity{UserId: 42, Username: "alice", Email: "alice@example.com", Role: "admin"}, identity)
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &model.User{Id: 1, Username: "bob", Email: "bob@example.com", Role: "user"}
	token, err := GenerateToken(user, testConfig("secret-a", "1h"))
	require.NoError(t, err)

	_, err = ParseToken(token, testConfig("secret-b", "1h"))
	require.Error(t, err)
	require.Equal(t, errs.KindForbidden, errs.KindOf(err))
}

func TestParseTokenExpired(t *testing.T) {
	cfg := testConfig("test-secret", "1h")
	claims := Claims{
		UserId:   1,
		Username: "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "pixelpress",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = ParseToken(token, cfg)
	require.Error(t, err)
	require.Equal(t, errs.KindForbidden, errs.KindOf(err))
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testConfig("test-secret", "1h"))
	require.Error(t, err)
	require.Equal(t, errs.KindForbidden, errs.KindOf(err))
}

func TestHashPasswordTooShort(t *testing.T) {
	_, err := HashPassword("abc12")
	require.Error(t, err)
	require.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.True(t, CheckPassword("hunter22", hash))
	require.False(t, CheckPassword("hunter23", hash))
}
