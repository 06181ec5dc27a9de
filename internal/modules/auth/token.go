package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/modules/errs"
	"github.com/pixelpress/pixelpress/internal/modules/model"
)

// Identity is what a verified token attaches to a request.
type Identity struct {
	UserId   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Claims struct {
	UserId   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(user *model.User, cfg *config.Config) (string, error) {
	claims := Claims{
		UserId:   user.Id,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenTTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pixelpress",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	return signed, errs.Wrap(errs.KindInternal, "auth.token.generate", err)
}

func ParseToken(tokenString string, cfg *config.Config) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errs.Newf(errs.KindForbidden, "auth.token.parse", "invalid or expired token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Identity{}, errs.Newf(errs.KindForbidden, "auth.token.parse", "invalid token claims")
	}
	return Identity{
		UserId:   claims.UserId,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}
