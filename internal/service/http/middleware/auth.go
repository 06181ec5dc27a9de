package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/modules/auth"
	"github.com/pixelpress/pixelpress/internal/modules/consts"
)

const identityKey = "identity"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid bearer token: 401 when the
// token is absent, 403 when it does not verify.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 10004, "message": "authentication required"})
			return
		}
		identity, err := auth.ParseToken(token, cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": 10005, "message": "invalid or expired token"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present and never
// rejects the request.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if identity, err := auth.ParseToken(token, cfg); err == nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// AdminOnly must run after RequireAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := Identity(c)
		if !ok || identity.Role != consts.RoleAdmin.String() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": 10005, "message": "admin access required"})
			return
		}
		c.Next()
	}
}

// Identity returns the verified identity attached by RequireAuth or
// OptionalAuth.
func Identity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}
