package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

// AuthMiddleware checks the bearer token and resolves the capability blob
// from its perms claim into the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			return
		}

		// an undecodable blob means no capabilities, not a crash
		caps, err := utils.DecodeCapabilities(claims.Perms)
		if err != nil {
			caps = utils.Capabilities{}
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("caps", caps)

		c.Next()
	}
}
