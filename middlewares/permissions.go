package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nntexpressinc/blackhawks.tms-sub001/utils"
)

// RequirePermission gates a route on one capability key. Absent or false
// means forbidden; there is no default-allow path.
func RequirePermission(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caps := utils.CurrentCapabilities(c)
		if !caps.Allow(key) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		c.Next()
	}
}
