// Package middleware provides gin middleware for the panel API.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/web/service"
)

// Context keys set by BearerAuth for downstream handlers.
const (
	ContextAdminId = "adminId"
)

// BearerAuth validates the Authorization bearer credential before any
// protected handler runs. An expired token is reported distinctly so
// the client can try a refresh; every other failure is a plain 401.
func BearerAuth(tokenService *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "unauthorized"})
			c.Abort()
			return
		}

		adminId, err := tokenService.Parse(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "token expired", "expired": true})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "unauthorized"})
			}
			c.Abort()
			return
		}

		c.Set(ContextAdminId, adminId)
		c.Next()
	}
}
