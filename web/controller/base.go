// Package controller provides HTTP request handlers for the heritage
// panel API: authentication, notifications, contact messages and the
// managed site content.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velmara/heritage-panel/web/middleware"
)

// BaseController provides helpers shared by all controllers.
type BaseController struct{}

// loginAdminId returns the administrator id resolved by the bearer
// middleware. Handlers behind the auth group can rely on it being set.
func (a *BaseController) loginAdminId(c *gin.Context) int {
	return c.GetInt(middleware.ContextAdminId)
}

// notFoundOr maps gorm's not-found to a 404 response and everything
// else to the standard error envelope.
func notFoundOr(c *gin.Context, msg string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, "not found")
		return
	}
	jsonMsg(c, msg, err)
}
