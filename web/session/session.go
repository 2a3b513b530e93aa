// Package session keeps the cookie-backed login session that makes an
// access token renewable. The cookie's max age bounds the refresh
// window; the bearer token itself is much shorter lived.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginAdminKey = "LOGIN_ADMIN_ID"

// SetLoginAdmin records the administrator id in the session with the
// given max age in seconds.
func SetLoginAdmin(c *gin.Context, adminId int, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	s.Set(loginAdminKey, adminId)
	return s.Save()
}

// GetLoginAdminId returns the administrator id of a live session, or
// false when there is none.
func GetLoginAdminId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	obj := s.Get(loginAdminKey)
	if obj == nil {
		return 0, false
	}
	id, ok := obj.(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// ClearSession drops the session cookie.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
