package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velmara/heritage-panel/config"
	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web/service"
	"github.com/velmara/heritage-panel/web/session"
)

// LoginForm is the login request body.
type LoginForm struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileForm is the profile update request body.
type UpdateProfileForm struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthController handles login, logout, token refresh and profile
// management.
type AuthController struct {
	BaseController

	adminService service.AdminService
	tokenService *service.TokenService
}

// NewAuthController wires the public auth routes on pub and the
// protected ones on protected.
func NewAuthController(pub *gin.RouterGroup, protected *gin.RouterGroup, tokenService *service.TokenService) *AuthController {
	a := &AuthController{tokenService: tokenService}
	a.initRouter(pub, protected)
	return a
}

func (a *AuthController) initRouter(pub *gin.RouterGroup, protected *gin.RouterGroup) {
	pub.POST("/auth/login", a.login)
	pub.GET("/auth/logout", a.logout)
	pub.GET("/auth/refresh-token", a.refreshToken)

	protected.GET("/auth/me", a.me)
	protected.PUT("/auth/update-profile", a.updateProfile)
}

// login authenticates an administrator and mints a bearer credential.
// Unknown email and wrong password produce the identical response.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid login data")
		return
	}

	admin := a.adminService.CheckAdmin(form.Email, form.Password)
	if admin == nil {
		logger.Warningf("failed login for %q, IP: %q", form.Email, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "Invalid credentials")
		return
	}

	token, err := a.tokenService.Mint(admin)
	if err != nil {
		jsonMsg(c, "login", err)
		return
	}

	if err := session.SetLoginAdmin(c, admin.Id, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in, IP: %s", form.Email, getRemoteIp(c))
	jsonObj(c, gin.H{"token": token, "user": admin}, nil)
}

// logout clears the refresh session. Best-effort: the client discards
// its token regardless.
func (a *AuthController) logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	jsonMsg(c, "logged out", nil)
}

// refreshToken issues a fresh credential while the login session is
// still inside its renewable window.
func (a *AuthController) refreshToken(c *gin.Context) {
	adminId, ok := session.GetLoginAdminId(c)
	if !ok {
		pureJsonMsg(c, http.StatusUnauthorized, false, "session expired")
		return
	}

	admin, err := a.adminService.GetAdmin(adminId)
	if err != nil {
		pureJsonMsg(c, http.StatusUnauthorized, false, "session expired")
		return
	}

	token, err := a.tokenService.Mint(admin)
	if err != nil {
		jsonMsg(c, "refresh token", err)
		return
	}
	jsonObj(c, gin.H{"token": token}, nil)
}

// me returns the profile of the authenticated administrator.
func (a *AuthController) me(c *gin.Context) {
	admin, err := a.adminService.GetAdmin(a.loginAdminId(c))
	if err != nil {
		notFoundOr(c, "get profile", err)
		return
	}
	jsonObj(c, admin, nil)
}

// updateProfile changes username/email and optionally the password.
func (a *AuthController) updateProfile(c *gin.Context) {
	var form UpdateProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid profile data")
		return
	}

	admin, err := a.adminService.UpdateProfile(
		a.loginAdminId(c),
		form.Username, form.Email,
		form.CurrentPassword, form.NewPassword, form.ConfirmPassword,
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCurrentPassword) || errors.Is(err, service.ErrPasswordMismatch) {
			pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
			return
		}
		jsonMsg(c, "update profile", err)
		return
	}
	jsonObj(c, admin, nil)
}
