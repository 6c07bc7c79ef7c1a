// Package controllers controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/logger"
	"academy-admin/services"
)

// AuthController handles the admin login form and the session cookie.
type AuthController struct {
	Auth         services.AuthServiceInterface
	CookieName   string
	CookieSecure bool
}

func NewAuthController(auth services.AuthServiceInterface, cookieName string, secure bool) *AuthController {
	return &AuthController{Auth: auth, CookieName: cookieName, CookieSecure: secure}
}

// ShowLoginPage renders the login form.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// PerformLogin checks the password and sets the session cookie.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	password := c.PostForm("password")
	if password == "" {
		logger.Warn.Println("PerformLogin: Missing password")
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Password required"})
		return
	}

	token, err := ac.Auth.Issue(password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		logger.Warn.Printf("PerformLogin: Invalid password from %s", c.ClientIP())
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid password"})
		return
	}
	if err != nil {
		logger.Error.Printf("PerformLogin: Could not issue token: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Internal error, please try again."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.CookieName, token, int(ac.Auth.TTL().Seconds()), "/", "", ac.CookieSecure, true)

	logger.Info.Printf("PerformLogin: Admin logged in from %s", c.ClientIP())
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout clears the cookie. The token itself stays valid until it expires.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.CookieName, "", -1, "/", "", ac.CookieSecure, true)
	logger.Info.Println("Logout: Session cookie cleared")
	c.Redirect(http.StatusFound, "/login")
}
