// Package middleware description is Middleware that checks if the request carries an admin session.
// file: middleware/admin_required.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"academy-admin/logger"
	"academy-admin/services"
)

// PrincipalKey is the gin context key holding the *services.AdminPrincipal.
const PrincipalKey = "admin"

// AdminRequired verifies the session token on every request it guards.
//   - no token: redirect to /login, no body
//   - bad or expired token: 401 JSON
//   - token without the admin role: 403 JSON
func AdminRequired(auth services.AuthServiceInterface, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := auth.Authorize(TokenFromRequest(c.Request, cookieName))

		switch {
		case err == nil:
			logger.Debug.Printf("AdminRequired: %s %s allowed", c.Request.Method, c.Request.URL.Path)
			c.Set(PrincipalKey, principal)
			c.Next()

		case errors.Is(err, services.ErrUnauthenticated):
			logger.Debug.Printf("AdminRequired: no token on %s, redirecting to login", c.Request.URL.Path)
			// http.Redirect would write a small HTML body on GET.
			c.Header("Location", "/login")
			c.AbortWithStatus(http.StatusFound)

		case errors.Is(err, services.ErrForbidden):
			logger.Warn.Printf("AdminRequired: token without admin role on %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})

		default:
			logger.Warn.Printf("AdminRequired: rejected token on %s: %v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		}
	}
}

// Principal returns the verified admin attached by AdminRequired, if any.
func Principal(c *gin.Context) (*services.AdminPrincipal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*services.AdminPrincipal)
	return p, ok
}
