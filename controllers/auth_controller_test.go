// controllers/auth_controller_test.go
package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academy-admin/services"
)

func newLoginRouter(t *testing.T) (*services.AuthService, *gin.Engine) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)
	auth, err := services.NewAuthService(services.AuthConfig{
		SigningKey:   []byte("controller-test-key"),
		PasswordHash: string(hash),
		TTL:          time.Hour,
	})
	require.NoError(t, err)

	ac := NewAuthController(auth, "admin_token", true)
	router := setupTestRouter(t)
	router.GET("/login", ac.ShowLoginPage)
	router.POST("/login", ac.PerformLogin)
	router.GET("/logout", ac.Logout)
	return auth, router
}

func TestShowLoginPage(t *testing.T) {
	_, router := newLoginRouter(t)
	w := serve(router, http.MethodGet, "/login", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login")
}

func TestPerformLogin_Success(t *testing.T) {
	auth, router := newLoginRouter(t)
	w := serve(router, http.MethodPost, "/login", "password=letmein")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	cookie := cookieNamed(w, "admin_token")
	require.NotNil(t, cookie, "session cookie is set")
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)

	principal, err := auth.Authorize(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, services.RoleAdmin, principal.Role)
}

func TestPerformLogin_MissingPassword(t *testing.T) {
	_, router := newLoginRouter(t)
	w := serve(router, http.MethodPost, "/login", "password=")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password required")
	assert.Nil(t, cookieNamed(w, "admin_token"))
}

func TestPerformLogin_WrongPassword(t *testing.T) {
	_, router := newLoginRouter(t)
	w := serve(router, http.MethodPost, "/login", "password=guess")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")
	assert.Nil(t, cookieNamed(w, "admin_token"), "no token for a wrong password")
}

func TestLogout_ClearsCookie(t *testing.T) {
	_, router := newLoginRouter(t)
	w := serve(router, http.MethodGet, "/logout", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookie := cookieNamed(w, "admin_token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
