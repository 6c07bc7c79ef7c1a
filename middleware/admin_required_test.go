// file: middleware/admin_required_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"academy-admin/services"
)

var testSigningKey = []byte("middleware-test-key")

func newTestAuth(t *testing.T) *services.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	auth, err := services.NewAuthService(services.AuthConfig{
		SigningKey:   testSigningKey,
		PasswordHash: string(hash),
		TTL:          time.Hour,
	})
	require.NoError(t, err)
	return auth
}

func setupAdminTestRouter(auth services.AuthServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	admin := router.Group("/admin", AdminRequired(auth, "admin_token"))
	admin.GET("/dashboard", func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": p.Role})
	})
	return router
}

func signWithRole(t *testing.T, role string) string {
	t.Helper()
	claims := services.AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)
	return signed
}

func TestAdminRequired_NoTokenRedirectsToLogin(t *testing.T) {
	router := setupAdminTestRouter(newTestAuth(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, w.Body.String())
}

func TestAdminRequired_ValidCookie(t *testing.T) {
	auth := newTestAuth(t)
	token, err := auth.Issue("letmein")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})
	w := httptest.NewRecorder()
	setupAdminTestRouter(auth).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"admin"}`, w.Body.String())
}

func TestAdminRequired_ValidBearerHeader(t *testing.T) {
	auth := newTestAuth(t)
	token, err := auth.Issue("letmein")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	setupAdminTestRouter(auth).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequired_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: "not.a.jwt"})
	w := httptest.NewRecorder()
	setupAdminTestRouter(newTestAuth(t)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}

func TestAdminRequired_WrongRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signWithRole(t, "coach"))
	w := httptest.NewRecorder()
	setupAdminTestRouter(newTestAuth(t)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())
}
