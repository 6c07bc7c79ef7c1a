// file: middleware/headers_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupHeadersRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), SecurityHeaders())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})
	return router
}

func TestRequestID_Minted(t *testing.T) {
	w := httptest.NewRecorder()
	setupHeadersRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String(), "handlers see the same id")
}

func TestRequestID_Reused(t *testing.T) {
	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, inbound)
	w := httptest.NewRecorder()
	setupHeadersRouter().ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get(RequestIDHeader))
}

func TestRequestID_GarbageReplaced(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w := httptest.NewRecorder()
	setupHeadersRouter().ServeHTTP(w, req)

	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	setupHeadersRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
