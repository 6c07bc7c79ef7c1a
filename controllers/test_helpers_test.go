// file: controllers/test_helpers_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const flashTemplate = `{{range .flashes}}[{{.Kind}}:{{.Message}}]{{end}}`

// setupTestRouter creates a gin engine with the flash session store and
// minimal templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to dir.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"login.html":            `<html><body>login {{.Error}}</body></html>`,
		"dashboard.html":        `trials={{.totalTrialStudents}} contacts={{.totalContacts}} ` + flashTemplate,
		"trialStudentlist.html": `{{range .trialStudent}}<li>{{.PlayerName}}</li>{{end}}` + flashTemplate,
		"contactUs.html":        `{{range .contactDetails}}<li>{{.ContactName}}</li>{{end}}` + flashTemplate,
		"setting.html":          `name={{.settings.WebsiteName}} ` + flashTemplate,
	}

	for name, content := range templates {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// serve runs one request, carrying over cookies from a previous response.
func serve(router *gin.Engine, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		if strings.HasPrefix(body, "{") {
			req.Header.Set("Content-Type", "application/json")
		} else {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// cookieNamed returns the response cookie called name, or nil.
func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
