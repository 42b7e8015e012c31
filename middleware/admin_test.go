package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", RequireAdmin(secret), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func requestWithAuth(t *testing.T, r *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	r := adminRouter("hunter2")

	assert.Equal(t, http.StatusOK, requestWithAuth(t, r, "Bearer hunter2").Code)
	assert.Equal(t, http.StatusUnauthorized, requestWithAuth(t, r, "Bearer wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, requestWithAuth(t, r, "hunter2").Code) // no Bearer prefix
	assert.Equal(t, http.StatusUnauthorized, requestWithAuth(t, r, "").Code)
}

func TestRequireAdminEmptySecretRejectsAll(t *testing.T) {
	r := adminRouter("")
	assert.Equal(t, http.StatusUnauthorized, requestWithAuth(t, r, "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, requestWithAuth(t, r, "").Code)
}
