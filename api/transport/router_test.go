package transport

import (
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/elevate-awards/api/controllers/testing"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter(t *testing.T, adminToken string) *gin.Engine {
	t.Helper()
	r := NewRouter(gin.TestMode)
	r.GET("/api/admin/ping", AdminAuthMiddleware(adminToken), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Run("Happy path - matching token", func(t *testing.T) {
		r := setupTestRouter(t, "secret")

		res := testutils.PerformRequest(r, http.MethodGet, "/api/admin/ping", nil, map[string]string{"x-admin-token": "secret"})

		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("Unhappy path - unconfigured token locks admin routes", func(t *testing.T) {
		r := setupTestRouter(t, "")

		res := testutils.PerformRequest(r, http.MethodGet, "/api/admin/ping", nil, map[string]string{"x-admin-token": ""})

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestRouterDefaults(t *testing.T) {
	r := setupTestRouter(t, "secret")

	t.Run("Unhappy path - unknown route", func(t *testing.T) {
		res := testutils.PerformRequest(r, http.MethodGet, "/nope", nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Contains(t, res.Body.String(), "PAGE_NOT_FOUND")
		assert.NotEmpty(t, res.Header().Get(RequestIDHeader), "Every response should carry a request ID")
	})

	t.Run("Happy path - CORS preflight", func(t *testing.T) {
		res := testutils.PerformRequest(r, http.MethodOptions, "/api/admin/ping", nil, nil)

		assert.Equal(t, http.StatusNoContent, res.Code)
		assert.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"))
	})
}
