package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ownerId": utils.CurrentOwnerID(c),
			"role":    utils.CurrentRole(c),
		})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	token, err := utils.GenerateStaffToken(1, 42, "staff", testSecret, time.Hour)
	require.NoError(t, err)

	w := get(newAuthRouter("owner", "staff"), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ownerId":42`)
}

func TestAuthMiddlewareRejections(t *testing.T) {
	staff, err := utils.GenerateStaffToken(1, 42, "staff", testSecret, time.Hour)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateStaffToken(1, 42, "staff", "other-secret", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateStaffToken(1, 42, "staff", testSecret, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		roles []string
		token string
		want  int
	}{
		{"no token", nil, "", http.StatusUnauthorized},
		{"garbage token", nil, "not-a-jwt", http.StatusUnauthorized},
		{"wrong signing key", nil, wrongKey, http.StatusUnauthorized},
		{"expired", nil, expired, http.StatusUnauthorized},
		{"wrong role", []string{"owner"}, staff, http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := get(newAuthRouter(tc.roles...), tc.token)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCustomerTokenCarriesTableScope(t *testing.T) {
	token, err := utils.GenerateCustomerToken(7, 42, 3, testSecret, time.Hour)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, "customer"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"customerId": utils.CurrentCustomerID(c),
			"tableId":    utils.CurrentTableID(c),
		})
	})

	w := get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customerId":7`)
	assert.Contains(t, w.Body.String(), `"tableId":3`)
}
