package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func authRouter(allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", RequireAdmin(testSecret, allowed), func(c *gin.Context) {
		email := c.GetString(EmailKey)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})
	return r
}

func doAuth(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdminMissingToken(t *testing.T) {
	r := authRouter("admin@example.com")

	assert.Equal(t, http.StatusUnauthorized, doAuth(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doAuth(r, "Bearer ").Code)
}

func TestRequireAdminInvalidSignature(t *testing.T) {
	r := authRouter("admin@example.com")

	token := signToken(t, []byte("wrong-secret"), jwt.MapClaims{"email": "admin@example.com"})
	assert.Equal(t, http.StatusUnauthorized, doAuth(r, "Bearer "+token).Code)
}

func TestRequireAdminExpiredToken(t *testing.T) {
	r := authRouter("admin@example.com")

	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "admin@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	assert.Equal(t, http.StatusUnauthorized, doAuth(r, "Bearer "+token).Code)
}

func TestRequireAdminEmailNotAllowed(t *testing.T) {
	r := authRouter("admin@example.com")

	token := signToken(t, testSecret, jwt.MapClaims{"email": "stranger@example.com"})
	assert.Equal(t, http.StatusForbidden, doAuth(r, "Bearer "+token).Code)
}

func TestRequireAdminMissingEmailClaim(t *testing.T) {
	r := authRouter("admin@example.com")

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-1"})
	assert.Equal(t, http.StatusForbidden, doAuth(r, "Bearer "+token).Code)
}

func TestRequireAdminAllowedEmailCaseInsensitive(t *testing.T) {
	r := authRouter("Admin@Example.com")

	token := signToken(t, testSecret, jwt.MapClaims{"email": "admin@example.com"})
	w := doAuth(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}
