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

func signToken(t *testing.T, secret []byte, role string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "64f000000000000000000001",
		"role": role,
		"exp":  time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func protectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		role, _ := c.Get("role")
		userID, _ := c.Get("userId")
		c.JSON(http.StatusOK, gin.H{"role": role, "userId": userID})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := protectedRouter(AuthMiddleware(testSecret))
	token := signToken(t, testSecret, "staff", time.Hour)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staff")
	assert.Contains(t, w.Body.String(), "64f000000000000000000001")
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	r := protectedRouter(AuthMiddleware(testSecret))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), "staff", time.Hour)},
		{"expired token", "Bearer " + signToken(t, testSecret, "staff", -time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	r := protectedRouter(AuthMiddleware(testSecret), AdminMiddleware())

	w := doRequest(r, "Bearer "+signToken(t, testSecret, "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "Bearer "+signToken(t, testSecret, "staff", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
