package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cafesync/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var profileTestSecret = []byte("test-secret")

func profileTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := NewUserController(profileTestSecret, zap.NewNop())

	r := gin.New()
	auth := middleware.AuthMiddleware(profileTestSecret)
	r.GET("/api/users/profile", auth, uc.GetUserProfile)
	r.PUT("/api/users/profile", auth, uc.UpdateUserProfile)
	return r
}

func signProfileToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(profileTestSecret)
	require.NoError(t, err)
	return signed
}

// A correctly signed token that lacks a usable id claim must be rejected
// with the error envelope, not crash the handler.
func TestProfile_TokenWithoutUsableIDClaim(t *testing.T) {
	r := profileTestRouter()

	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing id", jwt.MapClaims{"role": "staff", "exp": exp}},
		{"numeric id", jwt.MapClaims{"id": 42, "role": "staff", "exp": exp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signProfileToken(t, tt.claims)

			req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)

			req = httptest.NewRequest(http.MethodPut, "/api/users/profile", strings.NewReader(`{"name":"x"}`))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")
			w = httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestGetUserProfile_MalformedIDClaim(t *testing.T) {
	r := profileTestRouter()

	token := signProfileToken(t, jwt.MapClaims{
		"id":   "not-an-object-id",
		"role": "staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user id")
}
