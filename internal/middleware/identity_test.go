package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogql-be/internal/identity"
	"blogql-be/internal/jwt"
)

func newIdentityRouter(jwtService *jwt.JWTService, rejectInvalid bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(IdentityMiddleware(jwtService, rejectInvalid))
	router.GET("/whoami", func(c *gin.Context) {
		if id, ok := identity.FromContext(c.Request.Context()); ok {
			c.JSON(http.StatusOK, gin.H{"userId": id.UserID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": nil})
	})
	return router
}

func TestIdentityMiddleware_NoHeaderIsAnonymous(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	router := newIdentityRouter(jwtService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId": null}`, w.Body.String())
}

func TestIdentityMiddleware_InvalidTokenIsAnonymous(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	router := newIdentityRouter(jwtService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	router.ServeHTTP(w, req)

	// Verification failure is anonymous, not a hard error
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId": null}`, w.Body.String())
}

func TestIdentityMiddleware_ExpiredTokenIsAnonymous(t *testing.T) {
	expiredIssuer := jwt.NewJWTService("test-secret", -time.Minute)
	token, err := expiredIssuer.GenerateToken("user-123")
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	router := newIdentityRouter(jwtService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId": null}`, w.Body.String())
}

func TestIdentityMiddleware_RejectInvalidOption(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	router := newIdentityRouter(jwtService, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A missing header is still anonymous, even in strict mode
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIdentityMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	token, err := jwtService.GenerateToken("user-123")
	require.NoError(t, err)

	router := newIdentityRouter(jwtService, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId": "user-123"}`, w.Body.String())
}
