package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/pkg/auth"
)

func newTestMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "learnsphere-test",
	})
	return NewAuthMiddleware(jwtService), jwtService
}

func identityRouter(handler gin.HandlerFunc) (*gin.Engine, *appauth.Actor) {
	gin.SetMode(gin.TestMode)
	var captured appauth.Actor

	router := gin.New()
	router.GET("/probe", handler, func(c *gin.Context) {
		captured = appauth.ActorFromContext(c)
		c.Status(http.StatusOK)
	})
	return router, &captured
}

func validToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:    7,
		Email: "probe@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return accessToken
}

func TestJWTAuth(t *testing.T) {
	mw, jwtService := newTestMiddleware()

	t.Run("valid token resolves identity", func(t *testing.T) {
		router, actor := identityRouter(mw.JWTAuth())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+validToken(t, jwtService, models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, actor.Authenticated)
		assert.Equal(t, appauth.RoleAdmin, actor.Role)
		assert.Equal(t, int64(7), actor.UserID)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		router, _ := identityRouter(mw.JWTAuth())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		router, _ := identityRouter(mw.JWTAuth())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		router, _ := identityRouter(mw.JWTAuth())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalJWTAuth(t *testing.T) {
	mw, jwtService := newTestMiddleware()

	t.Run("no header proceeds anonymously", func(t *testing.T) {
		router, actor := identityRouter(mw.OptionalJWTAuth())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, actor.Authenticated)
		assert.Equal(t, appauth.RoleAnonymous, actor.Role)
	})

	t.Run("valid token resolves identity", func(t *testing.T) {
		router, actor := identityRouter(mw.OptionalJWTAuth())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+validToken(t, jwtService, models.RoleStudent))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, actor.Authenticated)
		assert.Equal(t, appauth.RoleStudent, actor.Role)
	})

	// A present but invalid credential is an error, not an anonymous
	// request.
	t.Run("invalid token still rejected", func(t *testing.T) {
		router, _ := identityRouter(mw.OptionalJWTAuth())

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer invalid")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
