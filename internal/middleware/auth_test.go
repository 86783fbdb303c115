package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CourtsideServices01/court-booking-api/internal/config"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

func signedToken(t *testing.T, secret, userID, role string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	secured := r.Group("/")
	secured.Use(AuthMiddleware(cfg, nil))
	{
		secured.GET("/whoami", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id": c.MustGet(ContextUserID),
				"role":    c.MustGet(ContextUserRole),
			})
		})

		managed := secured.Group("/")
		managed.Use(RequireManager())
		{
			managed.GET("/managed", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
		}
	}

	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := protectedRouter(cfg)

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("not a bearer", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Basic abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Bearer not.a.jwt").Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signedToken(t, "other-secret", "u1", models.RoleUser, time.Hour)
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signedToken(t, cfg.JWTSecret, "u1", models.RoleUser, -time.Hour)
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signedToken(t, cfg.JWTSecret, "u1", models.RoleUser, time.Hour)
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	})
}

func TestRequireManager(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := protectedRouter(cfg)

	do := func(role string) int {
		token := signedToken(t, cfg.JWTSecret, "u1", role, time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/managed", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusForbidden, do(models.RoleUser))
	assert.Equal(t, http.StatusOK, do(models.RoleManager))
}
