package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentradar/dentradar-api/internal/model"
	"github.com/dentradar/dentradar-api/pkg/auth"
)

func authedRouter(t *testing.T, jwtSvc auth.JWTService, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(jwtSvc)
	r := gin.New()

	protected := r.Group("/", m.Authenticate())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"phone": c.GetString(ContextPhone)})
	})

	admin := protected.Group("/admin", m.RequireRole(role))
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func tokenFor(t *testing.T, jwtSvc auth.JWTService, role model.ProfileRole) string {
	t.Helper()
	phone := "5551234567"
	token, err := jwtSvc.GenerateAccessToken(&model.Profile{
		UserID: uuid.New(),
		Phone:  &phone,
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

func get(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", time.Hour)
	router := authedRouter(t, jwtSvc, "admin")
	token := tokenFor(t, jwtSvc, model.ProfileRoleUser)

	w := get(router, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "5551234567")
}

func TestAuthenticateRejections(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", time.Hour)
	router := authedRouter(t, jwtSvc, "admin")

	// No header.
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "").Code)

	// Wrong scheme.
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "Basic abc").Code)

	// Garbage token.
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "Bearer not-a-token").Code)

	// Token signed with a different secret.
	other := tokenFor(t, auth.NewJWTService("other-secret", time.Hour), model.ProfileRoleUser)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "Bearer "+other).Code)

	// Expired token.
	expired := tokenFor(t, auth.NewJWTService("secret", -time.Hour), model.ProfileRoleUser)
	assert.Equal(t, http.StatusUnauthorized, get(router, "/me", "Bearer "+expired).Code)
}

func TestRequireRole(t *testing.T) {
	jwtSvc := auth.NewJWTService("secret", time.Hour)
	router := authedRouter(t, jwtSvc, "admin")

	userToken := tokenFor(t, jwtSvc, model.ProfileRoleUser)
	assert.Equal(t, http.StatusForbidden, get(router, "/admin/ping", "Bearer "+userToken).Code)

	adminToken := tokenFor(t, jwtSvc, model.ProfileRoleAdmin)
	assert.Equal(t, http.StatusOK, get(router, "/admin/ping", "Bearer "+adminToken).Code)
}
