//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourpay/internal/domain/user"
	"tourpay/internal/handler/middleware"
	"tourpay/internal/pkg/cookie"
	"tourpay/internal/pkg/jwt"
	"tourpay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret-0123456789"

func newRouter(svc *jwt.Service, minRole user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	r.POST("/guarded", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		staffID, _ := middleware.GetStaffID(c)
		role, _ := middleware.GetStaffRole(c)
		c.JSON(http.StatusOK, gin.H{"staffId": staffID.String(), "role": role.String()})
	})
	return r
}

func mint(t *testing.T, svc *jwt.Service, staffID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := svc.GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)
	staffID := uuid.New()

	testCases := []struct {
		name         string
		minRole      user.Role
		setupRequest func(req *http.Request)
		expectStatus int
		expectBody   string
	}{
		{
			name:    "admin passes an admin route",
			minRole: user.RoleAdmin,
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+mint(t, svc, staffID, user.RoleAdmin))
			},
			expectStatus: http.StatusOK,
			expectBody:   `{"staffId":"` + staffID.String() + `","role":"admin"}`,
		},
		{
			name:    "admin passes an operator route",
			minRole: user.RoleOperator,
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+mint(t, svc, staffID, user.RoleAdmin))
			},
			expectStatus: http.StatusOK,
			expectBody:   `{"staffId":"` + staffID.String() + `","role":"admin"}`,
		},
		{
			name:    "token from cookie is accepted",
			minRole: user.RoleOperator,
			setupRequest: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: mint(t, svc, staffID, user.RoleOperator)})
			},
			expectStatus: http.StatusOK,
			expectBody:   `{"staffId":"` + staffID.String() + `","role":"operator"}`,
		},
		{
			name:    "operator is forbidden from an admin route",
			minRole: user.RoleAdmin,
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+mint(t, svc, staffID, user.RoleOperator))
			},
			expectStatus: http.StatusForbidden,
			expectBody:   `{"error":"Insufficient permissions"}`,
		},
		{
			name:    "viewer is forbidden from an operator route",
			minRole: user.RoleOperator,
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+mint(t, svc, staffID, user.RoleViewer))
			},
			expectStatus: http.StatusForbidden,
			expectBody:   `{"error":"Insufficient permissions"}`,
		},
		{
			name:         "missing token",
			minRole:      user.RoleViewer,
			setupRequest: func(*http.Request) {},
			expectStatus: http.StatusUnauthorized,
			expectBody:   `{"error":"Access token required"}`,
		},
		{
			name:    "non bearer scheme",
			minRole: user.RoleViewer,
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")
			},
			expectStatus: http.StatusUnauthorized,
			expectBody:   `{"error":"Access token required"}`,
		},
		{
			name:    "token signed with another secret",
			minRole: user.RoleViewer,
			setupRequest: func(req *http.Request) {
				other := jwt.NewService("some-other-secret-0123456789abcdef", time.Hour)
				req.Header.Set("Authorization", "Bearer "+mint(t, other, staffID, user.RoleAdmin))
			},
			expectStatus: http.StatusUnauthorized,
			expectBody:   `{"error":"Invalid or expired token"}`,
		},
		{
			name:    "expired token",
			minRole: user.RoleViewer,
			setupRequest: func(req *http.Request) {
				expired := jwt.NewService(secret, -time.Minute)
				req.Header.Set("Authorization", "Bearer "+mint(t, expired, staffID, user.RoleAdmin))
			},
			expectStatus: http.StatusUnauthorized,
			expectBody:   `{"error":"Invalid or expired token"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(svc, tc.minRole)
			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			tc.setupRequest(req)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectStatus, w.Code)
			assert.JSONEq(t, tc.expectBody, w.Body.String())
		})
	}
}

func TestRequireRoleAtLeast_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(secret, time.Hour)))

	r := gin.New()
	r.GET("/misconfigured", auth.RequireRoleAtLeast(user.RoleViewer), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/misconfigured", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
