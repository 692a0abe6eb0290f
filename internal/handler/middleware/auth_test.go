//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cospace-api/internal/domain/user"
	"cospace-api/internal/handler/middleware"
	"cospace-api/internal/pkg/errs"
	"cospace-api/internal/usecase"
	"cospace-api/tests/common/httptest"
)

type stubTokenValidator struct {
	authed *usecase.AuthenticatedUser
	err    error
}

func (s *stubTokenValidator) ValidateAccessToken(string) (*usecase.AuthenticatedUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.authed, nil
}

func newAuthRouter(validator usecase.TokenValidator, minRole user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	mw := middleware.NewAuthMiddleware(validator)
	engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	engine.GET("/staff", mw.RequireAuth(), mw.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return engine
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing token is unauthorized", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{}, user.RoleCashier)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Access token required")
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		router := newAuthRouter(&stubTokenValidator{err: errs.New("bad token")}, user.RoleCashier)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil,
			map[string]string{"Authorization": "Bearer nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})

	t.Run("valid bearer token passes user through", func(t *testing.T) {
		userID := uuid.New()
		router := newAuthRouter(&stubTokenValidator{
			authed: &usecase.AuthenticatedUser{UserID: userID, Role: user.RoleMember},
		}, user.RoleCashier)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil,
			map[string]string{"Authorization": "Bearer good"})

		var resp struct {
			UserID uuid.UUID `json:"user_id"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, userID, resp.UserID)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	cases := []struct {
		name       string
		role       user.Role
		expectCode int
	}{
		{name: "member is below cashier", role: user.RoleMember, expectCode: http.StatusForbidden},
		{name: "tenant is below cashier", role: user.RoleTenant, expectCode: http.StatusForbidden},
		{name: "cashier meets the bar", role: user.RoleCashier, expectCode: http.StatusNoContent},
		{name: "admin outranks cashier", role: user.RoleAdmin, expectCode: http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(&stubTokenValidator{
				authed: &usecase.AuthenticatedUser{UserID: uuid.New(), Role: tc.role},
			}, user.RoleCashier)

			w := httptest.PerformRequest(t, router, http.MethodGet, "/staff", nil,
				map[string]string{"Authorization": "Bearer good"})
			assert.Equal(t, tc.expectCode, w.Code)
		})
	}
}
