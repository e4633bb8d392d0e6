//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"stable-booking/internal/domain/user"
	"stable-booking/internal/handler/middleware"
	"stable-booking/internal/pkg/cookie"
	"stable-booking/tests/common/httptest"
	usecasemock "stable-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

type identityResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	auth := middleware.NewAuthMiddleware(s.mockValidator)

	echo := func(c *gin.Context) {
		resp := identityResponse{}
		if id, ok := middleware.GetUserID(c); ok {
			resp.UserID = id.String()
		}
		if role, ok := middleware.GetUserRole(c); ok {
			resp.Role = role.String()
		}
		c.JSON(http.StatusOK, resp)
	}

	s.router = gin.New()
	s.router.GET("/private", auth.RequireAuth(), echo)
	s.router.GET("/owners", auth.RequireAuth(), auth.RequireAnyRole(user.RoleStableOwner, user.RoleAdmin), echo)
	s.router.GET("/public", auth.OptionalAuth(), echo)
	s.router.GET("/misconfigured", auth.RequireAnyRole(user.RoleAdmin), echo)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	userID := uuid.New()

	s.Run("success: bearer token sets the identity", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(userID, user.RoleRider, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "good-token")

		var body identityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body.UserID)
		s.Equal("rider", body.Role)
	})

	s.Run("success: falls back to the access token cookie", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(userID, user.RoleAdmin, nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.Serve(s.T(), s.router, http.MethodGet, "/private", nil, httptest.WithCookies(cookies...))

		var body identityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin", body.Role)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 for an invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("expired").Return(uuid.Nil, user.Role(""), errors.New("token is expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "expired")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAnyRole() {
	tests := []struct {
		name   string
		role   user.Role
		status int
	}{
		{name: "stable owner allowed", role: user.RoleStableOwner, status: http.StatusOK},
		{name: "admin allowed", role: user.RoleAdmin, status: http.StatusOK},
		{name: "rider rejected", role: user.RoleRider, status: http.StatusForbidden},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockValidator.EXPECT().ValidateToken("token").Return(uuid.New(), tt.role, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owners", nil, "token")

			if tt.status == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tt.status, "Insufficient permissions")
		})
	}

	s.Run("error: 500 when registered without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("anonymous without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "")

		var body identityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.UserID)
	})

	s.Run("anonymous with an invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("bad").Return(uuid.Nil, user.Role(""), errors.New("signature is invalid"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "bad")

		var body identityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.UserID)
	})

	s.Run("identified with a valid token", func() {
		userID := uuid.New()
		s.mockValidator.EXPECT().ValidateToken("good").Return(userID, user.RoleStableOwner, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "good")

		var body identityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body.UserID)
		s.Equal("stable_owner", body.Role)
	})
}
