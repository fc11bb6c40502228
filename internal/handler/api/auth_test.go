//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/gottliebdinh/moggi-admin/internal/handler/api"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/clock"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/cookie"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/session"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
	"github.com/gottliebdinh/moggi-admin/tests/common/httptest"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	sessions *session.Service
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.SessionConfig{
		AdminPassword: "moggi2024",
		Secret:        "test-secret",
		SameSite:      "Lax",
	}
	s.sessions = session.NewService(cfg.Secret, time.Hour)
	authUseCase := usecase.NewAuthUseCase(cfg.AdminPassword, s.sessions, clock.NewMockClock(time.Now()))
	handler := api.NewAuthHandler(authUseCase, s.sessions, cfg)

	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/logout", handler.Logout)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	s.Run("success: sets a valid session cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"password": "moggi2024"})

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["success"])

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.True(sessionCookie.HttpOnly)
		s.NoError(s.sessions.Validate(sessionCookie.Value))
	})

	s.Run("error: 401 Unauthorized for the wrong password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"password": "wrong"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid password")
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
	})

	s.Run("error: 400 Bad Request without a password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: expires the session cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil)

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["success"])

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Empty(sessionCookie.Value)
		s.Less(sessionCookie.MaxAge, 0)
	})
}
