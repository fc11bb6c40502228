package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/cookie"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth accepts the session either as the admin cookie or as a bearer
// token, for callers that cannot carry cookies.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		if err := m.auth.ValidateSession(token); err != nil {
			slog.Warn("session validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
