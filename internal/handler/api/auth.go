package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/gottliebdinh/moggi-admin/internal/handler/dto/request"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/config"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/cookie"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/session"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	sessions    *session.Service
	cfg         config.SessionConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, sessions *session.Service, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		sessions:    sessions,
		cfg:         cfg,
	}
}

// @Summary Admin login
// @Description Verify the admin password and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, err := h.authUseCase.Login(req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetSessionCookie(c, h.cfg, token, h.sessions.Duration())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Admin logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cfg)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
