package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/gottliebdinh/moggi-admin/internal/handler/dto/request"
	"github.com/gottliebdinh/moggi-admin/internal/handler/httperr"
	"github.com/gottliebdinh/moggi-admin/internal/infra/mail"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

type MailHandler struct {
	mailUseCase usecase.MailUseCase
}

func NewMailHandler(mailUseCase usecase.MailUseCase) *MailHandler {
	return &MailHandler{
		mailUseCase: mailUseCase,
	}
}

// @Summary Send guest mail
// @Description Send a free-text message to a guest in the branded layout
// @Tags mail
// @Accept json
// @Produce json
// @Param request body reqdto.SendMailRequest true "Mail"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /email/send [post]
func (h *MailHandler) Send(c *gin.Context) {
	var req reqdto.SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	err := h.mailUseCase.SendGuestMessage(c.Request.Context(), req.Type, req.To, req.Subject, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMailFieldsMissing):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Missing required fields",
			})
		case errors.Is(err, mail.ErrMailNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Mail sender not configured",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send email", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
