package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "github.com/gottliebdinh/moggi-admin/internal/handler/dto/response"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

type GuestHandler struct {
	guestUseCase usecase.GuestUseCase
}

func NewGuestHandler(guestUseCase usecase.GuestUseCase) *GuestHandler {
	return &GuestHandler{
		guestUseCase: guestUseCase,
	}
}

// @Summary Guest history
// @Description Visit, no-show and cancellation counts for a guest email
// @Tags guests
// @Produce json
// @Param email query string true "Guest email"
// @Success 200 {object} resdto.GuestHistoryResponse
// @Router /guests/history [get]
func (h *GuestHandler) History(c *gin.Context) {
	history, err := h.guestUseCase.History(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestHistory(history))
}
