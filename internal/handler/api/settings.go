package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "github.com/gottliebdinh/moggi-admin/internal/handler/dto/request"
	resdto "github.com/gottliebdinh/moggi-admin/internal/handler/dto/response"
	"github.com/gottliebdinh/moggi-admin/internal/handler/httperr"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

// @Summary Get settings
// @Description Capacity rules and closed-day exceptions
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsUseCase.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettings(settings))
}

// @Summary Create capacity rule
// @Tags settings
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertRuleRequest true "Capacity rule"
// @Success 201 {object} resdto.CapacityRuleResponse
// @Failure 422 {object} map[string]string
// @Router /settings/rules [post]
func (h *SettingsHandler) CreateRule(c *gin.Context) {
	var req reqdto.UpsertRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.settingsUseCase.CreateRule(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRule(created))
}

// @Summary Update capacity rule
// @Tags settings
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body reqdto.UpsertRuleRequest true "Capacity rule"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /settings/rules/{id} [put]
func (h *SettingsHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID",
		})
		return
	}

	var req reqdto.UpsertRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rule := req.ToDomain()
	rule.ID = id
	if err := h.settingsUseCase.UpdateRule(c.Request.Context(), rule); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete capacity rule
// @Tags settings
// @Produce json
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /settings/rules/{id} [delete]
func (h *SettingsHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rule ID",
		})
		return
	}

	if err := h.settingsUseCase.DeleteRule(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create closed day
// @Description Mark a date as fully closed, overriding every rule
// @Tags settings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateClosedDayRequest true "Closed day"
// @Success 201 {object} resdto.ClosedDayResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /settings/exceptions [post]
func (h *SettingsHandler) CreateClosedDay(c *gin.Context) {
	var req reqdto.CreateClosedDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.settingsUseCase.CreateClosedDay(c.Request.Context(), req.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromClosedDay(created))
}

// @Summary Delete closed day
// @Tags settings
// @Produce json
// @Param id path string true "Exception ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /settings/exceptions/{id} [delete]
func (h *SettingsHandler) DeleteClosedDay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid exception ID",
		})
		return
	}

	if err := h.settingsUseCase.DeleteClosedDay(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRuleNotFound), errors.Is(err, usecase.ErrClosedDayNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	case errors.Is(err, usecase.ErrClosedDayDuplicate):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Exception already exists for this date",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
