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

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary List orders
// @Description Orders created on a day, defaulting to today
// @Tags orders
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderUseCase.ListByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

// @Summary Create order
// @Description Create a manual order; missing fields fall back to manual-entry defaults
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.orderUseCase.Create(c.Request.Context(), req.ToDraft())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(created))
}

// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.orderUseCase.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *OrderHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Unknown order status",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
