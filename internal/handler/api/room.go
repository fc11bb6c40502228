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

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
	}
}

// @Summary List rooms
// @Description Rooms with their tables nested
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.roomUseCase.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.roomUseCase.CreateRoom(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoom(created))
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.UpsertRoomRequest true "Room"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	var req reqdto.UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomUseCase.UpdateRoom(c.Request.Context(), id, req.Name, req.Description); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Description Delete a room and, via cascade, its tables
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID",
		})
		return
	}

	if err := h.roomUseCase.DeleteRoom(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List tables
// @Tags tables
// @Produce json
// @Success 200 {array} resdto.TableResponse
// @Router /tables [get]
func (h *RoomHandler) ListTables(c *gin.Context) {
	tables, err := h.roomUseCase.ListTables(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTables(tables))
}

// @Summary Create table
// @Tags tables
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTableRequest true "Table"
// @Success 201 {object} resdto.TableResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /tables [post]
func (h *RoomHandler) CreateTable(c *gin.Context) {
	var req reqdto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.roomUseCase.CreateTable(c.Request.Context(), req.RoomID, req.Name, req.Capacity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTable(created))
}

// @Summary Update table
// @Tags tables
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param request body reqdto.UpdateTableRequest true "Table"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /tables/{id} [put]
func (h *RoomHandler) UpdateTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID",
		})
		return
	}

	var req reqdto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomUseCase.UpdateTable(c.Request.Context(), id, req.Name, req.Capacity); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete table
// @Tags tables
// @Produce json
// @Param id path string true "Table ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /tables/{id} [delete]
func (h *RoomHandler) DeleteTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID",
		})
		return
	}

	if err := h.roomUseCase.DeleteTable(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errors.Is(err, usecase.ErrTableNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Table not found",
		})
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
