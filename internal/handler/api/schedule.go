package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "github.com/gottliebdinh/moggi-admin/internal/handler/dto/response"
	"github.com/gottliebdinh/moggi-admin/internal/handler/httperr"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
	}
}

// @Summary Bookable time slots
// @Description Valid booking start times for a date from the capacity rules and closed days
// @Tags schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Router /schedule/slots [get]
func (h *ScheduleHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	slots, err := h.scheduleUseCase.Slots(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SlotsResponse{Date: date, Slots: slots})
}

// @Summary Default booking time
// @Description Suggested preselected time for the booking form
// @Tags schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DefaultTimeResponse
// @Failure 400 {object} map[string]string
// @Router /schedule/default-time [get]
func (h *ScheduleHandler) DefaultTime(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	picked, ok, err := h.scheduleUseCase.DefaultTime(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := resdto.DefaultTimeResponse{Date: date}
	if ok {
		resp.Time = &picked
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Table availability
// @Description Tag every table free or occupied for a prospective reservation
// @Tags schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Start time (HH:MM)"
// @Param duration query int false "Duration in minutes (default 120)"
// @Param exclude query string false "Reservation ID to ignore (self, when editing)"
// @Success 200 {array} resdto.TableAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /schedule/availability [get]
func (h *ScheduleHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	candidateTime := c.Query("time")
	if date == "" || candidateTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date and time query parameters are required",
		})
		return
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "duration must be a non-negative integer",
			})
			return
		}
		duration = parsed
	}

	excludeID := uuid.Nil
	if raw := c.Query("exclude"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "exclude must be a valid reservation ID",
			})
			return
		}
		excludeID = parsed
	}

	availability, err := h.scheduleUseCase.Availability(c.Request.Context(), date, candidateTime, duration, excludeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// @Summary Capacity fit
// @Description Classify how well the selected tables' capacity fits the party size
// @Tags schedule
// @Produce json
// @Param capacity query int true "Total capacity of the selected tables"
// @Param guests query int true "Party size"
// @Success 200 {object} resdto.FitResponse
// @Failure 400 {object} map[string]string
// @Router /schedule/fit [get]
func (h *ScheduleHandler) Fit(c *gin.Context) {
	capacity, err := strconv.Atoi(c.Query("capacity"))
	if err != nil || capacity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "capacity must be a non-negative integer",
		})
		return
	}
	guests, err := strconv.Atoi(c.Query("guests"))
	if err != nil || guests < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "guests must be a positive integer",
		})
		return
	}

	fit := h.scheduleUseCase.Fit(capacity, guests)
	c.JSON(http.StatusOK, resdto.FitResponse{Fit: string(fit)})
}

func (h *ScheduleHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrInvalidScheduleQuery) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time",
		})
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
