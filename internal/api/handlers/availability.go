package handlers

import (
	"errors"
	"net/http"
	"time"

	"workjunction-backend/internal/auth"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for the worker scheduling model:
// the weekly timetable, non-availability windows, effective availability and
// the manual status flag
type AvailabilityHandler struct {
	availabilityService service.AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService service.AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// myProfileID resolves the authenticated user to their worker profile
func (h *AvailabilityHandler) myProfileID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	workerID, err := h.availabilityService.ProfileIDForUser(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return uuid.Nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve worker profile", "details": err.Error()})
		return uuid.Nil, false
	}
	return workerID, true
}

func (h *AvailabilityHandler) respondScheduleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrWorkerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// GetMyTimetable handles GET /api/v1/workers/me/timetable
// @Summary Get own weekly timetable
// @Description Get the authenticated worker's recurring weekly timetable
// @Tags availability
// @Accept json
// @Produce json
// @Success 200 {object} service.TimetableResponse "Weekly timetable"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/timetable [get]
func (h *AvailabilityHandler) GetMyTimetable(c *gin.Context) {
	workerID, ok := h.myProfileID(c)
	if !ok {
		return
	}

	resp, err := h.availabilityService.GetTimetable(workerID)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to get timetable")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReplaceMyTimetable handles PUT /api/v1/workers/me/timetable
// @Summary Replace own weekly timetable
// @Description Atomically replace the whole recurring weekly timetable
// @Tags availability
// @Accept json
// @Produce json
// @Param request body service.ReplaceTimetableRequest true "Weekly timetable"
// @Success 200 {object} service.TimetableResponse "Stored timetable"
// @Failure 400 {object} map[string]interface{} "Invalid timetable"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/timetable [put]
func (h *AvailabilityHandler) ReplaceMyTimetable(c *gin.Context) {
	workerID, ok := h.myProfileID(c)
	if !ok {
		return
	}

	var req service.ReplaceTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.availabilityService.ReplaceTimetable(workerID, &req)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to replace timetable")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorkerTimetable handles GET /api/v1/workers/:id/timetable
// @Summary Get a worker's weekly timetable
// @Description Get the recurring weekly timetable of a worker, for customers and agents
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Worker profile ID (UUID)"
// @Success 200 {object} service.TimetableResponse "Weekly timetable"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Security BearerAuth
// @Router /workers/{id}/timetable [get]
func (h *AvailabilityHandler) GetWorkerTimetable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	resp, err := h.availabilityService.GetTimetable(id)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to get timetable")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddNonAvailability handles POST /api/v1/workers/me/non-availability
// @Summary Add a non-availability window
// @Description Block out an absolute date-time window; overlapping windows are rejected
// @Tags availability
// @Accept json
// @Produce json
// @Param request body service.AddNonAvailabilityRequest true "Window to block"
// @Success 201 {object} service.NonAvailabilityListResponse "Updated window list"
// @Failure 400 {object} map[string]interface{} "Invalid window"
// @Failure 409 {object} map[string]interface{} "Window overlaps an existing one"
// @Security BearerAuth
// @Router /workers/me/non-availability [post]
func (h *AvailabilityHandler) AddNonAvailability(c *gin.Context) {
	workerID, ok := h.myProfileID(c)
	if !ok {
		return
	}

	var req service.AddNonAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.availabilityService.AddNonAvailability(workerID, &req)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to add non-availability")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RemoveNonAvailability handles DELETE /api/v1/workers/me/non-availability/:slotId
// @Summary Remove a non-availability window
// @Description Remove a blocked window by identifier; unknown identifiers are a no-op
// @Tags availability
// @Accept json
// @Produce json
// @Param slotId path string true "Window ID (UUID)"
// @Success 200 {object} service.NonAvailabilityListResponse "Updated window list"
// @Failure 400 {object} map[string]interface{} "Invalid window ID"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/non-availability/{slotId} [delete]
func (h *AvailabilityHandler) RemoveNonAvailability(c *gin.Context) {
	workerID, ok := h.myProfileID(c)
	if !ok {
		return
	}

	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot ID: invalid UUID format"})
		return
	}

	resp, err := h.availabilityService.RemoveNonAvailability(workerID, slotID)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to remove non-availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListNonAvailability handles GET /api/v1/workers/me/non-availability
// @Summary List own non-availability windows
// @Description Get blocked windows sorted by start, optionally bounded by from and to
// @Tags availability
// @Accept json
// @Produce json
// @Param from query string false "Lower bound (RFC 3339)"
// @Param to query string false "Upper bound (RFC 3339)"
// @Success 200 {object} service.NonAvailabilityListResponse "Window list"
// @Failure 400 {object} map[string]interface{} "Invalid bound"
// @Security BearerAuth
// @Router /workers/me/non-availability [get]
func (h *AvailabilityHandler) ListNonAvailability(c *gin.Context) {
	workerID, ok := h.myProfileID(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from bound: expected RFC 3339 timestamp"})
			return
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to bound: expected RFC 3339 timestamp"})
			return
		}
		to = &parsed
	}

	resp, err := h.availabilityService.ListNonAvailability(workerID, from, to)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to list non-availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorkerAvailability handles GET /api/v1/workers/:id/availability
// @Summary Get a worker's effective availability for a date
// @Description Resolve the weekly timetable against blocked windows for one calendar date
// @Tags availability
// @Accept json
// @Produce json
// @Param id path string true "Worker profile ID (UUID)"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} service.AvailabilityResponse "Effective availability"
// @Failure 400 {object} map[string]interface{} "Missing or malformed date"
// @Failure 404 {object} map[string]interface{} "Worker not found"
// @Router /workers/{id}/availability [get]
func (h *AvailabilityHandler) GetWorkerAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid worker ID: invalid UUID format"})
		return
	}

	resp, err := h.availabilityService.Resolve(id, c.Query("date"))
	if err != nil {
		h.respondScheduleError(c, err, "Failed to resolve availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMyStatus handles GET /api/v1/workers/me/status
// @Summary Get own availability status
// @Description Get the authenticated worker's manual availability flag
// @Tags availability
// @Accept json
// @Produce json
// @Success 200 {object} service.StatusResponse "Availability status"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/status [get]
func (h *AvailabilityHandler) GetMyStatus(c *gin.Context) {
	workerID, ok := h.myProfileID(c)
	if !ok {
		return
	}

	resp, err := h.availabilityService.GetStatus(workerID)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to get status")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetMyStatus handles PATCH /api/v1/workers/me/status
// @Summary Set own availability status
// @Description Set the manual availability flag to available, busy or off-duty
// @Tags availability
// @Accept json
// @Produce json
// @Param request body service.SetStatusRequest true "New status"
// @Success 200 {object} service.StatusResponse "Stored status"
// @Failure 400 {object} map[string]interface{} "Unknown status value"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/status [patch]
func (h *AvailabilityHandler) SetMyStatus(c *gin.Context) {
	workerID, ok := h.myProfileID(c)
	if !ok {
		return
	}

	var req service.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.availabilityService.SetStatus(workerID, &req)
	if err != nil {
		h.respondScheduleError(c, err, "Failed to set status")
		return
	}

	c.JSON(http.StatusOK, resp)
}
