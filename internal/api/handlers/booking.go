package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"workjunction-backend/internal/auth"
	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler handles HTTP requests for the booking lifecycle
type BookingHandler struct {
	bookingService service.BookingServiceInterface
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// statusFilter parses an optional booking status query parameter
func statusFilter(c *gin.Context) (models.BookingStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return "", true
	}
	status := models.BookingStatus(raw)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown booking status"})
		return "", false
	}
	return status, true
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrWorkerNotFound),
		errors.Is(err, apperrors.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrBookingConflict), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrWorkerNotVerified), errors.Is(err, apperrors.ErrWorkerNotBookable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidStatusTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// CreateBooking handles POST /api/v1/bookings
// @Summary Book a worker
// @Description Create a pending booking for a worker on a date and time interval
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body service.CreateBookingRequest true "Booking data"
// @Success 201 {object} service.BookingResponse "Created booking"
// @Failure 400 {object} map[string]interface{} "Invalid booking"
// @Failure 409 {object} map[string]interface{} "Time conflict with an existing booking"
// @Failure 422 {object} map[string]interface{} "Worker not bookable"
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.bookingService.Create(userID, &req)
	if err != nil {
		h.respondBookingError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBooking handles GET /api/v1/bookings/:id
// @Summary Get a booking
// @Description Get a booking visible to the authenticated participant
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Success 200 {object} service.BookingResponse "Booking"
// @Failure 403 {object} map[string]interface{} "Booking involves other users"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID: invalid UUID format"})
		return
	}

	booking, err := h.bookingService.GetByID(userID, id)
	if err != nil {
		h.respondBookingError(c, err, "Failed to get booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListMyBookings handles GET /api/v1/bookings
// @Summary List own bookings as customer
// @Description Get the authenticated customer's bookings, optionally filtered by status
// @Tags bookings
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BookingListResponse "Bookings"
// @Failure 400 {object} map[string]interface{} "Unknown status"
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	status, ok := statusFilter(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.bookingService.ListForCustomer(userID, status, page, pageSize)
	if err != nil {
		h.respondBookingError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListWorkerBookings handles GET /api/v1/workers/me/bookings
// @Summary List own bookings as worker
// @Description Get the bookings placed with the authenticated worker
// @Tags bookings
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BookingListResponse "Bookings"
// @Failure 404 {object} map[string]interface{} "Worker profile not found"
// @Security BearerAuth
// @Router /workers/me/bookings [get]
func (h *BookingHandler) ListWorkerBookings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	status, ok := statusFilter(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.bookingService.ListForWorker(userID, status, page, pageSize)
	if err != nil {
		h.respondBookingError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBookingStatus handles PATCH /api/v1/bookings/:id/status
// @Summary Update booking status
// @Description Apply a lifecycle transition: workers confirm, decline and complete, customers cancel
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Param request body service.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} service.BookingResponse "Updated booking"
// @Failure 403 {object} map[string]interface{} "Booking involves other users"
// @Failure 404 {object} map[string]interface{} "Booking not found"
// @Failure 409 {object} map[string]interface{} "Transition not allowed"
// @Security BearerAuth
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID: invalid UUID format"})
		return
	}

	var req service.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(userID, id, &req)
	if err != nil {
		h.respondBookingError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}
