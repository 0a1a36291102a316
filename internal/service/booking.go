package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/repository"
	"workjunction-backend/internal/schedule"
)

// BookingService handles the booking lifecycle between customers and workers
type BookingService struct {
	bookingRepo repository.BookingRepositoryInterface
	workerRepo  repository.WorkerRepositoryInterface
	serviceRepo repository.WorkerServiceRepositoryInterface
	validator   *validator.Validate
	now         func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepositoryInterface,
	workerRepo repository.WorkerRepositoryInterface,
	serviceRepo repository.WorkerServiceRepositoryInterface,
	validator *validator.Validate,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		workerRepo:  workerRepo,
		serviceRepo: serviceRepo,
		validator:   validator,
		now:         time.Now,
	}
}

// CreateBookingRequest represents the request to book a worker
type CreateBookingRequest struct {
	WorkerID  uuid.UUID  `json:"worker_id" validate:"required"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	Date      string     `json:"date" validate:"required"`
	StartTime string     `json:"start_time" validate:"required"`
	EndTime   string     `json:"end_time" validate:"required"`
	Notes     string     `json:"notes" validate:"max=500"`
}

// UpdateBookingStatusRequest represents a booking lifecycle transition
type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" validate:"required"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID         uuid.UUID            `json:"id"`
	CustomerID uuid.UUID            `json:"customer_id"`
	WorkerID   uuid.UUID            `json:"worker_id"`
	ServiceID  *uuid.UUID           `json:"service_id,omitempty"`
	Date       string               `json:"date"`
	StartTime  string               `json:"start_time"`
	EndTime    string               `json:"end_time"`
	Status     models.BookingStatus `json:"status"`
	Notes      string               `json:"notes,omitempty"`
	CreatedAt  string               `json:"created_at"`
}

// BookingListResponse represents a paginated list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create books a worker for a date and wall-clock interval
func (s *BookingService) Create(customerID uuid.UUID, req *CreateBookingRequest) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !schedule.IsValidClockTime(req.StartTime) {
		return nil, apperrors.NewValidationError("start_time", "must be a zero-padded 24-hour HH:MM time")
	}
	if !schedule.IsValidClockTime(req.EndTime) {
		return nil, apperrors.NewValidationError("end_time", "must be a zero-padded 24-hour HH:MM time")
	}
	if req.StartTime >= req.EndTime {
		return nil, apperrors.NewValidationError("start_time", "must precede end_time")
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be a YYYY-MM-DD calendar date")
	}
	// The request date parses as local midnight, so compute today in the same
	// zone. Truncate would cut to UTC midnight and misjudge same-day requests.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if date.Before(today) {
		return nil, apperrors.NewValidationError("date", "must not be in the past")
	}

	worker, err := s.workerRepo.GetByID(req.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	if worker.VerificationStatus != models.VerificationStatusVerified {
		return nil, apperrors.ErrWorkerNotVerified
	}
	if worker.AvailabilityStatus == models.AvailabilityStatusOffDuty {
		return nil, apperrors.ErrWorkerNotBookable
	}

	if req.ServiceID != nil {
		service, err := s.serviceRepo.GetByID(*req.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrServiceNotFound
			}
			return nil, fmt.Errorf("failed to get service: %w", err)
		}
		if service.WorkerID != worker.ID {
			return nil, apperrors.NewValidationError("service_id", "service is not offered by this worker")
		}
	}

	resolution := schedule.Resolve(worker.Timetable, worker.NonAvailability, date)
	if !schedule.Covers(resolution.Effective, req.StartTime, req.EndTime) {
		return nil, apperrors.NewConflictError("requested interval is outside the worker's availability")
	}

	conflict, err := s.bookingRepo.CheckConflict(worker.ID, date, req.StartTime, req.EndTime, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check booking conflict: %w", err)
	}
	if conflict {
		return nil, apperrors.ErrBookingConflict
	}

	booking := &models.Booking{
		CustomerID: customerID,
		WorkerID:   worker.ID,
		ServiceID:  req.ServiceID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     models.BookingStatusPending,
		Notes:      req.Notes,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.toResponse(booking), nil
}

// GetByID retrieves a booking visible to the acting user
func (s *BookingService) GetByID(actorUserID, bookingID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if err := s.authorizeActor(actorUserID, booking); err != nil {
		return nil, err
	}
	return s.toResponse(booking), nil
}

// ListForCustomer retrieves a customer's bookings
func (s *BookingService) ListForCustomer(customerID uuid.UUID, status models.BookingStatus, page, pageSize int) (*BookingListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	bookings, total, err := s.bookingRepo.GetByCustomerID(customerID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return s.toListResponse(bookings, total, page, pageSize), nil
}

// ListForWorker retrieves the bookings of the worker owned by a user
func (s *BookingService) ListForWorker(workerUserID uuid.UUID, status models.BookingStatus, page, pageSize int) (*BookingListResponse, error) {
	worker, err := s.workerRepo.GetByUserID(workerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	page, pageSize = normalizePage(page, pageSize)
	bookings, total, err := s.bookingRepo.GetByWorkerID(worker.ID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return s.toListResponse(bookings, total, page, pageSize), nil
}

// UpdateStatus applies a lifecycle transition requested by a participant.
// Workers confirm, decline and complete; customers cancel; either side can
// cancel a confirmed booking.
func (s *BookingService) UpdateStatus(actorUserID, bookingID uuid.UUID, req *UpdateBookingStatusRequest) (*BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown booking status")
	}

	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	isWorker, err := s.actorIsWorker(actorUserID, booking)
	if err != nil {
		return nil, err
	}
	isCustomer := booking.CustomerID == actorUserID
	if !isWorker && !isCustomer {
		return nil, apperrors.NewAuthorizationError("booking does not involve this user")
	}

	if !transitionAllowed(booking.Status, req.Status, isWorker) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if err := s.bookingRepo.UpdateStatus(booking.ID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	return s.toResponse(booking), nil
}

// transitionAllowed encodes the booking lifecycle:
// pending -> confirmed | declined (worker), pending -> cancelled (customer),
// confirmed -> completed (worker), confirmed -> cancelled (either side)
func transitionAllowed(from, to models.BookingStatus, actorIsWorker bool) bool {
	switch from {
	case models.BookingStatusPending:
		if actorIsWorker {
			return to == models.BookingStatusConfirmed || to == models.BookingStatusDeclined
		}
		return to == models.BookingStatusCancelled
	case models.BookingStatusConfirmed:
		if to == models.BookingStatusCancelled {
			return true
		}
		return actorIsWorker && to == models.BookingStatusCompleted
	}
	return false
}

func (s *BookingService) actorIsWorker(actorUserID uuid.UUID, booking *models.Booking) (bool, error) {
	worker, err := s.workerRepo.GetByID(booking.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrWorkerNotFound
		}
		return false, fmt.Errorf("failed to get worker: %w", err)
	}
	return worker.UserID == actorUserID, nil
}

func (s *BookingService) authorizeActor(actorUserID uuid.UUID, booking *models.Booking) error {
	if booking.CustomerID == actorUserID {
		return nil
	}
	isWorker, err := s.actorIsWorker(actorUserID, booking)
	if err != nil {
		return err
	}
	if !isWorker {
		return apperrors.NewAuthorizationError("booking does not involve this user")
	}
	return nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// toResponse converts a booking model to response
func (s *BookingService) toResponse(booking *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         booking.ID,
		CustomerID: booking.CustomerID,
		WorkerID:   booking.WorkerID,
		ServiceID:  booking.ServiceID,
		Date:       booking.Date.Format("2006-01-02"),
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Status:     booking.Status,
		Notes:      booking.Notes,
		CreatedAt:  booking.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *BookingService) toListResponse(bookings []models.Booking, total int64, page, pageSize int) *BookingListResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *s.toResponse(&booking)
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
