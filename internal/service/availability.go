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

// AvailabilityService handles the worker scheduling model: the weekly
// timetable, non-availability exceptions, the manual status flag and
// effective-availability resolution
type AvailabilityService struct {
	workerRepo repository.WorkerRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(workerRepo repository.WorkerRepositoryInterface, validator *validator.Validate) *AvailabilityService {
	return &AvailabilityService{
		workerRepo: workerRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// ReplaceTimetableRequest carries a complete weekly timetable, either as the
// weekday-keyed mapping or as the flattened editing form. Missing weekdays
// are allowed and treated as empty.
type ReplaceTimetableRequest struct {
	Timetable models.WeeklyTimetable    `json:"timetable,omitempty"`
	FlatSlots []schedule.FlatWeeklySlot `json:"flat_slots,omitempty"`
}

// AddNonAvailabilityRequest represents the request to add an exception
// window, either as absolute timestamps or as the flattened date + wall-clock
// editing form
type AddNonAvailabilityRequest struct {
	StartDateTime time.Time `json:"start_date_time,omitempty"`
	EndDateTime   time.Time `json:"end_date_time,omitempty"`
	Date          string    `json:"date,omitempty"`
	StartTime     string    `json:"start_time,omitempty"`
	EndTime       string    `json:"end_time,omitempty"`
	Reason        string    `json:"reason" validate:"max=500"`
}

// SetStatusRequest represents the request to set the manual status flag
type SetStatusRequest struct {
	Status models.AvailabilityStatus `json:"status" validate:"required"`
}

// TimetableResponse carries the stored weekly timetable in both the
// weekday-keyed and the flattened editing form
type TimetableResponse struct {
	Timetable models.WeeklyTimetable    `json:"timetable"`
	FlatSlots []schedule.FlatWeeklySlot `json:"flat_slots"`
}

// NonAvailabilityListResponse carries the worker's exception windows sorted
// by start timestamp
type NonAvailabilityListResponse struct {
	Slots     []models.NonAvailabilitySlot `json:"slots"`
	FlatSlots []schedule.FlatCustomSlot    `json:"flat_slots"`
}

// StatusResponse carries the manual availability flag
type StatusResponse struct {
	Status models.AvailabilityStatus `json:"status"`
}

// AvailabilityResponse is the effective availability for one calendar date
type AvailabilityResponse struct {
	Date       string                    `json:"date"`
	Weekday    models.Weekday            `json:"weekday"`
	Status     models.AvailabilityStatus `json:"status"`
	Regular    []models.TimeInterval     `json:"regular"`
	Exceptions []schedule.FlatCustomSlot `json:"exceptions"`
	Effective  []models.TimeInterval     `json:"effective"`
}

// ProfileIDForUser maps an authenticated user to their worker profile ID
func (s *AvailabilityService) ProfileIDForUser(userID uuid.UUID) (uuid.UUID, error) {
	worker, err := s.getByUserID(userID)
	if err != nil {
		return uuid.Nil, err
	}
	return worker.ID, nil
}

// GetTimetable returns the worker's stored weekly timetable with all seven
// weekday keys materialized
func (s *AvailabilityService) GetTimetable(workerID uuid.UUID) (*TimetableResponse, error) {
	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}
	return s.toTimetableResponse(worker.Timetable), nil
}

// ReplaceTimetable validates and atomically replaces the whole weekly
// timetable, returning the new stored mapping
func (s *AvailabilityService) ReplaceTimetable(workerID uuid.UUID, req *ReplaceTimetableRequest) (*TimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	timetable := req.Timetable
	if timetable == nil {
		if req.FlatSlots == nil {
			return nil, apperrors.NewValidationError("timetable", "is required")
		}
		timetable = schedule.FromFlatWeeklySlots(req.FlatSlots)
	}

	if err := schedule.ValidateTimetable(timetable); err != nil {
		return nil, err
	}

	normalized := schedule.Normalize(timetable)
	if err := s.workerRepo.ReplaceTimetable(workerID, normalized); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to replace timetable: %w", err)
	}

	return s.toTimetableResponse(normalized), nil
}

// AddNonAvailability appends an exception window after checking chronology
// and pairwise overlap against every existing window
func (s *AvailabilityService) AddNonAvailability(workerID uuid.UUID, req *AddNonAvailabilityRequest) (*NonAvailabilityListResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	start, end := req.StartDateTime, req.EndDateTime
	if req.Date != "" {
		var err error
		start, end, _, err = schedule.FromFlatCustomSlot(schedule.FlatCustomSlot{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			return nil, err
		}
	}
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.NewValidationError("start_date_time", "is required")
	}

	if err := schedule.ValidateExceptionWindow(start, end, s.now()); err != nil {
		return nil, err
	}

	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}

	if schedule.OverlapsAny(worker.NonAvailability, start, end) {
		return nil, apperrors.NewConflictError("window overlaps an existing non-availability slot")
	}

	slots := append(worker.NonAvailability, models.NonAvailabilitySlot{
		ID:            uuid.New(),
		StartDateTime: start,
		EndDateTime:   end,
		Reason:        req.Reason,
	})

	if err := s.workerRepo.ReplaceNonAvailability(workerID, slots); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to persist non-availability: %w", err)
	}

	return s.toNonAvailabilityResponse(slots), nil
}

// RemoveNonAvailability removes an exception window by identifier. Removing
// an unknown identifier is a no-op; the current list is returned either way.
func (s *AvailabilityService) RemoveNonAvailability(workerID, slotID uuid.UUID) (*NonAvailabilityListResponse, error) {
	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}

	kept := make(models.NonAvailabilitySlots, 0, len(worker.NonAvailability))
	removed := false
	for _, slot := range worker.NonAvailability {
		if slot.ID == slotID {
			removed = true
			continue
		}
		kept = append(kept, slot)
	}

	if removed {
		if err := s.workerRepo.ReplaceNonAvailability(workerID, kept); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrWorkerNotFound
			}
			return nil, fmt.Errorf("failed to persist non-availability: %w", err)
		}
	}

	return s.toNonAvailabilityResponse(kept), nil
}

// ListNonAvailability returns exception windows sorted by start timestamp.
// When both bounds are given, only windows starting within [from, to] are
// returned.
func (s *AvailabilityService) ListNonAvailability(workerID uuid.UUID, from, to *time.Time) (*NonAvailabilityListResponse, error) {
	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}

	slots := worker.NonAvailability
	if from != nil && to != nil {
		filtered := make(models.NonAvailabilitySlots, 0, len(slots))
		for _, slot := range slots {
			if !slot.StartDateTime.Before(*from) && !slot.StartDateTime.After(*to) {
				filtered = append(filtered, slot)
			}
		}
		slots = filtered
	}

	return s.toNonAvailabilityResponse(slots), nil
}

// Resolve computes the effective availability for one calendar date
func (s *AvailabilityService) Resolve(workerID uuid.UUID, date string) (*AvailabilityResponse, error) {
	if date == "" {
		return nil, apperrors.NewValidationError("date", "is required")
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "must be a YYYY-MM-DD calendar date")
	}

	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}

	resolution := schedule.Resolve(worker.Timetable, worker.NonAvailability, day)

	return &AvailabilityResponse{
		Date:       date,
		Weekday:    resolution.Weekday,
		Status:     s.statusOrDefault(worker.AvailabilityStatus),
		Regular:    resolution.Regular,
		Exceptions: schedule.ToFlatCustomSlots(resolution.Exceptions),
		Effective:  resolution.Effective,
	}, nil
}

// SetStatus sets the manual availability flag
func (s *AvailabilityService) SetStatus(workerID uuid.UUID, req *SetStatusRequest) (*StatusResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of available, busy, off-duty")
	}

	if err := s.workerRepo.UpdateAvailabilityStatus(workerID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to set status: %w", err)
	}

	return &StatusResponse{Status: req.Status}, nil
}

// GetStatus returns the manual availability flag, defaulting to available
func (s *AvailabilityService) GetStatus(workerID uuid.UUID) (*StatusResponse, error) {
	worker, err := s.getWorker(workerID)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{Status: s.statusOrDefault(worker.AvailabilityStatus)}, nil
}

func (s *AvailabilityService) getWorker(workerID uuid.UUID) (*models.WorkerProfile, error) {
	worker, err := s.workerRepo.GetByID(workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return worker, nil
}

func (s *AvailabilityService) getByUserID(userID uuid.UUID) (*models.WorkerProfile, error) {
	worker, err := s.workerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return worker, nil
}

func (s *AvailabilityService) statusOrDefault(status models.AvailabilityStatus) models.AvailabilityStatus {
	if status == "" {
		return models.AvailabilityStatusAvailable
	}
	return status
}

func (s *AvailabilityService) toTimetableResponse(timetable models.WeeklyTimetable) *TimetableResponse {
	normalized := schedule.Normalize(timetable)
	return &TimetableResponse{
		Timetable: normalized,
		FlatSlots: schedule.ToFlatWeeklySlots(normalized),
	}
}

func (s *AvailabilityService) toNonAvailabilityResponse(slots models.NonAvailabilitySlots) *NonAvailabilityListResponse {
	sorted := schedule.SortSlots(slots)
	return &NonAvailabilityListResponse{
		Slots:     sorted,
		FlatSlots: schedule.ToFlatCustomSlots(sorted),
	}
}
