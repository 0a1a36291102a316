package repository

import (
	"time"

	"workjunction-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithWorkerProfile(id uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	SetEmailVerified(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// WorkerRepositoryInterface defines the interface for worker repository operations
type WorkerRepositoryInterface interface {
	Create(worker *models.WorkerProfile) error
	GetByID(id uuid.UUID) (*models.WorkerProfile, error)
	GetByUserID(userID uuid.UUID) (*models.WorkerProfile, error)
	GetWithRelations(id uuid.UUID) (*models.WorkerProfile, error)
	GetAll(filter WorkerFilter, limit, offset int) ([]models.WorkerProfile, int64, error)
	GetByVerificationStatus(status models.VerificationStatus, limit, offset int) ([]models.WorkerProfile, int64, error)
	Update(worker *models.WorkerProfile) error
	ReplaceTimetable(id uuid.UUID, timetable models.WeeklyTimetable) error
	ReplaceNonAvailability(id uuid.UUID, slots models.NonAvailabilitySlots) error
	UpdateAvailabilityStatus(id uuid.UUID, status models.AvailabilityStatus) error
	UpdateVerification(id uuid.UUID, status models.VerificationStatus, note string) error
	Delete(id uuid.UUID) error
}

// WorkerServiceRepositoryInterface defines the interface for worker service repository operations
type WorkerServiceRepositoryInterface interface {
	Create(service *models.WorkerService) error
	GetByID(id uuid.UUID) (*models.WorkerService, error)
	GetByWorkerID(workerID uuid.UUID) ([]models.WorkerService, error)
	GetByCategory(category string, limit, offset int) ([]models.WorkerService, int64, error)
	Update(service *models.WorkerService) error
	Delete(id uuid.UUID) error
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(document *models.VerificationDocument) error
	GetByID(id uuid.UUID) (*models.VerificationDocument, error)
	GetByWorkerID(workerID uuid.UUID) ([]models.VerificationDocument, error)
	Delete(id uuid.UUID) error
}

// BookingRepositoryInterface defines the interface for booking repository operations
type BookingRepositoryInterface interface {
	Create(booking *models.Booking) error
	GetByID(id uuid.UUID) (*models.Booking, error)
	GetWithRelations(id uuid.UUID) (*models.Booking, error)
	GetByCustomerID(customerID uuid.UUID, status models.BookingStatus, limit, offset int) ([]models.Booking, int64, error)
	GetByWorkerID(workerID uuid.UUID, status models.BookingStatus, limit, offset int) ([]models.Booking, int64, error)
	Update(booking *models.Booking) error
	UpdateStatus(id uuid.UUID, status models.BookingStatus) error
	CheckConflict(workerID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) (bool, error)
}
