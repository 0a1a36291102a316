package repository

import (
	"time"

	"workjunction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetWithRelations retrieves a booking with customer, worker and service preloaded
func (r *BookingRepository) GetWithRelations(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Customer").Preload("Worker").Preload("Service").First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByCustomerID retrieves all bookings made by a customer
func (r *BookingRepository) GetByCustomerID(customerID uuid.UUID, status models.BookingStatus, limit, offset int) ([]models.Booking, int64, error) {
	return r.list("customer_id", customerID, status, limit, offset)
}

// GetByWorkerID retrieves all bookings for a worker
func (r *BookingRepository) GetByWorkerID(workerID uuid.UUID, status models.BookingStatus, limit, offset int) ([]models.Booking, int64, error) {
	return r.list("worker_id", workerID, status, limit, offset)
}

func (r *BookingRepository) list(column string, id uuid.UUID, status models.BookingStatus, limit, offset int) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	query := r.db.Model(&models.Booking{}).Where(column+" = ?", id)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Customer").Preload("Worker").Preload("Service").
		Order("date DESC, start_time DESC").Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, total, err
}

// Update updates a booking
func (r *BookingRepository) Update(booking *models.Booking) error {
	return r.db.Save(booking).Error
}

// UpdateStatus sets a booking's status
func (r *BookingRepository) UpdateStatus(id uuid.UUID, status models.BookingStatus) error {
	result := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CheckConflict checks whether a worker already has a pending or confirmed
// booking overlapping the half-open interval [startTime, endTime) on a date
func (r *BookingRepository) CheckConflict(workerID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Booking{}).Where(
		"worker_id = ? AND date = ? AND start_time < ? AND end_time > ? AND status IN ?",
		workerID, date, endTime, startTime,
		[]models.BookingStatus{models.BookingStatusPending, models.BookingStatusConfirmed},
	)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
