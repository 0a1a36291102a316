package repository

import (
	"workjunction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerFilter narrows worker listings
type WorkerFilter struct {
	City               string
	Category           string
	VerificationStatus models.VerificationStatus
	AvailabilityStatus models.AvailabilityStatus
}

// WorkerRepository handles database operations for worker profiles
type WorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// Create creates a new worker profile
func (r *WorkerRepository) Create(worker *models.WorkerProfile) error {
	return r.db.Create(worker).Error
}

// GetByID retrieves a worker profile by ID
func (r *WorkerRepository) GetByID(id uuid.UUID) (*models.WorkerProfile, error) {
	var worker models.WorkerProfile
	err := r.db.First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByUserID retrieves a worker profile by its owning user ID
func (r *WorkerRepository) GetByUserID(userID uuid.UUID) (*models.WorkerProfile, error) {
	var worker models.WorkerProfile
	err := r.db.First(&worker, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetWithRelations retrieves a worker profile with user, services and documents preloaded
func (r *WorkerRepository) GetWithRelations(id uuid.UUID) (*models.WorkerProfile, error) {
	var worker models.WorkerProfile
	err := r.db.Preload("User").Preload("Services").Preload("Documents").First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetAll retrieves worker profiles matching the filter
func (r *WorkerRepository) GetAll(filter WorkerFilter, limit, offset int) ([]models.WorkerProfile, int64, error) {
	var workers []models.WorkerProfile
	var total int64

	query := r.db.Model(&models.WorkerProfile{})
	if filter.City != "" {
		query = query.Where("city ILIKE ?", filter.City)
	}
	if filter.VerificationStatus != "" {
		query = query.Where("verification_status = ?", filter.VerificationStatus)
	}
	if filter.AvailabilityStatus != "" {
		query = query.Where("availability_status = ?", filter.AvailabilityStatus)
	}
	if filter.Category != "" {
		query = query.Where("id IN (?)", r.db.Model(&models.WorkerService{}).Select("worker_id").Where("category = ?", filter.Category))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").Preload("Services").Order("created_at DESC").Limit(limit).Offset(offset).Find(&workers).Error
	return workers, total, err
}

// GetByVerificationStatus retrieves worker profiles in a verification state
func (r *WorkerRepository) GetByVerificationStatus(status models.VerificationStatus, limit, offset int) ([]models.WorkerProfile, int64, error) {
	var workers []models.WorkerProfile
	var total int64

	if err := r.db.Model(&models.WorkerProfile{}).Where("verification_status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("verification_status = ?", status).Preload("User").Preload("Documents").Order("created_at ASC").Limit(limit).Offset(offset).Find(&workers).Error
	return workers, total, err
}

// Update updates a worker profile
func (r *WorkerRepository) Update(worker *models.WorkerProfile) error {
	return r.db.Save(worker).Error
}

// ReplaceTimetable atomically replaces the whole weekly timetable column
func (r *WorkerRepository) ReplaceTimetable(id uuid.UUID, timetable models.WeeklyTimetable) error {
	return r.updateColumn(id, "timetable", timetable)
}

// ReplaceNonAvailability atomically replaces the whole non-availability column
func (r *WorkerRepository) ReplaceNonAvailability(id uuid.UUID, slots models.NonAvailabilitySlots) error {
	return r.updateColumn(id, "non_availability", slots)
}

// UpdateAvailabilityStatus sets the worker's manual status flag
func (r *WorkerRepository) UpdateAvailabilityStatus(id uuid.UUID, status models.AvailabilityStatus) error {
	return r.updateColumn(id, "availability_status", status)
}

// UpdateVerification sets the worker's verification state and reviewer note
func (r *WorkerRepository) UpdateVerification(id uuid.UUID, status models.VerificationStatus, note string) error {
	result := r.db.Model(&models.WorkerProfile{}).Where("id = ?", id).Updates(map[string]interface{}{
		"verification_status": status,
		"verification_note":   note,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkerRepository) updateColumn(id uuid.UUID, column string, value interface{}) error {
	result := r.db.Model(&models.WorkerProfile{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft-deletes a worker profile
func (r *WorkerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkerProfile{}, "id = ?", id).Error
}
