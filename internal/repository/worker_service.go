package repository

import (
	"workjunction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerServiceRepository handles database operations for worker services
type WorkerServiceRepository struct {
	db *gorm.DB
}

// NewWorkerServiceRepository creates a new worker service repository
func NewWorkerServiceRepository(db *gorm.DB) *WorkerServiceRepository {
	return &WorkerServiceRepository{db: db}
}

// Create creates a new worker service
func (r *WorkerServiceRepository) Create(service *models.WorkerService) error {
	return r.db.Create(service).Error
}

// GetByID retrieves a worker service by ID
func (r *WorkerServiceRepository) GetByID(id uuid.UUID) (*models.WorkerService, error) {
	var service models.WorkerService
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByWorkerID retrieves all services offered by a worker
func (r *WorkerServiceRepository) GetByWorkerID(workerID uuid.UUID) ([]models.WorkerService, error) {
	var services []models.WorkerService
	err := r.db.Where("worker_id = ?", workerID).Order("created_at ASC").Find(&services).Error
	return services, err
}

// GetByCategory retrieves services in a category
func (r *WorkerServiceRepository) GetByCategory(category string, limit, offset int) ([]models.WorkerService, int64, error) {
	var services []models.WorkerService
	var total int64

	if err := r.db.Model(&models.WorkerService{}).Where("category = ?", category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("category = ?", category).Limit(limit).Offset(offset).Find(&services).Error
	return services, total, err
}

// Update updates a worker service
func (r *WorkerServiceRepository) Update(service *models.WorkerService) error {
	return r.db.Save(service).Error
}

// Delete deletes a worker service
func (r *WorkerServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkerService{}, "id = ?", id).Error
}
