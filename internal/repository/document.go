package repository

import (
	"workjunction-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for verification documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new verification document record
func (r *DocumentRepository) Create(document *models.VerificationDocument) error {
	return r.db.Create(document).Error
}

// GetByID retrieves a verification document by ID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.VerificationDocument, error) {
	var document models.VerificationDocument
	err := r.db.First(&document, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// GetByWorkerID retrieves all documents submitted by a worker
func (r *DocumentRepository) GetByWorkerID(workerID uuid.UUID) ([]models.VerificationDocument, error) {
	var documents []models.VerificationDocument
	err := r.db.Where("worker_id = ?", workerID).Order("created_at ASC").Find(&documents).Error
	return documents, err
}

// Delete deletes a verification document record
func (r *DocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.VerificationDocument{}, "id = ?", id).Error
}
