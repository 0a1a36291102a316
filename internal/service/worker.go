package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
	"workjunction-backend/internal/repository"
)

// WorkerService handles worker profiles, offered services, verification
// documents and the agent review flow
type WorkerService struct {
	workerRepo  repository.WorkerRepositoryInterface
	serviceRepo repository.WorkerServiceRepositoryInterface
	docRepo     repository.DocumentRepositoryInterface
	validator   *validator.Validate
}

// NewWorkerService creates a new worker service
func NewWorkerService(
	workerRepo repository.WorkerRepositoryInterface,
	serviceRepo repository.WorkerServiceRepositoryInterface,
	docRepo repository.DocumentRepositoryInterface,
	validator *validator.Validate,
) *WorkerService {
	return &WorkerService{
		workerRepo:  workerRepo,
		serviceRepo: serviceRepo,
		docRepo:     docRepo,
		validator:   validator,
	}
}

// UpdateProfileRequest represents the request to update a worker profile
type UpdateProfileRequest struct {
	Bio        *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	HourlyRate *float64 `json:"hourly_rate,omitempty" validate:"omitempty,min=0"`
	City       *string  `json:"city,omitempty" validate:"omitempty,max=100"`
}

// CreateServiceRequest represents the request to add an offered service
type CreateServiceRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Category    string   `json:"category" validate:"required,max=50"`
	Description string   `json:"description" validate:"max=500"`
	Rate        *float64 `json:"rate,omitempty" validate:"omitempty,min=0"`
}

// UpdateServiceRequest represents the request to update an offered service
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Rate        *float64 `json:"rate,omitempty" validate:"omitempty,min=0"`
}

// SubmitDocumentRequest represents the request to submit a verification document
type SubmitDocumentRequest struct {
	Type      models.DocumentType `json:"type" validate:"required"`
	Reference string              `json:"reference" validate:"required,max=500"`
	Note      string              `json:"note" validate:"max=500"`
}

// ReviewWorkerRequest represents an agent's verification decision
type ReviewWorkerRequest struct {
	Status models.VerificationStatus `json:"status" validate:"required"`
	Note   string                    `json:"note" validate:"max=2000"`
}

// WorkerFilterRequest narrows the public worker listing
type WorkerFilterRequest struct {
	City     string
	Category string
}

// WorkerResponse represents a worker profile in API responses
type WorkerResponse struct {
	ID                 uuid.UUID                 `json:"id"`
	UserID             uuid.UUID                 `json:"user_id"`
	FullName           string                    `json:"full_name,omitempty"`
	Bio                string                    `json:"bio"`
	HourlyRate         float64                   `json:"hourly_rate"`
	City               string                    `json:"city"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	VerificationNote   string                    `json:"verification_note,omitempty"`
	AvailabilityStatus models.AvailabilityStatus `json:"availability_status"`
	Services           []ServiceResponse         `json:"services,omitempty"`
	CreatedAt          string                    `json:"created_at"`
}

// WorkerListResponse represents a paginated list of workers
type WorkerListResponse struct {
	Workers  []WorkerResponse `json:"workers"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ServiceResponse represents an offered service in API responses
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	WorkerID    uuid.UUID `json:"worker_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Rate        *float64  `json:"rate,omitempty"`
}

// DocumentResponse represents a verification document in API responses
type DocumentResponse struct {
	ID        uuid.UUID           `json:"id"`
	WorkerID  uuid.UUID           `json:"worker_id"`
	Type      models.DocumentType `json:"type"`
	Reference string              `json:"reference"`
	Note      string              `json:"note,omitempty"`
	CreatedAt string              `json:"created_at"`
}

// GetByUserID retrieves the worker profile owned by a user
func (s *WorkerService) GetByUserID(userID uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.workerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return s.toResponse(worker), nil
}

// GetByID retrieves a worker profile with its services
func (s *WorkerService) GetByID(id uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.workerRepo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return s.toResponse(worker), nil
}

// List retrieves verified workers matching the filter
func (s *WorkerService) List(filter WorkerFilterRequest, page, pageSize int) (*WorkerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	workers, total, err := s.workerRepo.GetAll(repository.WorkerFilter{
		City:               filter.City,
		Category:           filter.Category,
		VerificationStatus: models.VerificationStatusVerified,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]WorkerResponse, len(workers))
	for i, worker := range workers {
		responses[i] = *s.toResponse(&worker)
	}

	return &WorkerListResponse{
		Workers:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateProfile updates the worker profile owned by a user
func (s *WorkerService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*WorkerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	worker, err := s.workerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	if req.Bio != nil {
		worker.Bio = *req.Bio
	}
	if req.HourlyRate != nil {
		worker.HourlyRate = *req.HourlyRate
	}
	if req.City != nil {
		worker.City = *req.City
	}

	if err := s.workerRepo.Update(worker); err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}
	return s.toResponse(worker), nil
}

// AddService adds an offered service to the worker profile owned by a user
func (s *WorkerService) AddService(userID uuid.UUID, req *CreateServiceRequest) (*ServiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	worker, err := s.workerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	service := &models.WorkerService{
		WorkerID:    worker.ID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Rate:        req.Rate,
	}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return s.toServiceResponse(service), nil
}

// UpdateService updates an offered service owned by a user
func (s *WorkerService) UpdateService(userID, serviceID uuid.UUID, req *UpdateServiceRequest) (*ServiceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	service, err := s.ownedService(userID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Rate != nil {
		service.Rate = req.Rate
	}

	if err := s.serviceRepo.Update(service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.toServiceResponse(service), nil
}

// RemoveService deletes an offered service owned by a user
func (s *WorkerService) RemoveService(userID, serviceID uuid.UUID) error {
	service, err := s.ownedService(userID, serviceID)
	if err != nil {
		return err
	}
	if err := s.serviceRepo.Delete(service.ID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// ListServices retrieves the services offered by a worker
func (s *WorkerService) ListServices(workerID uuid.UUID) ([]ServiceResponse, error) {
	if _, err := s.workerRepo.GetByID(workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	services, err := s.serviceRepo.GetByWorkerID(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	responses := make([]ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = *s.toServiceResponse(&service)
	}
	return responses, nil
}

// SubmitDocument records a verification document for the worker profile owned
// by a user and moves the profile into review
func (s *WorkerService) SubmitDocument(userID uuid.UUID, req *SubmitDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown document type")
	}

	worker, err := s.workerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	document := &models.VerificationDocument{
		WorkerID:  worker.ID,
		Type:      req.Type,
		Reference: req.Reference,
		Note:      req.Note,
	}
	if err := s.docRepo.Create(document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	// A fresh submission puts pending and rejected profiles back into review
	if worker.VerificationStatus == models.VerificationStatusPending ||
		worker.VerificationStatus == models.VerificationStatusRejected {
		if err := s.workerRepo.UpdateVerification(worker.ID, models.VerificationStatusInReview, ""); err != nil {
			return nil, fmt.Errorf("failed to move worker into review: %w", err)
		}
	}

	return s.toDocumentResponse(document), nil
}

// ListDocuments retrieves the documents submitted by a worker
func (s *WorkerService) ListDocuments(workerID uuid.UUID) ([]DocumentResponse, error) {
	if _, err := s.workerRepo.GetByID(workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	documents, err := s.docRepo.GetByWorkerID(workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(documents))
	for i, document := range documents {
		responses[i] = *s.toDocumentResponse(&document)
	}
	return responses, nil
}

// ListInReview retrieves worker profiles awaiting agent review
func (s *WorkerService) ListInReview(page, pageSize int) (*WorkerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	workers, total, err := s.workerRepo.GetByVerificationStatus(models.VerificationStatusInReview, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers in review: %w", err)
	}

	responses := make([]WorkerResponse, len(workers))
	for i, worker := range workers {
		responses[i] = *s.toResponse(&worker)
	}

	return &WorkerListResponse{
		Workers:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Review applies an agent's verification decision to a worker profile
func (s *WorkerService) Review(workerID uuid.UUID, req *ReviewWorkerRequest) (*WorkerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Status != models.VerificationStatusVerified && req.Status != models.VerificationStatusRejected {
		return nil, apperrors.NewValidationError("status", "must be verified or rejected")
	}

	if err := s.workerRepo.UpdateVerification(workerID, req.Status, req.Note); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to update verification: %w", err)
	}

	return s.GetByID(workerID)
}

func (s *WorkerService) ownedService(userID, serviceID uuid.UUID) (*models.WorkerService, error) {
	worker, err := s.workerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	service, err := s.serviceRepo.GetByID(serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	if service.WorkerID != worker.ID {
		return nil, apperrors.NewAuthorizationError("service does not belong to this worker")
	}
	return service, nil
}

// toResponse converts a worker profile model to response
func (s *WorkerService) toResponse(worker *models.WorkerProfile) *WorkerResponse {
	response := &WorkerResponse{
		ID:                 worker.ID,
		UserID:             worker.UserID,
		Bio:                worker.Bio,
		HourlyRate:         worker.HourlyRate,
		City:               worker.City,
		VerificationStatus: worker.VerificationStatus,
		VerificationNote:   worker.VerificationNote,
		AvailabilityStatus: worker.AvailabilityStatus,
		CreatedAt:          worker.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if worker.User.ID != uuid.Nil {
		response.FullName = worker.User.FullName
	}
	for _, service := range worker.Services {
		response.Services = append(response.Services, *s.toServiceResponse(&service))
	}
	return response
}

func (s *WorkerService) toServiceResponse(service *models.WorkerService) *ServiceResponse {
	return &ServiceResponse{
		ID:          service.ID,
		WorkerID:    service.WorkerID,
		Name:        service.Name,
		Category:    service.Category,
		Description: service.Description,
		Rate:        service.Rate,
	}
}

func (s *WorkerService) toDocumentResponse(document *models.VerificationDocument) *DocumentResponse {
	return &DocumentResponse{
		ID:        document.ID,
		WorkerID:  document.WorkerID,
		Type:      document.Type,
		Reference: document.Reference,
		Note:      document.Note,
		CreatedAt: document.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
