package service

import (
	"context"
	"time"

	"workjunction-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	VerifyEmail(ctx context.Context, req *VerifyEmailRequest) error
	ResendOTP(ctx context.Context, req *ResendOTPRequest) error
	GetByID(id uuid.UUID) (*UserResponse, error)
}

// WorkerServiceInterface defines the interface for worker service
type WorkerServiceInterface interface {
	GetByUserID(userID uuid.UUID) (*WorkerResponse, error)
	GetByID(id uuid.UUID) (*WorkerResponse, error)
	List(filter WorkerFilterRequest, page, pageSize int) (*WorkerListResponse, error)
	UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*WorkerResponse, error)
	AddService(userID uuid.UUID, req *CreateServiceRequest) (*ServiceResponse, error)
	UpdateService(userID, serviceID uuid.UUID, req *UpdateServiceRequest) (*ServiceResponse, error)
	RemoveService(userID, serviceID uuid.UUID) error
	ListServices(workerID uuid.UUID) ([]ServiceResponse, error)
	SubmitDocument(userID uuid.UUID, req *SubmitDocumentRequest) (*DocumentResponse, error)
	ListDocuments(workerID uuid.UUID) ([]DocumentResponse, error)
	ListInReview(page, pageSize int) (*WorkerListResponse, error)
	Review(workerID uuid.UUID, req *ReviewWorkerRequest) (*WorkerResponse, error)
}

// AvailabilityServiceInterface defines the interface for availability service
type AvailabilityServiceInterface interface {
	ProfileIDForUser(userID uuid.UUID) (uuid.UUID, error)
	GetTimetable(workerID uuid.UUID) (*TimetableResponse, error)
	ReplaceTimetable(workerID uuid.UUID, req *ReplaceTimetableRequest) (*TimetableResponse, error)
	AddNonAvailability(workerID uuid.UUID, req *AddNonAvailabilityRequest) (*NonAvailabilityListResponse, error)
	RemoveNonAvailability(workerID, slotID uuid.UUID) (*NonAvailabilityListResponse, error)
	ListNonAvailability(workerID uuid.UUID, from, to *time.Time) (*NonAvailabilityListResponse, error)
	Resolve(workerID uuid.UUID, date string) (*AvailabilityResponse, error)
	SetStatus(workerID uuid.UUID, req *SetStatusRequest) (*StatusResponse, error)
	GetStatus(workerID uuid.UUID) (*StatusResponse, error)
}

// BookingServiceInterface defines the interface for booking service
type BookingServiceInterface interface {
	Create(customerID uuid.UUID, req *CreateBookingRequest) (*BookingResponse, error)
	GetByID(actorUserID, bookingID uuid.UUID) (*BookingResponse, error)
	ListForCustomer(customerID uuid.UUID, status models.BookingStatus, page, pageSize int) (*BookingListResponse, error)
	ListForWorker(workerUserID uuid.UUID, status models.BookingStatus, page, pageSize int) (*BookingListResponse, error)
	UpdateStatus(actorUserID, bookingID uuid.UUID, req *UpdateBookingStatusRequest) (*BookingResponse, error)
}
