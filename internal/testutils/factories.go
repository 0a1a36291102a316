package testutils

import (
	"time"

	"workjunction-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:         id.String()[:8] + "@test.com",
		PasswordHash:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FullName:      "Jane Doe",
		PhoneNumber:   "+1-555-0123",
		Role:          models.UserRoleCustomer,
		EmailVerified: true,
		IsActive:      true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WorkerFactory provides methods to create test WorkerProfile data
type WorkerFactory struct{}

// NewWorkerFactory creates a new WorkerFactory
func NewWorkerFactory() *WorkerFactory {
	return &WorkerFactory{}
}

// Create creates a test WorkerProfile with default values
func (f *WorkerFactory) Create() *models.WorkerProfile {
	return &models.WorkerProfile{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:             uuid.New(),
		Bio:                "Experienced handyman",
		HourlyRate:         45,
		City:               "Springfield",
		VerificationStatus: models.VerificationStatusVerified,
		AvailabilityStatus: models.AvailabilityStatusAvailable,
		Timetable:          models.NewWeeklyTimetable(),
		NonAvailability:    models.NonAvailabilitySlots{},
	}
}

// WithUser sets the owning user ID for the worker profile
func (f *WorkerFactory) WithUser(userID uuid.UUID) *models.WorkerProfile {
	worker := f.Create()
	worker.UserID = userID
	return worker
}

// WithTimetable sets a custom weekly timetable for the worker profile
func (f *WorkerFactory) WithTimetable(timetable models.WeeklyTimetable) *models.WorkerProfile {
	worker := f.Create()
	worker.Timetable = timetable
	return worker
}

// WithVerificationStatus sets the verification state for the worker profile
func (f *WorkerFactory) WithVerificationStatus(status models.VerificationStatus) *models.WorkerProfile {
	worker := f.Create()
	worker.VerificationStatus = status
	return worker
}

// WorkerServiceFactory provides methods to create test WorkerService data
type WorkerServiceFactory struct{}

// NewWorkerServiceFactory creates a new WorkerServiceFactory
func NewWorkerServiceFactory() *WorkerServiceFactory {
	return &WorkerServiceFactory{}
}

// Create creates a test WorkerService with default values
func (f *WorkerServiceFactory) Create() *models.WorkerService {
	return &models.WorkerService{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkerID:    uuid.New(),
		Name:        "Pipe repair",
		Category:    "plumbing",
		Description: "Fixing leaky pipes and taps",
	}
}

// WithWorker sets the owning worker ID for the service
func (f *WorkerServiceFactory) WithWorker(workerID uuid.UUID) *models.WorkerService {
	service := f.Create()
	service.WorkerID = workerID
	return service
}

// BookingFactory provides methods to create test Booking data
type BookingFactory struct{}

// NewBookingFactory creates a new BookingFactory
func NewBookingFactory() *BookingFactory {
	return &BookingFactory{}
}

// Create creates a test Booking with default values
func (f *BookingFactory) Create() *models.Booking {
	return &models.Booking{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CustomerID: uuid.New(),
		WorkerID:   uuid.New(),
		Date:       time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		StartTime:  "10:00",
		EndTime:    "12:00",
		Status:     models.BookingStatusPending,
	}
}

// WithWorker sets the worker ID for the booking
func (f *BookingFactory) WithWorker(workerID uuid.UUID) *models.Booking {
	booking := f.Create()
	booking.WorkerID = workerID
	return booking
}

// WithCustomer sets the customer ID for the booking
func (f *BookingFactory) WithCustomer(customerID uuid.UUID) *models.Booking {
	booking := f.Create()
	booking.CustomerID = customerID
	return booking
}

// WithInterval sets the date and wall-clock interval for the booking
func (f *BookingFactory) WithInterval(date time.Time, startTime, endTime string) *models.Booking {
	booking := f.Create()
	booking.Date = date
	booking.StartTime = startTime
	booking.EndTime = endTime
	return booking
}

// DocumentFactory provides methods to create test VerificationDocument data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test VerificationDocument with default values
func (f *DocumentFactory) Create() *models.VerificationDocument {
	return &models.VerificationDocument{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkerID:  uuid.New(),
		Type:      models.DocumentTypeIdentity,
		Reference: "uploads/identity/test.pdf",
	}
}

// WithWorker sets the owning worker ID for the document
func (f *DocumentFactory) WithWorker(workerID uuid.UUID) *models.VerificationDocument {
	document := f.Create()
	document.WorkerID = workerID
	return document
}

// FactorySet provides access to all factories
type FactorySet struct {
	User          *UserFactory
	Worker        *WorkerFactory
	WorkerService *WorkerServiceFactory
	Booking       *BookingFactory
	Document      *DocumentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Worker:        NewWorkerFactory(),
		WorkerService: NewWorkerServiceFactory(),
		Booking:       NewBookingFactory(),
		Document:      NewDocumentFactory(),
	}
}
