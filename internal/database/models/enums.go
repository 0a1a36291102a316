package models

// UserRole represents the role of an account in the marketplace
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleWorker   UserRole = "worker"
	UserRoleAgent    UserRole = "agent"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCustomer, UserRoleWorker, UserRoleAgent:
		return true
	}
	return false
}

// VerificationStatus defines the lifecycle of a worker's identity verification
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusInReview VerificationStatus = "in_review"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// IsValid checks if the VerificationStatus is valid
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusInReview, VerificationStatusVerified, VerificationStatusRejected:
		return true
	}
	return false
}

// AvailabilityStatus is the worker's coarse manual availability override,
// independent of the timetable computation
type AvailabilityStatus string

const (
	AvailabilityStatusAvailable AvailabilityStatus = "available"
	AvailabilityStatusBusy      AvailabilityStatus = "busy"
	AvailabilityStatusOffDuty   AvailabilityStatus = "off-duty"
)

// IsValid checks if the AvailabilityStatus is valid
func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityStatusAvailable, AvailabilityStatusBusy, AvailabilityStatusOffDuty:
		return true
	}
	return false
}

// BookingStatus defines the lifecycle of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusDeclined  BookingStatus = "declined"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid checks if the BookingStatus is valid
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusDeclined, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// DocumentType defines the kinds of verification documents a worker can submit
type DocumentType string

const (
	DocumentTypeIdentity      DocumentType = "identity"
	DocumentTypeAddress       DocumentType = "address"
	DocumentTypeQualification DocumentType = "qualification"
	DocumentTypePolice        DocumentType = "police_clearance"
)

// IsValid checks if the DocumentType is valid
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeIdentity, DocumentTypeAddress, DocumentTypeQualification, DocumentTypePolice:
		return true
	}
	return false
}
