package models

import (
	"github.com/google/uuid"
)

// WorkerProfile represents a service worker's marketplace profile. The weekly
// timetable, the non-availability exception list and the availability status
// flag live on this row so each scheduling operation is a single atomic
// single-row update.
type WorkerProfile struct {
	BaseModel
	UserID             uuid.UUID            `json:"user_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	Bio                string               `json:"bio" gorm:"type:text"`
	HourlyRate         float64              `json:"hourly_rate" gorm:"default:0"`
	City               string               `json:"city" gorm:"size:100"`
	VerificationStatus VerificationStatus   `json:"verification_status" gorm:"type:varchar(20);not null;default:'pending'"`
	VerificationNote   string               `json:"verification_note" gorm:"type:text"`
	AvailabilityStatus AvailabilityStatus   `json:"availability_status" gorm:"type:varchar(20);not null;default:'available'"`
	Timetable          WeeklyTimetable      `json:"timetable" gorm:"type:jsonb"`
	NonAvailability    NonAvailabilitySlots `json:"non_availability" gorm:"type:jsonb"`

	// Relationships
	User      User                   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Services  []WorkerService        `json:"services,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Documents []VerificationDocument `json:"documents,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Bookings  []Booking              `json:"bookings,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkerProfile
func (WorkerProfile) TableName() string {
	return "worker_profiles"
}
