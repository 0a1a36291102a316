package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a customer's booking of a worker for a date and a
// wall-clock interval
type Booking struct {
	BaseModel
	CustomerID uuid.UUID     `json:"customer_id" gorm:"type:uuid;not null;index" validate:"required"`
	WorkerID   uuid.UUID     `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	ServiceID  *uuid.UUID    `json:"service_id,omitempty" gorm:"type:uuid;index"`
	Date       time.Time     `json:"date" gorm:"type:date;not null" validate:"required"`
	StartTime  string        `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime    string        `json:"end_time" gorm:"size:5;not null" validate:"required"`
	Status     BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Notes      string        `json:"notes" gorm:"size:500" validate:"max=500"`

	// Relationships
	Customer User           `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Worker   WorkerProfile  `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	Service  *WorkerService `json:"service,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
