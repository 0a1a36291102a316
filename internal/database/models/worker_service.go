package models

import (
	"github.com/google/uuid"
)

// WorkerService represents a service a worker offers on the marketplace
type WorkerService struct {
	BaseModel
	WorkerID    uuid.UUID `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Category    string    `json:"category" gorm:"not null;size:50;index" validate:"required,max=50"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	Rate        *float64  `json:"rate,omitempty"` // overrides the profile hourly rate when set

	// Relationships
	Worker WorkerProfile `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkerService
func (WorkerService) TableName() string {
	return "worker_services"
}
