package models

import (
	"github.com/google/uuid"
)

// VerificationDocument is the metadata record for a document a worker submits
// for identity verification. Binary storage lives elsewhere; Reference points
// at it.
type VerificationDocument struct {
	BaseModel
	WorkerID  uuid.UUID    `json:"worker_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type      DocumentType `json:"type" gorm:"type:varchar(30);not null" validate:"required"`
	Reference string       `json:"reference" gorm:"not null;size:500" validate:"required,max=500"`
	Note      string       `json:"note" gorm:"size:500" validate:"max=500"`

	// Relationships
	Worker WorkerProfile `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for VerificationDocument
func (VerificationDocument) TableName() string {
	return "verification_documents"
}
