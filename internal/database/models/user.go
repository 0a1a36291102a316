package models

// User represents an account in the marketplace (customer, worker or agent)
type User struct {
	BaseModel
	Email         string   `json:"email" gorm:"uniqueIndex:idx_users_email_active,where:deleted_at IS NULL;not null;size:255" validate:"required,email,max=255"` // Partial unique index excludes soft-deleted records so an email can re-register
	PasswordHash  string   `json:"-" gorm:"not null;size:100"`
	FullName      string   `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	PhoneNumber   string   `json:"phone_number" gorm:"size:20"`
	Role          UserRole `json:"role" gorm:"type:varchar(20);not null;default:'customer'" validate:"required"`
	EmailVerified bool     `json:"email_verified" gorm:"default:false"`
	IsActive      bool     `json:"is_active" gorm:"default:true"`

	// Relationships
	WorkerProfile *WorkerProfile `json:"worker_profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
