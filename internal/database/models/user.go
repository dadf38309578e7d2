package models

import "github.com/google/uuid"

// User is a back-office user of the maintenance system
type User struct {
	BaseModel
	Username string   `json:"username" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	FullName string   `json:"full_name" gorm:"size:200"`
	Email    string   `json:"email" gorm:"size:255" validate:"omitempty,email"`
	Role     UserRole `json:"role" gorm:"size:20;not null;default:'operator'"`
	IsActive bool     `json:"is_active" gorm:"not null;default:true"`
}

func (User) TableName() string {
	return "users"
}

// UserNote holds the free-text personal notes of a user, one row per user
type UserNote struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Notes  string    `json:"notes" gorm:"type:text;not null;default:''"`
}

func (UserNote) TableName() string {
	return "user_notes"
}
