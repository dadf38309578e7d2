package models

import "github.com/google/uuid"

type ContactCategory struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	Description string `json:"description" gorm:"type:text"`
	Icon        string `json:"icon" gorm:"size:50"`
	Color       string `json:"color" gorm:"size:20"`
}

func (ContactCategory) TableName() string {
	return "contact_categories"
}

// Contact is an address-book entry (suppliers, technicians, emergency numbers)
type Contact struct {
	BaseModel
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Company    string    `json:"company" gorm:"size:200"`
	Role       string    `json:"role" gorm:"size:100"`
	Phone      string    `json:"phone" gorm:"size:50"`
	Email      string    `json:"email" gorm:"size:255"`
	Address    string    `json:"address" gorm:"type:text"`
	Notes      string    `json:"notes" gorm:"type:text"`
	Priority   int       `json:"priority"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true"`
}

func (Contact) TableName() string {
	return "contacts"
}
