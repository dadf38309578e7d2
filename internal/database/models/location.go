package models

import "time"

// Location is a numbered site (civico) that hosts assets
type Location struct {
	Number      string    `json:"number" gorm:"primaryKey;size:50" validate:"required,max=50"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Location) TableName() string {
	return "locations"
}
