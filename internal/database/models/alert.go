package models

import (
	"time"

	"gorm.io/gorm"
)

// Alert is a non-conformity, a ticket, or a schedule-due notice
type Alert struct {
	BaseModel
	Category       AlertCategory `json:"category" gorm:"size:30;not null;index" validate:"required"`
	Title          string        `json:"title" gorm:"size:255;not null"`
	Description    string        `json:"description" gorm:"type:text"`
	LocationNumber string        `json:"location_number" gorm:"size:50;index:idx_alert_target"`
	AssetID        string        `json:"asset_id" gorm:"size:100;index:idx_alert_target"`
	State          AlertState    `json:"state" gorm:"size:20;not null;default:'open';index"`
	Notes          string        `json:"notes" gorm:"type:text"`
	Operator       string        `json:"operator" gorm:"size:100"`
	ClosedAt       *time.Time    `json:"closed_at"`
}

func (Alert) TableName() string {
	return "alerts"
}

// BeforeSave keeps closed_at set exactly when the alert is closed
func (a *Alert) BeforeSave(tx *gorm.DB) error {
	if a.State == "" {
		a.State = AlertOpen
	}
	if a.State != AlertClosed {
		a.ClosedAt = nil
	} else if a.ClosedAt == nil {
		t := time.Now()
		a.ClosedAt = &t
	}
	return nil
}
