package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessagingSettings holds the bot token used for notifications
type MessagingSettings struct {
	BaseModel
	BotToken    string `json:"-" gorm:"size:255;not null"`
	BotUsername string `json:"bot_username" gorm:"size:100"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:true"`
}

func (MessagingSettings) TableName() string {
	return "messaging_settings"
}

// NotificationChannel is a chat that receives alerts matching its filters
type NotificationChannel struct {
	BaseModel
	Name            string                      `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	ChatID          string                      `json:"chat_id" gorm:"size:100;not null" validate:"required,max=100"`
	Categories      datatypes.JSONSlice[string] `json:"categories" gorm:"type:jsonb"`
	LocationFilter  datatypes.JSONSlice[string] `json:"location_filter" gorm:"type:jsonb"`
	AssetTypeFilter datatypes.JSONSlice[string] `json:"asset_type_filter" gorm:"type:jsonb"`
	IsActive        bool                        `json:"is_active" gorm:"not null;default:true"`
}

func (NotificationChannel) TableName() string {
	return "notification_channels"
}

// DeliveryLog records one delivery attempt to one channel
type DeliveryLog struct {
	BaseModel
	ChannelID     *uuid.UUID `json:"channel_id" gorm:"type:uuid;index"`
	ChatID        string     `json:"chat_id" gorm:"size:100"`
	AlertCategory string     `json:"alert_category" gorm:"size:30"`
	Title         string     `json:"title" gorm:"size:255"`
	Message       string     `json:"message" gorm:"type:text"`
	Success       bool       `json:"success"`
	Error         string     `json:"error" gorm:"type:text"`
}

func (DeliveryLog) TableName() string {
	return "delivery_logs"
}
