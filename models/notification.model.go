package models

import "time"

type AppNotification struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Message   string    `gorm:"default:''" json:"message"`
	Type      string    `gorm:"default:'info'" json:"type"` // info, success, warning, error
	Read      bool      `gorm:"default:false" json:"read"`
	Timestamp time.Time `json:"timestamp"`
}
