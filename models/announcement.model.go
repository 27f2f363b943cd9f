package models

import "time"

// Announcement is immutable once created; there is no edit or delete path.
type Announcement struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"default:''" json:"content"`
	Date       string    `gorm:"default:''" json:"date"` // YYYY-MM-DD, as published
	IsNiatNews bool      `gorm:"default:false" json:"isNiatNews"`
	AuthorID   string    `gorm:"default:''" json:"authorId,omitempty"`
	CreatedAt  time.Time `json:"-"`
}
