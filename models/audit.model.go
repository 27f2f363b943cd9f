package models

import "time"

// AuditEntry is an append-only record of a state change on a ticket or a
// permission request. Entries are never updated or deleted.
type AuditEntry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	SubjectID string    `gorm:"index;not null" json:"subjectId"`
	Action    string    `gorm:"not null" json:"action"`
	ActorName string    `gorm:"default:''" json:"actorName"`
	CreatedAt time.Time `json:"timestamp"`
}
