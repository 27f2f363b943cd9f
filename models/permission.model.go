package models

import "time"

type PermissionStatus string

const (
	PermissionPending  PermissionStatus = "Pending"
	PermissionApproved PermissionStatus = "Approved"
	PermissionRejected PermissionStatus = "Rejected"
)

type PermissionRequest struct {
	ID            string           `gorm:"primaryKey" json:"id"`
	Type          string           `gorm:"not null" json:"type"` // e.g. "Out Pass", "Event Hosting"
	RequesterID   string           `json:"requesterId"`
	RequesterName string           `gorm:"default:''" json:"requesterName"`
	RequesterRole UserRole         `gorm:"default:'Student'" json:"requesterRole"`
	ApproverID    string           `gorm:"default:''" json:"approverId,omitempty"`
	Status        PermissionStatus `gorm:"default:'Pending'" json:"status"`
	Details       string           `gorm:"default:''" json:"details"`
	CreatedAt     time.Time        `json:"date"`
	UpdatedAt     time.Time        `json:"-"`
}
