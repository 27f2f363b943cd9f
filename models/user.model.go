package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleStudent UserRole = "Student"
	RoleFaculty UserRole = "Faculty"
	RoleAdmin   UserRole = "Admin"
)

// Roles lists every defined role. Tables keyed by role are validated against it.
var Roles = []UserRole{RoleStudent, RoleFaculty, RoleAdmin}

type NotificationPreferences struct {
	TicketUpdates bool `json:"ticketUpdates"`
	Announcements bool `json:"announcements"`
	Placements    bool `json:"placements"`
	Events        bool `json:"events"`
}

// DefaultPreferences mirrors what a fresh profile gets on signup.
func DefaultPreferences() NotificationPreferences {
	return NotificationPreferences{TicketUpdates: true, Announcements: true, Placements: true, Events: false}
}

type User struct {
	ID          string                                      `gorm:"primaryKey" json:"id"`
	Name        string                                      `gorm:"default:''" json:"name"`
	Email       string                                      `gorm:"uniqueIndex;not null" json:"email"`
	Role        UserRole                                    `gorm:"default:'Student'" json:"role"`
	Password    string                                      `gorm:"default:''" json:"-"` // bcrypt hash; empty for seeded directory profiles
	AvatarURL   string                                      `gorm:"default:''" json:"avatarUrl"`
	Program     string                                      `gorm:"default:''" json:"program,omitempty"`
	Department  string                                      `gorm:"default:''" json:"department,omitempty"`
	About       string                                      `gorm:"default:''" json:"about,omitempty"`
	GPA         float64                                     `gorm:"default:0" json:"gpa,omitempty"`
	Attendance  float64                                     `gorm:"default:0" json:"attendance,omitempty"`
	Skills      datatypes.JSONSlice[string]                 `json:"skills"`
	Preferences datatypes.JSONType[NotificationPreferences] `json:"notificationPreferences"`
	IsDeleted   bool                                        `gorm:"default:false" json:"-"`
	CreatedAt   time.Time                                   `json:"-"`
	UpdatedAt   time.Time                                   `json:"-"`
}
