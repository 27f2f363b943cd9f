package models

import "time"

type TicketStatus string

const (
	TicketPending    TicketStatus = "Pending"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
	TicketClosed     TicketStatus = "Closed"
)

type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

type TicketCategory string

const (
	CategoryWater          TicketCategory = "Water"
	CategoryHostel         TicketCategory = "Hostel/Accommodation"
	CategoryMaintenance    TicketCategory = "Campus Maintenance"
	CategoryIT             TicketCategory = "IT Support"
	CategoryAcademic       TicketCategory = "General Enquiry/Academic"
	CategoryInfrastructure TicketCategory = "Infrastructure/Lab"
)

type Ticket struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Category        TicketCategory `json:"category"`
	Description     string         `gorm:"default:''" json:"description,omitempty"`
	Status          TicketStatus   `gorm:"default:'Pending'" json:"status"`
	Priority        TicketPriority `gorm:"default:'Medium'" json:"priority"`
	SubmittedBy     string         `json:"submittedBy"`
	SubmittedByName string         `gorm:"default:''" json:"submittedByName,omitempty"`
	AssignedToRole  UserRole       `gorm:"default:''" json:"assignedToRole,omitempty"`
	AssignedToID    string         `gorm:"default:''" json:"assignedToId,omitempty"`
	ResolutionNotes string         `gorm:"default:''" json:"resolutionNotes,omitempty"`
	IsDeleted       bool           `gorm:"default:false" json:"-"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"-"`
}
