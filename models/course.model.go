package models

import "gorm.io/datatypes"

type Course struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Code         string `gorm:"uniqueIndex;not null" json:"code"`
	Name         string `gorm:"not null" json:"name"`
	InstructorID string `gorm:"default:''" json:"instructorId"`
	Instructor   string `gorm:"default:''" json:"instructor"`
	Progress     int    `gorm:"default:0" json:"progress"`
	Grade        string `gorm:"default:''" json:"grade,omitempty"`
	Credits      int    `gorm:"default:0" json:"credits"`
}

type TimetableEntry struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Day      string `gorm:"index;not null" json:"-"`
	CourseID string `gorm:"default:''" json:"courseId,omitempty"`
	Course   string `gorm:"not null" json:"course"`
	Room     string `gorm:"default:''" json:"room"`
	Time     string `gorm:"default:''" json:"time"`
}

type PlacementStatus string

const (
	PlacementOpen        PlacementStatus = "Open for Applications"
	PlacementApplied     PlacementStatus = "Applied"
	PlacementShortlisted PlacementStatus = "Shortlisted"
	PlacementInterview   PlacementStatus = "Interview Scheduled"
	PlacementOffered     PlacementStatus = "Offered"
	PlacementClosed      PlacementStatus = "Closed"
)

type PlacementDrive struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Company     string          `gorm:"not null" json:"company"`
	CompanyLogo string          `gorm:"default:''" json:"companyLogo"`
	Role        string          `gorm:"default:''" json:"role"`
	CTC         string          `gorm:"default:''" json:"ctc"`
	Status      PlacementStatus `gorm:"default:'Open for Applications'" json:"status"`
	PostedBy    string          `gorm:"default:''" json:"postedBy,omitempty"`
}

type CampusBuilding struct {
	ID          string                       `gorm:"primaryKey" json:"id"`
	Name        string                       `gorm:"not null" json:"name"`
	Position    datatypes.JSONSlice[float64] `json:"position"`
	Size        datatypes.JSONSlice[float64] `json:"size"`
	Color       string                       `gorm:"default:''" json:"color"`
	Description string                       `gorm:"default:''" json:"description"`
	Status      string                       `gorm:"default:''" json:"status"`
}
