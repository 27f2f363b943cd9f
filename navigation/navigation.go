// Package navigation holds the static role→view allow-table for the hub. The
// gate is pure: out-of-bound requests resolve to the dashboard, never an error.
package navigation

import (
	"log"

	"assisthub/models"
)

type ViewID string

const (
	ViewDashboard     ViewID = "dashboard"
	ViewProfile       ViewID = "profile"
	ViewLearning      ViewID = "learning"
	ViewCourses       ViewID = "courses"
	ViewTimetable     ViewID = "timetable"
	ViewTickets       ViewID = "tickets"
	ViewPermissions   ViewID = "permissions"
	ViewPlacements    ViewID = "placements"
	ViewAnnouncements ViewID = "announcements"
	ViewMap           ViewID = "map"
	ViewEnrollment    ViewID = "enrollment"
	ViewUsers         ViewID = "users"
)

// DefaultView is where denied navigation requests land.
const DefaultView = ViewDashboard

type NavEntry struct {
	ID    ViewID            `json:"id"`
	Name  string            `json:"name"`
	Roles []models.UserRole `json:"-"`
}

var all = []models.UserRole{models.RoleStudent, models.RoleFaculty, models.RoleAdmin}

// masterNav is the single source of truth for which role reaches which view.
// Order matters: AllowedViews preserves it for the sidebar.
var masterNav = []NavEntry{
	{ViewDashboard, "Dashboard", all},
	{ViewProfile, "Profile", all},
	{ViewLearning, "My Learning", []models.UserRole{models.RoleStudent}},
	{ViewCourses, "Courses", all},
	{ViewTimetable, "Timetable", []models.UserRole{models.RoleStudent, models.RoleFaculty}},
	{ViewTickets, "Support Tickets", all},
	{ViewPermissions, "Permissions", all},
	{ViewPlacements, "Placements", []models.UserRole{models.RoleStudent, models.RoleAdmin}},
	{ViewAnnouncements, "Announcements", all},
	{ViewMap, "Campus Map", all},
	{ViewEnrollment, "Enrollment", []models.UserRole{models.RoleAdmin}},
	{ViewUsers, "User Management", []models.UserRole{models.RoleAdmin}},
}

// AllowedViews returns the nav entries the role may reach, in sidebar order.
func AllowedViews(role models.UserRole) []NavEntry {
	var entries []NavEntry
	for _, entry := range masterNav {
		for _, r := range entry.Roles {
			if r == role {
				entries = append(entries, entry)
				break
			}
		}
	}
	return entries
}

// Allowed reports whether the role may reach the view.
func Allowed(role models.UserRole, view ViewID) bool {
	for _, entry := range masterNav {
		if entry.ID != view {
			continue
		}
		for _, r := range entry.Roles {
			if r == role {
				return true
			}
		}
		return false
	}
	return false
}

// CheckNavigation resolves a navigation request. Requests outside the
// allow-table redirect to the default view; the denial is logged, not raised.
func CheckNavigation(role models.UserRole, requested ViewID) ViewID {
	if Allowed(role, requested) {
		return requested
	}
	log.Printf("[NAV] unauthorized view access: role=%s view=%s, redirecting to %s", role, requested, DefaultView)
	return DefaultView
}
