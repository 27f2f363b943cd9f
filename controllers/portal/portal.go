package portalController

import (
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"
	"assisthub/navigation"
	"assisthub/services/portaldata"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the hub's read side: provenance-tagged resources,
// navigation, dashboards and the campus map.
type Controller struct {
	Data *portaldata.Service
}

// Resource handles GET /portal/:resource and always answers with a
// CachedResource; a failing upstream shows up as isLive=false, never as an
// error status.
func (ctl *Controller) Resource(c *fiber.Ctx) error {
	name := c.Params("resource")
	if !portaldata.KnownResource(name) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unknown resource!", nil)
	}

	result := ctl.Data.Fetch(c.Context(), portaldata.Resource(name))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully!", result)
}

// Navigation returns the caller's sidebar entries.
func (ctl *Controller) Navigation(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Navigation fetched successfully!", navigation.AllowedViews(user.Role))
}

// ResolveNavigation checks a navigation request against the allow-table.
// Out-of-bound views silently resolve to the dashboard.
func (ctl *Controller) ResolveNavigation(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	requested := navigation.ViewID(c.Query("view", string(navigation.DefaultView)))
	resolved := navigation.CheckNavigation(user.Role, requested)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Navigation resolved!", fiber.Map{
		"requested": requested,
		"resolved":  resolved,
		"redirected": resolved != requested,
	})
}

// Dashboard returns role-shaped headline stats.
func (ctl *Controller) Dashboard(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	switch user.Role {
	case models.RoleStudent:
		var open int64
		db.Model(&models.Ticket{}).
			Where("submitted_by = ? AND status NOT IN ? AND is_deleted = ?", user.ID, []models.TicketStatus{models.TicketResolved, models.TicketClosed}, false).
			Count(&open)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"openTickets": open,
			"feePending":  40000,
		})
	case models.RoleFaculty:
		var assigned int64
		db.Model(&models.Ticket{}).
			Where("assigned_to_role = ? AND status = ? AND is_deleted = ?", models.RoleFaculty, models.TicketPending, false).
			Count(&assigned)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"studentCount":     120,
			"pendingApprovals": assigned,
			"avgAttendance":    88,
			"researchPapers":   5,
		})
	default:
		var totalUsers, totalTickets, pendingTickets int64
		db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
		db.Model(&models.Ticket{}).Where("is_deleted = ?", false).Count(&totalTickets)
		db.Model(&models.Ticket{}).Where("status = ? AND is_deleted = ?", models.TicketPending, false).Count(&pendingTickets)
		var activeDrives int64
		db.Model(&models.PlacementDrive{}).Where("status = ?", models.PlacementOpen).Count(&activeDrives)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"totalUsers":     totalUsers,
			"totalTickets":   totalTickets,
			"pendingTickets": pendingTickets,
			"systemHealth":   98,
			"activeDrives":   activeDrives,
		})
	}
}

// CampusMap returns the building layout for the 3D map view.
func (ctl *Controller) CampusMap(c *fiber.Ctx) error {
	var buildings []models.CampusBuilding
	if err := database.Database.Db.Order("id").Find(&buildings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch campus map!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campus map fetched successfully!", buildings)
}
