package portalController

import (
	"assisthub/middleware"
	"assisthub/models"

	"github.com/gofiber/fiber/v2"
)

// Chart datasets for the dashboard views. These are curated snapshots the
// analytics pipeline publishes, not live aggregates.

type semesterStat struct {
	Name       string  `json:"name"`
	GPA        float64 `json:"gpa"`
	Attendance int     `json:"attendance"`
}

var studentAcademics = []semesterStat{
	{"Sem 1", 8.2, 92},
	{"Sem 2", 8.5, 88},
	{"Sem 3", 8.1, 85},
	{"Sem 4", 8.9, 90},
	{"Sem 5", 9.2, 94},
}

type assessmentStat struct {
	Name           string `json:"name"`
	AvgScore       int    `json:"avgScore"`
	SubmissionRate int    `json:"submissionRate"`
}

var facultyPerformance = []assessmentStat{
	{"Assignment 1", 78, 92},
	{"Mid Term", 82, 100},
	{"Project", 85, 88},
	{"Assignment 2", 75, 95},
}

type categoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

var ticketDistribution = []categoryShare{
	{"IT Support", 40},
	{"Maintenance", 30},
	{"Hostel", 15},
	{"Academic", 10},
	{"Other", 5},
}

func (ctl *Controller) AcademicPerformance(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Academic performance fetched successfully!", studentAcademics)
}

func (ctl *Controller) FacultyPerformance(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.Role == models.RoleStudent {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Faculty performance fetched successfully!", facultyPerformance)
}

func (ctl *Controller) TicketDistribution(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok || user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket distribution fetched successfully!", ticketDistribution)
}
