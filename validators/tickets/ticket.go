package ticketValidators

import (
	"assisthub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validCategory = map[string]bool{
	"Water":                    true,
	"Hostel/Accommodation":     true,
	"Campus Maintenance":       true,
	"IT Support":               true,
	"General Enquiry/Academic": true,
	"Infrastructure/Lab":       true,
}

var validPriority = map[string]bool{"Low": true, "Medium": true, "High": true}

var validStatus = map[string]bool{"Pending": true, "In Progress": true, "Resolved": true, "Closed": true}

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Category    string  `json:"category"`
			Description *string `json:"description"`
			Priority    *string `json:"priority"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		} else if len(reqData.Title) > 100 {
			errors["title"] = "Title must not exceed 100 characters!"
		}

		if !validCategory[reqData.Category] {
			errors["category"] = "Invalid category!"
		}

		if reqData.Priority != nil && !validPriority[*reqData.Priority] {
			errors["priority"] = "Invalid priority! Allowed: Low, Medium, High"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicket", reqData)
		return c.Next()
	}
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int    `query:"page"`
			Limit    *int    `query:"limit"`
			Status   *string `query:"status"`
			Priority *string `query:"priority"`
			Category *string `query:"category"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if reqData.Status != nil && !validStatus[*reqData.Status] {
			errors["status"] = "Invalid status! Must be one of: Pending, In Progress, Resolved, Closed."
		}
		if reqData.Priority != nil && !validPriority[*reqData.Priority] {
			errors["priority"] = "Invalid priority! Must be one of: Low, Medium, High."
		}
		if reqData.Category != nil && !validCategory[*reqData.Category] {
			errors["category"] = "Invalid category!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status          string  `json:"status"`
			ResolutionNotes *string `json:"resolutionNotes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !validStatus[reqData.Status] {
			errors["status"] = "Invalid status! Must be one of: Pending, In Progress, Resolved, Closed."
		}
		if reqData.ResolutionNotes != nil && reqData.Status != "Resolved" {
			errors["resolutionNotes"] = "Resolution notes are only accepted when resolving!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatusUpdate", reqData)
		return c.Next()
	}
}
