package ticketController

import (
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"
	"assisthub/services/workflow"
	"assisthub/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTicket").(*struct {
		Title       string  `json:"title"`
		Category    string  `json:"category"`
		Description *string `json:"description"`
		Priority    *string `json:"priority"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	input := workflow.TicketInput{
		Title:    reqData.Title,
		Category: models.TicketCategory(reqData.Category),
	}
	if reqData.Description != nil {
		input.Description = *reqData.Description
	}
	if reqData.Priority != nil {
		input.Priority = models.TicketPriority(*reqData.Priority)
	}

	ticket, err := workflow.CreateTicket(database.Database.Db, input, user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support ticket created successfully!", ticket)
}

// TicketList returns the caller's view of the ticket queue: Students see
// their own submissions only, Faculty and Admin see everything.
func TicketList(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page     *int    `query:"page"`
		Limit    *int    `query:"limit"`
		Status   *string `query:"status"`
		Priority *string `query:"priority"`
		Category *string `query:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	// Pagination setup
	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Ticket{}).Where("is_deleted = ?", false)
	if user.Role == models.RoleStudent {
		db = db.Where("submitted_by = ?", user.ID)
	}
	if reqData.Status != nil {
		db = db.Where("status = ?", *reqData.Status)
	}
	if reqData.Priority != nil {
		db = db.Where("priority = ?", *reqData.Priority)
	}
	if reqData.Category != nil {
		db = db.Where("category = ?", *reqData.Category)
	}

	var total int64
	db.Count(&total)

	var tickets []models.Ticket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func UpdateTicketStatus(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedStatusUpdate").(*struct {
		Status          string  `json:"status"`
		ResolutionNotes *string `json:"resolutionNotes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	notes := ""
	if reqData.ResolutionNotes != nil {
		notes = *reqData.ResolutionNotes
	}

	ticket, err := workflow.TransitionTicket(database.Database.Db, c.Params("id"), models.TicketStatus(reqData.Status), user, notes)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
		case errors.Is(err, workflow.ErrUnauthorized):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to update this ticket!", nil)
		case errors.Is(err, workflow.ErrInvalidTransition):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This status change is not permitted!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ticket!", nil)
		}
	}

	// Mail the submitter when they opted into ticket updates.
	var submitter models.User
	if err := database.Database.Db.Where("id = ?", ticket.SubmittedBy).First(&submitter).Error; err == nil {
		if submitter.Preferences.Data().TicketUpdates {
			if err := utils.SendTicketUpdateEmail(submitter.Email, submitter.Name, ticket.ID, reqData.Status); err != nil {
				log.Printf("Error sending ticket update mail: %v", err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket updated successfully!", fiber.Map{
		"id":     ticket.ID,
		"status": reqData.Status,
	})
}

// TicketHistoryList returns the audit trail for one ticket, newest first.
func TicketHistoryList(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var ticket models.Ticket
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", c.Params("id"), false).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	// Students may only inspect their own tickets.
	if user.Role == models.RoleStudent && ticket.SubmittedBy != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to view this ticket!", nil)
	}

	history, err := workflow.History(database.Database.Db, ticket.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ticket history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket history fetched successfully!", history)
}
