package permissionController

import (
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"
	"assisthub/services/workflow"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateRequest(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedRequest").(*struct {
		Type    string `json:"type"`
		Details string `json:"details"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request, err := workflow.CreatePermissionRequest(database.Database.Db, reqData.Type, reqData.Details, user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request submitted successfully!", request)
}

// RequestList shows Admins the full queue and everyone else their own requests.
func RequestList(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Model(&models.PermissionRequest{})
	if user.Role != models.RoleAdmin {
		db = db.Where("requester_id = ?", user.ID)
	}

	var requests []models.PermissionRequest
	if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requests fetched successfully!", requests)
}

func UpdateStatus(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedDecision").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request, err := workflow.TransitionPermission(database.Database.Db, c.Params("id"), models.PermissionStatus(reqData.Status), user)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
		case errors.Is(err, workflow.ErrUnauthorized):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only administrators can decide requests!", nil)
		case errors.Is(err, workflow.ErrInvalidTransition):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "This request has already been decided!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request updated successfully!", fiber.Map{
		"id":     request.ID,
		"status": reqData.Status,
	})
}

// RequestHistory returns the audit trail for one request, newest first.
func RequestHistory(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var request models.PermissionRequest
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Request not found!", nil)
	}

	if user.Role != models.RoleAdmin && request.RequesterID != user.ID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not allowed to view this request!", nil)
	}

	history, err := workflow.History(database.Database.Db, request.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch request history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Request history fetched successfully!", history)
}
