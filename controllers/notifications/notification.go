package notificationController

import (
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"

	"github.com/gofiber/fiber/v2"
)

// NotificationList returns notifications, newest first.
func NotificationList(c *fiber.Ctx) error {
	var notifications []models.AppNotification
	if err := database.Database.Db.Order("timestamp DESC").Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", notifications)
}

// MarkRead flags one notification as read. Marking twice is harmless.
func MarkRead(c *fiber.Ctx) error {
	var notification models.AppNotification
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&notification).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	if err := database.Database.Db.Model(&notification).Update("read", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read!", nil)
}
