package notificationRoutes

import (
	controller "assisthub/controllers/notifications"
	"assisthub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notifications := app.Group("/notifications", middleware.JWTMiddleware, middleware.RequireRole())

	notifications.Get("/", controller.NotificationList)
	notifications.Post("/:id/read", controller.MarkRead)
}
