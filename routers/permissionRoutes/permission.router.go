package permissionRoutes

import (
	controller "assisthub/controllers/permissions"
	"assisthub/middleware"
	"assisthub/models"
	validator "assisthub/validators/permissions"

	"github.com/gofiber/fiber/v2"
)

func SetupPermissionRoutes(app *fiber.App) {
	permissions := app.Group("/permissions")

	permissions.Post("/", validator.CreateRequest(), middleware.JWTMiddleware, middleware.RequireRole(), controller.CreateRequest)
	permissions.Get("/", middleware.JWTMiddleware, middleware.RequireRole(), controller.RequestList)
	permissions.Put("/:id/status", validator.UpdateStatus(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controller.UpdateStatus)
	permissions.Get("/:id/history", middleware.JWTMiddleware, middleware.RequireRole(), controller.RequestHistory)
}
