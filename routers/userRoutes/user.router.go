package userRoutes

import (
	controller "assisthub/controllers/users"
	"assisthub/middleware"
	"assisthub/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	users.Get("/", controller.UserList)
	users.Put("/:id/role", controller.UpdateUserRole)
	users.Delete("/:id", controller.DeactivateUser)
}
