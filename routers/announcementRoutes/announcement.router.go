package announcementRoutes

import (
	controller "assisthub/controllers/announcements"
	"assisthub/middleware"
	"assisthub/models"
	validator "assisthub/validators/announcements"

	"github.com/gofiber/fiber/v2"
)

func SetupAnnouncementRoutes(app *fiber.App) {
	announcements := app.Group("/announcements")

	announcements.Post("/", validator.CreateAnnouncement(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controller.CreateAnnouncement)
}
