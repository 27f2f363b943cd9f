package assistantRoutes

import (
	controller "assisthub/controllers/assistant"
	"assisthub/middleware"
	"assisthub/services/assistant"
	validator "assisthub/validators/assistant"

	"github.com/gofiber/fiber/v2"
)

func SetupAssistantRoutes(app *fiber.App, ai *assistant.Service) {
	ctl := &controller.Controller{AI: ai}

	chat := app.Group("/assistant")

	chat.Post("/chat", validator.Chat(), middleware.JWTMiddleware, middleware.RequireRole(), ctl.Chat)
}
