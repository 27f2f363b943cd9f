package ticketRoutes

import (
	controller "assisthub/controllers/tickets"
	"assisthub/middleware"
	validator "assisthub/validators/tickets"

	"github.com/gofiber/fiber/v2"
)

func SetupTicketRoutes(app *fiber.App) {
	tickets := app.Group("/tickets")

	tickets.Post("/", validator.CreateTicket(), middleware.JWTMiddleware, middleware.RequireRole(), controller.CreateTicket)
	tickets.Get("/", validator.TicketList(), middleware.JWTMiddleware, middleware.RequireRole(), controller.TicketList)
	tickets.Put("/:id/status", validator.UpdateStatus(), middleware.JWTMiddleware, middleware.RequireRole(), controller.UpdateTicketStatus)
	tickets.Get("/:id/history", middleware.JWTMiddleware, middleware.RequireRole(), controller.TicketHistoryList)
}
