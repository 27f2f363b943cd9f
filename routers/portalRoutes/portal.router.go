package portalRoutes

import (
	controller "assisthub/controllers/portal"
	"assisthub/middleware"
	"assisthub/services/portaldata"

	"github.com/gofiber/fiber/v2"
)

func SetupPortalRoutes(app *fiber.App, data *portaldata.Service) {
	ctl := &controller.Controller{Data: data}

	portal := app.Group("/portal", middleware.JWTMiddleware, middleware.RequireRole())

	portal.Get("/navigation", ctl.Navigation)
	portal.Get("/navigation/resolve", ctl.ResolveNavigation)
	portal.Get("/dashboard", ctl.Dashboard)
	portal.Get("/map", ctl.CampusMap)
	portal.Get("/charts/academics", ctl.AcademicPerformance)
	portal.Get("/charts/faculty", ctl.FacultyPerformance)
	portal.Get("/charts/tickets", ctl.TicketDistribution)
	portal.Get("/:resource", ctl.Resource)
}
