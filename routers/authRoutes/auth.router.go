package authRoutes

import (
	controller "assisthub/controllers/auth"
	"assisthub/middleware"
	validator "assisthub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", validator.Login(), controller.Login)
	auth.Post("/signup", validator.Signup(), controller.Signup)
	auth.Get("/me", middleware.JWTMiddleware, middleware.RequireRole(), controller.Me)
	auth.Post("/logout", controller.Logout)
	auth.Put("/preferences", validator.Preferences(), middleware.JWTMiddleware, middleware.RequireRole(), controller.UpdatePreferences)
}
