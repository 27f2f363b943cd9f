package main

import (
	"assisthub/config"
	authController "assisthub/controllers/auth"
	"assisthub/database"
	"assisthub/routers/announcementRoutes"
	"assisthub/routers/assistantRoutes"
	"assisthub/routers/authRoutes"
	"assisthub/routers/notificationRoutes"
	"assisthub/routers/permissionRoutes"
	"assisthub/routers/portalRoutes"
	"assisthub/routers/ticketRoutes"
	"assisthub/routers/userRoutes"
	"assisthub/services/assistant"
	"assisthub/services/backend"
	"assisthub/services/portaldata"
	"assisthub/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	authController.Backend = backend.NewClient(config.AppConfig.BackendURL, config.AppConfig.BackendAnonKey)
	data := portaldata.New(db, config.AppConfig.PortalAPIURL, config.AppConfig.PortalAPIToken,
		time.Duration(config.AppConfig.FetchTimeoutMs)*time.Millisecond)
	ai := assistant.New(db, config.AppConfig.GeminiAPIURL, config.AppConfig.GeminiAPIKey)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	ticketRoutes.SetupTicketRoutes(app)
	permissionRoutes.SetupPermissionRoutes(app)
	announcementRoutes.SetupAnnouncementRoutes(app)
	portalRoutes.SetupPortalRoutes(app, data)
	userRoutes.SetupUserRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	assistantRoutes.SetupAssistantRoutes(app, ai)

	scheduler := utils.StartNotificationScheduler(db, data, config.AppConfig.NotifRefreshSeconds)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
