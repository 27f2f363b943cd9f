package announcementController

import (
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateAnnouncement posts a new announcement. The route is Admin-gated;
// announcements are immutable once created.
func CreateAnnouncement(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAnnouncement").(*struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		IsNiatNews bool   `json:"isNiatNews"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	announcement := models.Announcement{
		ID:         "A-" + uuid.NewString()[:8],
		Title:      reqData.Title,
		Content:    reqData.Content,
		Date:       time.Now().Format("2006-01-02"),
		IsNiatNews: reqData.IsNiatNews,
		AuthorID:   user.ID,
	}

	if err := database.Database.Db.Create(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement posted successfully!", announcement)
}
