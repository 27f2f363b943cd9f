package assistantController

import (
	"assisthub/middleware"
	"assisthub/services/assistant"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	AI *assistant.Service
}

// Chat proxies a prompt to the campus assistant. Upstream failures degrade
// to the fixed offline reply, so this handler always answers 200.
func (ctl *Controller) Chat(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChat").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reply := ctl.AI.Chat(c.Context(), user, reqData.Message)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply generated successfully!", fiber.Map{
		"reply": reply,
	})
}
