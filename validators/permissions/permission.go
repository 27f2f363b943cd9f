package permissionValidators

import (
	"assisthub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func CreateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Type    string `json:"type"`
			Details string `json:"details"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Type = strings.TrimSpace(reqData.Type)
		if reqData.Type == "" {
			errors["type"] = "Request type is required!"
		} else if len(reqData.Type) > 100 {
			errors["type"] = "Request type must not exceed 100 characters!"
		}

		reqData.Details = strings.TrimSpace(reqData.Details)
		if reqData.Details == "" {
			errors["details"] = "Details are required!"
		} else if len(reqData.Details) > 500 {
			errors["details"] = "Details must not exceed 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRequest", reqData)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != "Approved" && reqData.Status != "Rejected" {
			errors["status"] = "Invalid status! Must be one of: Approved, Rejected."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}
