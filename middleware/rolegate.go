package middleware

import (
	"assisthub/database"
	"assisthub/models"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser returns the profile loaded by RequireRole for this request.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("currentUser").(models.User)
	return user, ok
}

// RequireRole loads the authenticated user's profile and checks its role.
// With no roles given any authenticated, non-deactivated user passes. The
// profile is stored in c.Locals("currentUser") for the handler.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(string)
		if !ok || userID == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
		}

		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
			}
		}

		c.Locals("currentUser", user)
		return c.Next()
	}
}
