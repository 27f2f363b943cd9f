package userController

import (
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// UserList returns the full directory. Admin-gated at the route.
func UserList(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("id").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// UpdateUserRole changes a user's role. Role change is the only admin
// mutation on a profile.
func UpdateUserRole(c *fiber.Ctx) error {
	reqData := new(struct {
		Role string `json:"role"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	role := models.UserRole(reqData.Role)
	valid := false
	for _, r := range models.Roles {
		if r == role {
			valid = true
			break
		}
	}
	if !valid {
		return middleware.ValidationErrorResponse(c, map[string]string{"role": "Invalid role! Must be one of: Student, Faculty, Admin."})
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", c.Params("id"), false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("role", role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User role updated successfully!", fiber.Map{
		"id":   user.ID,
		"role": role,
	})
}

// DeactivateUser soft-deletes a profile. Against the seeded store real
// account removal is not available, so this only flips the flag.
func DeactivateUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", c.Params("id"), false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate user!", nil)
	}

	log.Printf("User %s deactivated", user.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deactivated successfully!", nil)
}
