package authController

import (
	"assisthub/config"
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"
	"assisthub/services/backend"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Backend is the managed auth service; set from main. When it is unreachable
// the handlers fall back to the seeded directory.
var Backend *backend.Client

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if Backend != nil && Backend.Mode() == backend.ModeLive {
		_, err := Backend.SignInWithPassword(c.Context(), reqData.Email, reqData.Password)
		if err != nil && !errors.Is(err, backend.ErrUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}
		// ErrUnavailable flips the client to Fallback; continue with the directory.
		if err == nil {
			syncProfile(c, reqData.Email)
		}
	}

	// Directory lookup keyed by email. Seeded profiles carry no hash and
	// accept any non-empty credential; signed-up profiles are checked.
	var user models.User
	if err := database.Database.Db.Where("LOWER(email) = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}
	if user.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
		}
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, string(user.Role), user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// syncProfile pulls the backend's profile row for the email and refreshes the
// mutable fields of the local directory entry. Best effort: a failed sync
// leaves the seeded profile in place.
func syncProfile(c *fiber.Ctx, email string) {
	rows, err := Backend.QueryRecords(c.Context(), "profiles", map[string]string{"email": email})
	if err != nil || len(rows) == 0 {
		return
	}

	updates := map[string]interface{}{}
	for _, col := range []string{"name", "avatar_url", "program", "department", "about"} {
		if v, ok := rows[0][col].(string); ok && v != "" {
			updates[col] = v
		}
	}
	if len(updates) == 0 {
		return
	}
	if err := database.Database.Db.Model(&models.User{}).Where("LOWER(email) = ?", email).Updates(updates).Error; err != nil {
		log.Printf("Error syncing profile for %s: %v", email, err)
	}
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	var existing models.User
	if err := db.Where("LOWER(email) = ?", reqData.Email).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if Backend != nil && Backend.Mode() == backend.ModeLive {
		err := Backend.SignUp(c.Context(), reqData.Email, reqData.Password, map[string]interface{}{"name": reqData.Name})
		if err != nil && !errors.Is(err, backend.ErrUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
	}

	newUser := models.User{
		ID:          "S-" + uuid.NewString()[:8],
		Name:        reqData.Name,
		Email:       reqData.Email,
		Role:        models.RoleStudent,
		Password:    string(hashedPassword),
		AvatarURL:   fmt.Sprintf("https://api.dicebear.com/8.x/initials/svg?seed=%s", reqData.Name),
		Program:     "B.Tech CSE (AI & ML)",
		Preferences: datatypes.NewJSONType(models.DefaultPreferences()),
	}
	if err := db.Create(&newUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create account!", nil)
	}

	// Mirror the profile row to the backend when it is reachable.
	if Backend != nil && Backend.Mode() == backend.ModeLive {
		if err := Backend.InsertRecord(c.Context(), "profiles", map[string]interface{}{
			"id": newUser.ID, "email": newUser.Email, "name": newUser.Name, "role": newUser.Role,
		}); err != nil {
			log.Printf("Error mirroring profile %s to backend: %v", newUser.ID, err)
		}
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, string(newUser.Role), newUser.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account created successfully!", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

// Me returns the authenticated profile.
func Me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// Logout is idempotent: sessions are bearer tokens, so there is no server
// state to clear. Calling it twice ends in the same place as calling it once.
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

func UpdatePreferences(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPreferences").(*struct {
		TicketUpdates *bool `json:"ticketUpdates"`
		Announcements *bool `json:"announcements"`
		Placements    *bool `json:"placements"`
		Events        *bool `json:"events"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	prefs := user.Preferences.Data()
	if reqData.TicketUpdates != nil {
		prefs.TicketUpdates = *reqData.TicketUpdates
	}
	if reqData.Announcements != nil {
		prefs.Announcements = *reqData.Announcements
	}
	if reqData.Placements != nil {
		prefs.Placements = *reqData.Placements
	}
	if reqData.Events != nil {
		prefs.Events = *reqData.Events
	}

	if err := database.Database.Db.Model(&user).Update("preferences", datatypes.NewJSONType(prefs)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update preferences!", nil)
	}

	if Backend != nil && Backend.Mode() == backend.ModeLive {
		if err := Backend.UpdateRecord(c.Context(), "profiles", user.ID, map[string]interface{}{"preferences": prefs}); err != nil {
			log.Printf("Error mirroring preferences for %s to backend: %v", user.ID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences updated successfully!", prefs)
}
