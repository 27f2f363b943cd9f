package ticketController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"assisthub/config"
	"assisthub/database"
	"assisthub/middleware"
	"assisthub/models"
	"assisthub/routers/ticketRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	ticketRoutes.SetupTicketRoutes(app)
	return app
}

func tokenFor(t *testing.T, id string) string {
	t.Helper()

	var user models.User
	require.NoError(t, database.Database.Db.Where("id = ?", id).First(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, string(user.Role), user.Email)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
		reader = &buf
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestCreateTicketRoutesAcademicCategoryToFaculty(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, fiber.MethodPost, "/tickets/", tokenFor(t, "S001"), fiber.Map{
		"title":    "Doubt about CS301 grading",
		"category": "General Enquiry/Academic",
	})
	require.Equal(t, fiber.StatusOK, code)

	ticket := body["data"].(map[string]interface{})
	assert.Equal(t, "Pending", ticket["status"])
	assert.Equal(t, "Faculty", ticket["assignedToRole"])
	assert.Equal(t, "Alex Johnson", ticket["submittedByName"])
}

func TestStudentListSeesOwnTicketsOnly(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, fiber.MethodGet, "/tickets/", tokenFor(t, "S001"), nil)
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	tickets := data["tickets"].([]interface{})
	require.Len(t, tickets, 1)
	assert.Equal(t, "T-1002", tickets[0].(map[string]interface{})["id"])
}

func TestAdminListSeesAllTickets(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, fiber.MethodGet, "/tickets/", tokenFor(t, "A001"), nil)
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Len(t, data["tickets"].([]interface{}), 3)
	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(3), pagination["total"])
}

func TestListFiltersByStatus(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, fiber.MethodGet, "/tickets/?status=Pending", tokenFor(t, "A001"), nil)
	require.Equal(t, fiber.StatusOK, code)

	tickets := body["data"].(map[string]interface{})["tickets"].([]interface{})
	require.Len(t, tickets, 1)
	assert.Equal(t, "T-1001", tickets[0].(map[string]interface{})["id"])
}

func TestStudentCannotUpdateTicketStatus(t *testing.T) {
	app := setupApp(t)

	code, body := doRequest(t, app, fiber.MethodPut, "/tickets/T-1002/status", tokenFor(t, "S001"), fiber.Map{
		"status": "Resolved",
	})
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "You are not allowed to update this ticket!", body["message"])
}

func TestInvalidTransitionConflicts(t *testing.T) {
	app := setupApp(t)

	// T-1003 is already Resolved; Pending is a backward move.
	code, body := doRequest(t, app, fiber.MethodPut, "/tickets/T-1003/status", tokenFor(t, "A001"), fiber.Map{
		"status": "Pending",
	})
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "This status change is not permitted!", body["message"])
}

func TestUnknownTicketIsNotFound(t *testing.T) {
	app := setupApp(t)

	code, _ := doRequest(t, app, fiber.MethodPut, "/tickets/T-9999/status", tokenFor(t, "A001"), fiber.Map{
		"status": "Resolved",
	})
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestAdminResolvesTicketAndHistoryGrows(t *testing.T) {
	app := setupApp(t)
	admin := tokenFor(t, "A001")

	code, _ := doRequest(t, app, fiber.MethodPut, "/tickets/T-1002/status", admin, fiber.Map{
		"status":          "Resolved",
		"resolutionNotes": "Plumber fixed the leakage.",
	})
	require.Equal(t, fiber.StatusOK, code)

	code, body := doRequest(t, app, fiber.MethodGet, "/tickets/T-1002/history", admin, nil)
	require.Equal(t, fiber.StatusOK, code)

	history := body["data"].([]interface{})
	require.NotEmpty(t, history)
	latest := history[0].(map[string]interface{})
	assert.Contains(t, latest["action"], "Status updated to Resolved")
	assert.Equal(t, "Marcus Chen", latest["actorName"])
}

func TestStudentCannotReadOthersHistory(t *testing.T) {
	app := setupApp(t)

	// T-1003 belongs to S002.
	code, _ := doRequest(t, app, fiber.MethodGet, "/tickets/T-1003/history", tokenFor(t, "S001"), nil)
	assert.Equal(t, fiber.StatusForbidden, code)
}
