package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"assisthub/config"
	authController "assisthub/controllers/auth"
	"assisthub/database"
	"assisthub/routers/authRoutes"
	"assisthub/services/backend"

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

	authController.Backend = backend.NewClient("", "")

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestLoginSeededProfileAcceptsAnyCredential(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "alex.j@niat.edu",
		"password": "whatever",
	}, nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "S001", user["id"])
	assert.Equal(t, "Alex Johnson", user["name"])
	assert.Equal(t, "Student", user["role"])
	assert.NotEmpty(t, data["token"])
}

func TestLoginUnknownEmailRejected(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "nobody@niat.edu",
		"password": "whatever",
	}, nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid email or password!", body["message"])
}

func TestLoginEmptyPasswordFailsValidation(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "alex.j@niat.edu",
		"password": "",
	}, nil)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Validation failed!", body["message"])
}

func TestSignupThenLoginWithPassword(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "New Student",
		"email":    "new.student@niat.edu",
		"password": "secret123",
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	user := body["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Student", user["role"])
	assert.Equal(t, "B.Tech CSE (AI & ML)", user["program"])

	// The hash is checked for signed-up accounts.
	resp, _ = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "new.student@niat.edu",
		"password": "wrongpass",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "new.student@niat.edu",
		"password": "secret123",
	}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/auth/signup", fiber.Map{
		"name":     "Alex Clone",
		"email":    "alex.j@niat.edu",
		"password": "secret123",
	}, nil)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email is already registered!", body["message"])
}

func TestLogoutIsIdempotent(t *testing.T) {
	app := setupApp(t)

	for i := 0; i < 2; i++ {
		resp, body := postJSON(t, app, "/auth/logout", fiber.Map{}, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Logged out successfully!", body["message"])
	}
}

func TestMeReturnsAuthenticatedProfile(t *testing.T) {
	app := setupApp(t)

	_, body := postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "m.chen@niat.edu",
		"password": "anything",
	}, nil)
	token := body["data"].(map[string]interface{})["token"].(string)

	req := httptest.NewRequest(fiber.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))

	user := parsed["data"].(map[string]interface{})
	assert.Equal(t, "A001", user["id"])
	assert.Equal(t, "Admin", user["role"])
}

func TestMeWithoutTokenRejected(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
