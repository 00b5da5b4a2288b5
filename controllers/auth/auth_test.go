package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"venue-booking/database"
	"venue-booking/routes"
	"venue-booking/types"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Code    string          `json:"code"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:auth_api_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, envelope) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func registerPayload(email string) fiber.Map {
	return fiber.Map{
		"firstname": "Grace",
		"lastname":  "Hopper",
		"email":     email,
		"password":  "s3cret-pw",
		"phone":     "0123456789",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	status, env := doJSON(t, app, "POST", "/api/register", "", registerPayload("grace@example.com"))
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	assert.NotEmpty(t, env.Token)

	var account struct {
		Role  string `json:"role"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, "user", account.Role, "registration always creates a customer account")

	// Duplicate email
	status, env = doJSON(t, app, "POST", "/api/register", "", registerPayload("grace@example.com"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, types.CodeValidationFailed, env.Code)

	// Wrong password
	status, env = doJSON(t, app, "POST", "/api/login", "", fiber.Map{
		"email":    "grace@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, types.CodeUnauthorized, env.Code)

	// Unknown account
	status, _ = doJSON(t, app, "POST", "/api/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// Correct credentials
	status, env = doJSON(t, app, "POST", "/api/login", "", fiber.Map{
		"email":    "grace@example.com",
		"password": "s3cret-pw",
	})
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, env.Token)

	// The token works against a protected route
	status, env = doJSON(t, app, "GET", "/api/user/profile", env.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, "grace@example.com", account.Email)
}

func TestRegister_ValidationFailure(t *testing.T) {
	app := setupApp(t)

	payload := registerPayload("not-an-email")
	status, env := doJSON(t, app, "POST", "/api/register", "", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, types.CodeValidationFailed, env.Code)

	payload = registerPayload("short@example.com")
	payload["password"] = "abc"
	status, env = doJSON(t, app, "POST", "/api/register", "", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, types.CodeValidationFailed, env.Code)
}
