package middleware

import (
	"net/http/httptest"
	"testing"

	userModel "venue-booking/models/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(role userModel.Role) userModel.User {
	return userModel.User{
		ID:        42,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Role:      role,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(testAccount(userModel.RoleAdmin))
	require.NoError(t, err)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "ada@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestVerifyJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(testAccount(userModel.RoleUser))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestIsAuthenticated_RoleGate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/admin-only", RequireRoles(userModel.RoleAdmin, userModel.RoleAdministrator), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin-only", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "NotBearer xyz")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong role", func(t *testing.T) {
		token, err := GenerateToken(testAccount(userModel.RoleUser))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin role", func(t *testing.T) {
		token, err := GenerateToken(testAccount(userModel.RoleAdmin))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("token via cookie", func(t *testing.T) {
		token, err := GenerateToken(testAccount(userModel.RoleAdministrator))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Cookie", "access="+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
