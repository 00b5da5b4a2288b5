package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"

	"venue-booking/constants"
	"venue-booking/models/user"
	"venue-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken issues an HMAC-signed token carrying the account identity
// and role.
func GenerateToken(u user.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role.String(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// VerifyJWT verifies a token string and returns its claims.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// IsAuthenticated validates the bearer token (header first, access cookie as
// fallback) and gates on role membership. Claims are attached to the request
// context on success.
func IsAuthenticated(allowedRoles []user.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
					Message: "Invalid authorization header format",
					Status:  fiber.StatusUnauthorized,
					Code:    types.CodeUnauthorized,
				})
			}
			token = tokenParts[1]
		} else {
			token = c.Cookies("access")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
					Message: "Authorization token missing",
					Status:  fiber.StatusUnauthorized,
					Code:    types.CodeUnauthorized,
				})
			}
		}

		claims, err := VerifyJWT(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
				Code:    types.CodeUnauthorized,
			})
		}

		role, _ := claims["role"].(string)
		if !constants.HasRole(user.Role(role), allowedRoles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
				Code:    types.CodeForbidden,
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// RequireRoles is a helper that creates a middleware gated on specific roles
func RequireRoles(roles ...user.Role) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid token without a specific role
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated(constants.AllRoles)
}

// CurrentUserID extracts the authenticated account id from request claims.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	// JSON numbers decode as float64
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// CurrentUserRole extracts the authenticated account role from request claims.
func CurrentUserRole(c *fiber.Ctx) (user.Role, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return "", false
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(role), true
}
