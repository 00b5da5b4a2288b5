package auth

import (
	"errors"
	"os"

	"venue-booking/logger"
	"venue-booking/middleware"
	userModel "venue-booking/models/user"
	"venue-booking/types"
	authTypes "venue-booking/types/auth"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a customer account and returns a fresh token.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
			Code:    types.CodeValidationFailed,
		})
	}

	if err := utils.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Validation failed",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
			Errors:  utils.FormatValidationErrors(err),
		})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	newUser := userModel.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
		Phone:     req.Phone,
		Role:      userModel.RoleUser,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Message: "Email is already registered",
				Status:  fiber.StatusUnprocessableEntity,
				Code:    types.CodeValidationFailed,
			})
		}
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	token, err := middleware.GenerateToken(newUser)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	h.setSecureCookie(c, "access", token, 24*60*60)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, newUser.ID))
	logger.Success("User registered successfully: " + newUser.Email)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "User registered successfully",
		Status:  fiber.StatusCreated,
		Token:   token,
		Data:    newUser,
	})
}

// Login exchanges email+password for a token.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
			Code:    types.CodeValidationFailed,
		})
	}

	if err := utils.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Validation failed",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
			Errors:  utils.FormatValidationErrors(err),
		})
	}

	var account userModel.User
	if err := h.db.Where("email = ?", req.Email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
				Code:    types.CodeUnauthorized,
			})
		}
		logger.Error("Error fetching user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	if !utils.CheckPassword(account.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid email or password",
			Status:  fiber.StatusUnauthorized,
			Code:    types.CodeUnauthorized,
		})
	}

	token, err := middleware.GenerateToken(account)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	h.setSecureCookie(c, "access", token, 24*60*60)
	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, account.ID))
	logger.Success("User logged in successfully: " + account.Email)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    account,
	})
}

// LogOut clears the access cookie. Tokens are short-lived; no revocation
// store is kept.
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged out successfully",
		Status:  fiber.StatusOK,
	})
}
