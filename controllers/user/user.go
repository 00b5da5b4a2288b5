package user

import (
	"errors"

	"venue-booking/logger"
	"venue-booking/middleware"
	userModel "venue-booking/models/user"
	"venue-booking/types"
	authTypes "venue-booking/types/auth"
	userTypes "venue-booking/types/user"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserController handles profile and customer administration requests
type UserController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewUserController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *UserController {
	return &UserController{db: db, loggerInstance: asyncLogger}
}

func (h *UserController) findUser(c *fiber.Ctx, id uint) (*userModel.User, error) {
	var account userModel.User
	if err := h.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		}
		logger.Error("Error fetching user", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error fetching user",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}
	return &account, nil
}

// GetProfile returns the authenticated account.
func (h *UserController) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Code:    types.CodeUnauthorized,
		})
	}

	account, errResp := h.findUser(c, userID)
	if account == nil {
		return errResp
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "User fetched successfully",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}

// UpdateProfile edits the caller's own name, email and phone.
func (h *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Code:    types.CodeUnauthorized,
		})
	}

	var req authTypes.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
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

	account, errResp := h.findUser(c, userID)
	if account == nil {
		return errResp
	}

	updates := map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"phone":      req.Phone,
	}
	if err := h.db.Model(account).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Message: "Email is already registered",
				Status:  fiber.StatusUnprocessableEntity,
				Code:    types.CodeValidationFailed,
			})
		}
		logger.Error("Failed to update profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update profile",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, userID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile updated successfully",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}

// GetCustomers lists all customer accounts (role=user).
func (h *UserController) GetCustomers(c *fiber.Ctx) error {
	var customers []userModel.User
	if err := h.db.Where("role = ?", userModel.RoleUser).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		logger.Error("Failed to fetch customers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch customers",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customers fetched successfully",
		Status:  fiber.StatusOK,
		Data:    customers,
	})
}

// GetAdmins lists admin-role accounts for the venue ownership pickers.
func (h *UserController) GetAdmins(c *fiber.Ctx) error {
	var admins []userModel.User
	if err := h.db.Where("role IN ?", []userModel.Role{userModel.RoleAdmin, userModel.RoleAdministrator}).
		Order("created_at DESC").
		Find(&admins).Error; err != nil {
		logger.Error("Failed to fetch admin users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch admin users",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Admin users fetched successfully",
		Status:  fiber.StatusOK,
		Data:    admins,
	})
}

// UpdateCustomer edits a customer account by id.
func (h *UserController) UpdateCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid customer id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	var req userTypes.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
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

	account, errResp := h.findUser(c, uint(id))
	if account == nil {
		return errResp
	}

	updates := map[string]interface{}{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
		"phone":      req.Phone,
	}
	if err := h.db.Model(account).Updates(updates).Error; err != nil {
		logger.Error("Failed to update customer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update customer",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customer updated successfully",
		Status:  fiber.StatusOK,
		Data:    account,
	})
}

// DeleteCustomer soft-deletes a customer account by id. The row keeps its
// deleted_at stamp and drops out of listings and logins.
func (h *UserController) DeleteCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid customer id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	account, errResp := h.findUser(c, uint(id))
	if account == nil {
		return errResp
	}

	if err := h.db.Delete(account).Error; err != nil {
		logger.Error("Failed to delete customer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete customer",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	logger.Success("Customer deleted successfully")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customer deleted successfully",
		Status:  fiber.StatusOK,
	})
}
