package venue

import (
	"errors"

	"venue-booking/logger"
	"venue-booking/middleware"
	bookingModel "venue-booking/models/booking"
	userModel "venue-booking/models/user"
	venueModel "venue-booking/models/venue"
	"venue-booking/services"
	"venue-booking/types"
	venueTypes "venue-booking/types/venue"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VenueController handles venue inventory requests
type VenueController struct {
	db             *gorm.DB
	permissions    *services.PermissionService
	loggerInstance *logger.AsyncLogger
}

func NewVenueController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *VenueController {
	return &VenueController{
		db:             db,
		permissions:    services.NewPermissionService(),
		loggerInstance: asyncLogger,
	}
}

func toVenueResponse(v venueModel.Venue) venueTypes.VenueResponse {
	creatorName := "Unknown"
	if v.Creator.ID != 0 {
		creatorName = v.Creator.FullName()
	}
	return venueTypes.VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Status:      v.Status.String(),
		Image:       v.Image,
		CreatorName: creatorName,
		CreatedBy:   v.CreatedBy,
	}
}

// Index lists venues. An administrator only sees venues they created; every
// other role sees the full inventory.
func (h *VenueController) Index(c *fiber.Ctx) error {
	role, _ := middleware.CurrentUserRole(c)
	userID, _ := middleware.CurrentUserID(c)

	query := h.db.Preload("Creator")
	if role == userModel.RoleAdministrator {
		query = query.Where("created_by = ?", userID)
	}

	var venues []venueModel.Venue
	if err := query.Find(&venues).Error; err != nil {
		logger.Error("Failed to fetch venues", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch venues",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	resp := make([]venueTypes.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, toVenueResponse(v))
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venues fetched successfully",
		Status:  fiber.StatusOK,
		Data:    resp,
	})
}

// Store creates a venue owned by the caller.
func (h *VenueController) Store(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Code:    types.CodeUnauthorized,
		})
	}

	var req venueTypes.VenueRequest
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

	v := venueModel.Venue{
		Name:        req.Name,
		Description: req.Description,
		Status:      venueModel.VenueStatus(req.Status),
		CreatedBy:   userID,
	}
	if req.Image != "" {
		v.Image = &req.Image
	}

	if err := h.db.Create(&v).Error; err != nil {
		logger.Error("Failed to create venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create venue",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	h.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, userID))
	logger.Success("Venue created successfully: " + v.Name)

	if err := h.db.Preload("Creator").First(&v, v.ID).Error; err != nil {
		logger.Error("Failed to load created venue", err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Venue created successfully",
		Status:  fiber.StatusCreated,
		Data:    toVenueResponse(v),
	})
}

// Update edits a venue. Administrators may only edit venues they created.
func (h *VenueController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid venue id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	var req venueTypes.VenueRequest
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

	var v venueModel.Venue
	if err := h.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Venue not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		}
		logger.Error("Failed to fetch venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch venue",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	if !h.permissions.CanManageVenue(c, v.CreatedBy) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "You may only manage venues you created",
			Status:  fiber.StatusForbidden,
			Code:    types.CodeForbidden,
		})
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"status":      req.Status,
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}

	if err := h.db.Model(&v).Updates(updates).Error; err != nil {
		logger.Error("Failed to update venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update venue",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venue updated successfully",
		Status:  fiber.StatusOK,
		Data:    v,
	})
}

// Destroy deletes a venue and all of its bookings in one transaction.
func (h *VenueController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid venue id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	var v venueModel.Venue
	if err := h.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Venue not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		}
		logger.Error("Failed to fetch venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch venue",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	if !h.permissions.CanManageVenue(c, v.CreatedBy) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "You may only manage venues you created",
			Status:  fiber.StatusForbidden,
			Code:    types.CodeForbidden,
		})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id IN (?)",
			tx.Model(&bookingModel.Booking{}).Select("id").Where("venue_id = ?", v.ID),
		).Delete(&bookingModel.BookingStatusEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", v.ID).Delete(&bookingModel.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venueModel.Venue{}, v.ID).Error
	})
	if err != nil {
		logger.Error("Failed to delete venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete venue",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	logger.Success("Venue deleted successfully: " + v.Name)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venue deleted successfully",
		Status:  fiber.StatusOK,
	})
}

// ByAdmin lists the venues created by a given administrator.
func (h *VenueController) ByAdmin(c *fiber.Ctx) error {
	adminID, err := c.ParamsInt("adminId")
	if err != nil || adminID <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid admin id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	var admin userModel.User
	if err := h.db.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Admin not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		}
		logger.Error("Failed to fetch admin", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch admin",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	var venues []venueModel.Venue
	if err := h.db.Where("created_by = ?", admin.ID).Find(&venues).Error; err != nil {
		logger.Error("Failed to fetch venues", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch venues",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	resp := make([]venueTypes.VenueResponse, 0, len(venues))
	for _, v := range venues {
		item := toVenueResponse(v)
		item.CreatorName = admin.FullName()
		resp = append(resp, item)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Venues fetched successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"venues":     resp,
			"admin_name": admin.FullName(),
		},
	})
}
