package booking

import (
	"errors"

	"venue-booking/logger"
	"venue-booking/middleware"
	bookingModel "venue-booking/models/booking"
	"venue-booking/services/scheduler"
	"venue-booking/types"
	bookingTypes "venue-booking/types/booking"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	db             *gorm.DB
	scheduler      *scheduler.Service
	loggerInstance *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, sched *scheduler.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		db:             db,
		scheduler:      sched,
		loggerInstance: asyncLogger,
	}
}

// Store creates a new booking after the availability check.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
			Code:    types.CodeValidationFailed,
		})
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Code:    types.CodeUnauthorized,
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

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid start date",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
			Errors:  fiber.Map{"startDate": err.Error()},
		})
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid end date",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
			Errors:  fiber.Map{"endDate": err.Error()},
		})
	}

	created, err := bc.scheduler.Create(scheduler.CreateParams{
		UserID:        userID,
		VenueID:       req.VenueID,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Category:      req.Category,
		StartDate:     startDate,
		EndDate:       endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrInvalidInterval):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Message: err.Error(),
				Status:  fiber.StatusUnprocessableEntity,
				Code:    types.CodeValidationFailed,
				Errors:  fiber.Map{"endDate": "must be after startDate"},
			})
		case errors.Is(err, scheduler.ErrVenueNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Venue not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		case errors.Is(err, scheduler.ErrVenueUnavailable):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Message: "The venue is already booked for these dates",
				Status:  fiber.StatusUnprocessableEntity,
				Code:    types.CodeVenueUnavailable,
			})
		default:
			logger.Error("Failed to create booking", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to create booking",
				Status:  fiber.StatusInternalServerError,
				Code:    types.CodeInternalError,
			})
		}
	}

	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, userID))
	logger.Infof("Booking created successfully with reference %s", created.Reference)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking created successfully",
		Status:  fiber.StatusCreated,
		Data:    created,
	})
}

// UserBookings lists the caller's own bookings, newest first.
func (bc *BookingController) UserBookings(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Code:    types.CodeUnauthorized,
		})
	}

	var bookings []bookingModel.Booking
	if err := bc.db.Preload("Venue").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// AdminBookings lists every booking with venue, venue creator and requester
// preloaded.
func (bc *BookingController) AdminBookings(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.db.Preload("Venue").Preload("Venue.Creator").Preload("User").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch bookings",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings fetched successfully",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// UpdateStatus applies an administrator approve/reject decision.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	var req bookingTypes.BookingStatusUpdateRequest
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

	changedBy, _ := middleware.CurrentUserID(c)

	updated, err := bc.scheduler.UpdateStatus(uint(id), bookingModel.BookingStatus(req.Status), changedBy)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrInvalidStatus):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
				Message: err.Error(),
				Status:  fiber.StatusUnprocessableEntity,
				Code:    types.CodeValidationFailed,
			})
		case errors.Is(err, scheduler.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		default:
			logger.Error("Failed to update booking status", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Failed to update booking status",
				Status:  fiber.StatusInternalServerError,
				Code:    types.CodeInternalError,
			})
		}
	}

	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, changedBy))
	logger.Infof("Booking %d status updated to %s", updated.ID, updated.Status)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking status updated successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// Delete removes a booking and frees its venue.
func (bc *BookingController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	if err := bc.scheduler.Delete(uint(id)); err != nil {
		if errors.Is(err, scheduler.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		}
		logger.Error("Failed to delete booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete booking",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	changedBy, _ := middleware.CurrentUserID(c)
	bc.loggerInstance.Log(utils.CreateSanitizedLogEntry(c, changedBy))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking deleted successfully",
		Status:  fiber.StatusOK,
	})
}
