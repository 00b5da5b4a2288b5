package dashboard

import (
	"errors"
	"time"

	"venue-booking/logger"
	"venue-booking/middleware"
	bookingModel "venue-booking/models/booking"
	userModel "venue-booking/models/user"
	"venue-booking/services/scheduler"
	"venue-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController serves the admin dashboard aggregates and the upcoming
// events listing. Approve/delete actions go through the scheduler so the
// venue side effects stay transactional.
type DashboardController struct {
	db        *gorm.DB
	scheduler *scheduler.Service
}

func NewDashboardController(db *gorm.DB, sched *scheduler.Service) *DashboardController {
	return &DashboardController{db: db, scheduler: sched}
}

// Summary returns the aggregate counts shown on the admin dashboard.
func (h *DashboardController) Summary(c *fiber.Ctx) error {
	var totalBookings int64
	if err := h.db.Model(&bookingModel.Booking{}).Count(&totalBookings).Error; err != nil {
		logger.Error("Failed to count bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch dashboard data",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	var totalUsers int64
	if err := h.db.Model(&userModel.User{}).
		Where("role = ?", userModel.RoleUser).
		Count(&totalUsers).Error; err != nil {
		logger.Error("Failed to count users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch dashboard data",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dashboard data fetched successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"totalBookings": totalBookings,
			"totalUsers":    totalUsers,
		},
	})
}

type eventItem struct {
	ID        uint      `json:"id"`
	Venue     string    `json:"venue"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Category  string    `json:"category"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

// Events lists bookings that start from now on, soonest first.
func (h *DashboardController) Events(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := h.db.Preload("Venue").Preload("User").
		Where("start_date >= ?", time.Now()).
		Order("start_date ASC").
		Find(&bookings).Error; err != nil {
		logger.Error("Failed to fetch upcoming events", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to fetch upcoming events",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	events := make([]eventItem, 0, len(bookings))
	for _, b := range bookings {
		item := eventItem{
			ID:        b.ID,
			Venue:     "N/A",
			FullName:  "N/A",
			Email:     "N/A",
			Phone:     "N/A",
			Category:  b.Category,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			Status:    b.Status.String(),
		}
		if b.Venue.ID != 0 {
			item.Venue = b.Venue.Name
		}
		if b.User.ID != 0 {
			item.FullName = b.User.FullName()
			item.Email = b.User.Email
			item.Phone = b.User.Phone
		}
		events = append(events, item)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Upcoming events fetched successfully",
		Status:  fiber.StatusOK,
		Data:    events,
	})
}

// ApproveEvent approves a booking from the events view.
func (h *DashboardController) ApproveEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid event id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	changedBy, _ := middleware.CurrentUserID(c)

	updated, err := h.scheduler.UpdateStatus(uint(id), bookingModel.BookingStatusApproved, changedBy)
	if err != nil {
		if errors.Is(err, scheduler.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Event not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		}
		logger.Error("Failed to approve event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to approve event",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Event approved successfully",
		Status:  fiber.StatusOK,
		Data:    updated,
	})
}

// DeleteEvent removes a booking from the events view and frees its venue.
func (h *DashboardController) DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ApiResponse{
			Message: "Invalid event id",
			Status:  fiber.StatusUnprocessableEntity,
			Code:    types.CodeValidationFailed,
		})
	}

	if err := h.scheduler.Delete(uint(id)); err != nil {
		if errors.Is(err, scheduler.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Event not found",
				Status:  fiber.StatusNotFound,
				Code:    types.CodeNotFound,
			})
		}
		logger.Error("Failed to delete event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete event",
			Status:  fiber.StatusInternalServerError,
			Code:    types.CodeInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Event deleted successfully",
		Status:  fiber.StatusOK,
	})
}
