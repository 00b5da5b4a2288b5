package routes

import (
	"venue-booking/constants"
	"venue-booking/controllers/auth"
	"venue-booking/controllers/booking"
	"venue-booking/controllers/dashboard"
	"venue-booking/controllers/user"
	"venue-booking/controllers/venue"
	"venue-booking/logger"
	"venue-booking/middleware"
	"venue-booking/services/scheduler"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	sched := scheduler.NewService(db)

	authController := auth.NewAuthController(db, asyncLogger)
	userController := user.NewUserController(db, asyncLogger)
	venueController := venue.NewVenueController(db, asyncLogger)
	bookingController := booking.NewBookingController(db, sched, asyncLogger)
	dashboardController := dashboard.NewDashboardController(db, sched)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/register", authController.Register)
	api.Post("/login", authController.Login)

	/*=============================================================================
	| Authenticated Routes
	===============================================================================*/
	api.Post("/logout", middleware.RequireAuthentication(), authController.LogOut)
	api.Get("/user/profile", middleware.RequireAuthentication(), userController.GetProfile)
	api.Post("/user/profile/update", middleware.RequireAuthentication(), userController.UpdateProfile)

	/*=============================================================================
	| Venue Routes
	===============================================================================*/
	api.Get("/venues", middleware.RequireAuthentication(), venueController.Index)
	api.Get("/venues/admin/:adminId", middleware.RequireAuthentication(), venueController.ByAdmin)
	api.Post("/venues", middleware.RequireRoles(constants.AdminRoles...), venueController.Store)
	api.Put("/venues/:id", middleware.RequireRoles(constants.AdminRoles...), venueController.Update)
	api.Delete("/venues/:id", middleware.RequireRoles(constants.AdminRoles...), venueController.Destroy)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	api.Post("/booking", middleware.RequireAuthentication(), bookingController.Store)
	api.Get("/user/booking", middleware.RequireAuthentication(), bookingController.UserBookings)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	admin := api.Group("/admin").Use(middleware.RequireRoles(constants.AdminRoles...))
	admin.Get("/booking", bookingController.AdminBookings)
	admin.Put("/booking/:id/status", bookingController.UpdateStatus)
	admin.Delete("/booking/:id", bookingController.Delete)

	admin.Get("/customers", userController.GetCustomers)
	admin.Put("/customers/:id", userController.UpdateCustomer)
	admin.Delete("/customers/:id", userController.DeleteCustomer)
	admin.Get("/users", userController.GetAdmins)

	admin.Get("/dashboard", dashboardController.Summary)
	admin.Get("/events", dashboardController.Events)
	admin.Put("/events/:id/approve", dashboardController.ApproveEvent)
	admin.Delete("/events/:id", dashboardController.DeleteEvent)
}
