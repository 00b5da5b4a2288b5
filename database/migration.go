package database

import (
	"venue-booking/logger"
	bookingModel "venue-booking/models/booking"
	logModel "venue-booking/models/log"
	userModel "venue-booking/models/user"
	venueModel "venue-booking/models/venue"

	"gorm.io/gorm"
)

// RunMigrations migrates the schema and enforces the foreign key constraints
// the booking lifecycle relies on.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.User{},
		&venueModel.Venue{},
		&bookingModel.Booking{},
		&bookingModel.BookingStatusEvent{},
		&logModel.Log{},
	); err != nil {
		return err
	}

	return createForeignKeyConstraints(db)
}

func createForeignKeyConstraints(db *gorm.DB) error {
	// Postgres only; sqlite (tests) declares constraints inline via the model
	// tags and rejects ALTER TABLE ADD CONSTRAINT.
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_venues_creator",
			sql: `ALTER TABLE venues ADD CONSTRAINT fk_venues_creator
				FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE CASCADE`,
		},
		{
			name: "fk_bookings_user",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_user
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE`,
		},
		{
			name: "fk_booking_status_events_booking",
			sql: `ALTER TABLE booking_status_events ADD CONSTRAINT fk_booking_status_events_booking
				FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE`,
		},
	}

	for _, c := range constraints {
		var count int64
		db.Raw(`SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_name = ?`, c.name).Scan(&count)
		if count > 0 {
			continue
		}
		if err := db.Exec(c.sql).Error; err != nil {
			logger.Error("Failed to add constraint "+c.name, err)
			return err
		}
		logger.Success("Added constraint " + c.name)
	}

	return nil
}
