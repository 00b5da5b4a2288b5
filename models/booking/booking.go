package booking

import (
	"time"

	"venue-booking/models/user"
	"venue-booking/models/venue"
)

// Booking represents a dated reservation of a venue made on behalf of a
// customer. The interval is half-open: [StartDate, EndDate).
type Booking struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string `gorm:"type:varchar(64);not null;unique" json:"reference"`

	// Foreign key for the requesting account
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Foreign key for the booked venue
	VenueID uint        `gorm:"not null;index:idx_bookings_venue_interval,priority:1" json:"venue_id"`
	Venue   venue.Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`

	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(20);not null" json:"customer_phone"`
	Category      string `gorm:"type:varchar(100);not null" json:"category"`

	StartDate time.Time `gorm:"not null;index:idx_bookings_venue_interval,priority:2" json:"start_date"`
	EndDate   time.Time `gorm:"not null;index:idx_bookings_venue_interval,priority:3" json:"end_date"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
