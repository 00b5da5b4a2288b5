package venue

import (
	"time"

	"venue-booking/models/user"
)

// Venue represents a bookable venue owned by an administrator account.
type Venue struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Status      VenueStatus `gorm:"type:varchar(20);not null;default:available" json:"status"`
	Image       *string     `gorm:"type:varchar(2048)" json:"image,omitempty"`

	// Foreign key for the creating administrator
	CreatedBy uint      `gorm:"not null;index" json:"created_by"`
	Creator   user.User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Venue model
func (Venue) TableName() string {
	return "venues"
}
