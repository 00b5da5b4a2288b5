package user

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account roles. "admin" is the platform-wide
// administrator; "administrator" is a venue owner whose management rights
// are scoped to self-created venues; "user" is a regular customer.
type Role string

const (
	RoleUser          Role = "user"
	RoleAdmin         Role = "admin"
	RoleAdministrator Role = "administrator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleAdministrator:
		return true
	default:
		return false
	}
}

// IsAdminRole reports whether the role may manage venues and bookings.
func (r Role) IsAdminRole() bool {
	return r == RoleAdmin || r == RoleAdministrator
}

// User represents a platform account.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string `gorm:"type:varchar(255);not null" json:"firstname"`
	LastName     string `gorm:"type:varchar(255);not null" json:"lastname"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	Phone        string `gorm:"type:varchar(20);not null" json:"phone"`
	Role         Role   `gorm:"type:varchar(20);not null;default:user" json:"role"`
	ProfileImage string `gorm:"type:varchar(2048)" json:"profile_image"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// FullName joins the name fields for display in venue and booking listings.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "users"
}
