package seeders

import (
	"log"
	"os"

	userModel "venue-booking/models/user"
	"venue-booking/utils"

	"gorm.io/gorm"
)

// SeedAdminUser creates the initial platform admin account if no admin
// exists yet. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) {
	log.Printf("🔍 Checking admin account...")

	var count int64
	db.Model(&userModel.User{}).Where("role = ?", userModel.RoleAdmin).Count(&count)
	if count > 0 {
		log.Printf("✅ Admin account already present, skipping seed")
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := userModel.User{
		FirstName: "Platform",
		LastName:  "Admin",
		Email:     email,
		Password:  hash,
		Phone:     "0000000000",
		Role:      userModel.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin account: %v", err)
		return
	}
	log.Printf("✅ Seeded admin account %s", email)
}
