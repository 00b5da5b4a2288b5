package main

import (
	"fmt"
	"os"

	"venue-booking/database"
	"venue-booking/database/seeders"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate - Run database migrations")
		fmt.Println("  go run tools/migrate.go seed    - Seed the initial admin account")
		return
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		fmt.Println("🚀 Running database migrations...")
		if _, err := database.InitDB(); err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Migration completed successfully!")

	case "seed":
		db, err := database.InitDB()
		if err != nil {
			fmt.Printf("❌ Database connection failed: %v\n", err)
			os.Exit(1)
		}
		seeders.SeedAdminUser(db)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: migrate, seed")
	}
}
