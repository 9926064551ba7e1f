package db

import (
	"fmt"
	"log"

	"github.com/clientsbook/clientsbook-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.WorkingSlot{},
		&models.Appointment{},
		&models.BookingLink{},
		&models.PremiumSubscription{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
