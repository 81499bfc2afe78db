package migration

import (
	"BloodBank-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HealthRecord{}); err != nil {
		log.Fatalf("Error migrating health record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.HealthCheck{}); err != nil {
		log.Fatalf("Error migrating health check database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BloodRequest{}); err != nil {
		log.Fatalf("Error migrating blood request database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.BloodInventoryUnit{}); err != nil {
		log.Fatalf("Error migrating blood inventory database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
