package migration

import (
	"fmt"
	"food-journal-backend/entities"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodEntry{}); err != nil {
		log.Fatalf("Error migrating food entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.EntryCategory{}); err != nil {
		log.Fatalf("Error migrating entry category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MonthlyGoal{}); err != nil {
		log.Fatalf("Error migrating monthly goal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.QuizResult{}); err != nil {
		log.Fatalf("Error migrating quiz result database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
