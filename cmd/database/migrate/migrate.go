package migration

import (
	"MacroTrackr-Bot/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.MealEntry{}); err != nil {
		log.Errorf("Error migrating meal entry table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
