package gorm

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate runs auto-migration for all models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&UserModel{},
		&HouseholdModel{},
		&PantryItemModel{},
		&MealPlanWeekModel{},
		&MealPlanEntryModel{},
		&ShoppingListModel{},
		&ShoppingItemModel{},
		&AIRunModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
