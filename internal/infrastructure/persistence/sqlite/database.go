// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/recipehub/recipehub/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := gormModels.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedDatabase populates the database with a demo account
func SeedDatabase(db *gorm.DB) error {
	var userCount int64
	db.Model(&gormModels.UserModel{}).Count(&userCount)
	if userCount > 0 {
		return nil // Already seeded
	}

	now := time.Now()
	demo := gormModels.UserModel{
		ID:           uuid.New(),
		Email:        "demo@recipehub.app",
		Name:         "Demo Cook",
		PasswordHash: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // password
		Favorites:    gormModels.StringSlice{"beef-tacos", "chickpea-curry"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&demo).Error; err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	quantity := 2.0
	staples := []gormModels.PantryItemModel{
		{ID: uuid.New(), UserID: demo.ID, Name: "Rice", NormalizedName: "rice", Category: "grains", Quantity: &quantity, Unit: "kg", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), UserID: demo.ID, Name: "Salt", NormalizedName: "salt", Category: "spices", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), UserID: demo.ID, Name: "Olive oil", NormalizedName: "olive oil", Category: "other", CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(&staples).Error; err != nil {
		return fmt.Errorf("failed to seed pantry: %w", err)
	}

	return nil
}
