package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipehub/recipehub/internal/domain/household"
	"github.com/recipehub/recipehub/internal/ports/outbound"
)

// HouseholdRepository implements the household repository interface using GORM
type HouseholdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new household repository
func NewHouseholdRepository(db *gorm.DB) outbound.HouseholdRepository {
	return &HouseholdRepository{db: db}
}

// FindByUserID finds the profile for a user, returning (nil, nil) when absent
func (r *HouseholdRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*household.Profile, error) {
	var model HouseholdModel

	result := r.db.WithContext(ctx).First(&model, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToHousehold(&model), nil
}

// Upsert creates or replaces the profile keyed by user
func (r *HouseholdRepository) Upsert(ctx context.Context, profile *household.Profile) error {
	model := HouseholdToModel(profile)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(model).
		Error
}
