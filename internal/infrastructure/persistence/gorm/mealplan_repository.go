package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/ports/outbound"
)

// MealPlanRepository implements the meal plan repository interface using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// FindWeek loads a week and its entries, returning (nil, nil) when absent
func (r *MealPlanRepository) FindWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	var model MealPlanWeekModel

	result := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week, slot")
		}).
		First(&model, "user_id = ? AND week_key = ?", userID, weekKey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToWeek(&model), nil
}

// CreateWeek inserts an empty week
func (r *MealPlanRepository) CreateWeek(ctx context.Context, week *planner.Week) error {
	model := WeekToModel(week)
	model.Entries = nil
	return r.db.WithContext(ctx).Create(model).Error
}

// UpsertEntry creates or replaces the entry occupying (week, day, slot)
func (r *MealPlanRepository) UpsertEntry(ctx context.Context, entry *planner.Entry) error {
	model := EntryToModel(entry)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "week_id"}, {Name: "day_of_week"}, {Name: "slot"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"recipe_slug", "recipe_title", "recipe_total_time", "recipe_calories",
				"note", "is_leftovers_repeat", "rationale", "updated_at",
			}),
		}).
		Create(model).
		Error
}

// DeleteEntry clears one (week, day, slot) position
func (r *MealPlanRepository) DeleteEntry(ctx context.Context, weekID uuid.UUID, dayOfWeek int, slot planner.Slot) error {
	return r.db.WithContext(ctx).
		Delete(&MealPlanEntryModel{}, "week_id = ? AND day_of_week = ? AND slot = ?", weekID, dayOfWeek, string(slot)).
		Error
}
