package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipehub/recipehub/internal/domain/pantry"
	"github.com/recipehub/recipehub/internal/ports/outbound"
)

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// ListByUserID returns the user's items ordered by category then name
func (r *PantryRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*pantry.Item, error) {
	var models []PantryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category, name").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*pantry.Item, len(models))
	for i := range models {
		items[i] = ModelToPantryItem(&models[i])
	}
	return items, nil
}

// FindByID finds one item scoped to its owner, returning (nil, nil) when absent
func (r *PantryRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*pantry.Item, error) {
	var model PantryItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ? AND user_id = ?", itemID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToPantryItem(&model), nil
}

// Create inserts a new pantry item
func (r *PantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	return r.db.WithContext(ctx).Create(PantryItemToModel(item)).Error
}

// Update saves an existing pantry item
func (r *PantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	return r.db.WithContext(ctx).Save(PantryItemToModel(item)).Error
}

// Delete removes an item scoped to its owner
func (r *PantryRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&PantryItemModel{}, "id = ? AND user_id = ?", itemID, userID).
		Error
}
