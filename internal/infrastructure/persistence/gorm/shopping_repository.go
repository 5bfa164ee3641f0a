package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipehub/recipehub/internal/domain/shopping"
	"github.com/recipehub/recipehub/internal/ports/outbound"
)

// ShoppingListRepository implements the shopping list repository interface using GORM
type ShoppingListRepository struct {
	db *gorm.DB
}

// NewShoppingListRepository creates a new shopping list repository
func NewShoppingListRepository(db *gorm.DB) outbound.ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// FindByUserAndWeek finds the list for a (user, week) pair, returning
// (nil, nil) when absent
func (r *ShoppingListRepository) FindByUserAndWeek(ctx context.Context, userID, weekID uuid.UUID) (*shopping.List, error) {
	var model ShoppingListModel

	result := r.db.WithContext(ctx).First(&model, "user_id = ? AND week_id = ?", userID, weekID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToList(&model), nil
}

// Create inserts a new list without items
func (r *ShoppingListRepository) Create(ctx context.Context, list *shopping.List) error {
	return r.db.WithContext(ctx).Create(ListToModel(list)).Error
}

// UpdateList saves list metadata
func (r *ShoppingListRepository) UpdateList(ctx context.Context, list *shopping.List) error {
	return r.db.WithContext(ctx).Save(ListToModel(list)).Error
}

// GetWithItems loads a list with its items ordered by category then name
func (r *ShoppingListRepository) GetWithItems(ctx context.Context, listID uuid.UUID) (*shopping.List, error) {
	var model ShoppingListModel

	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("category, name")
		}).
		First(&model, "id = ?", listID)
	if result.Error != nil {
		return nil, result.Error
	}

	return ModelToList(&model), nil
}

// ReplaceGenerated swaps all generated items inside one transaction.
// Manual items are untouched.
func (r *ShoppingListRepository) ReplaceGenerated(ctx context.Context, listID uuid.UUID, items []*shopping.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ShoppingItemModel{}, "list_id = ? AND is_manual = ?", listID, false).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		models := make([]ShoppingItemModel, len(items))
		for i, item := range items {
			models[i] = *ItemToModel(item)
		}
		return tx.Create(&models).Error
	})
}

// FindItem resolves an item through its list's owner, returning
// (nil, nil) when absent
func (r *ShoppingListRepository) FindItem(ctx context.Context, userID, itemID uuid.UUID) (*shopping.Item, error) {
	var model ShoppingItemModel

	result := r.db.WithContext(ctx).
		Joins("JOIN shopping_lists ON shopping_lists.id = shopping_list_items.list_id").
		Where("shopping_list_items.id = ? AND shopping_lists.user_id = ?", itemID, userID).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToItem(&model), nil
}

// InsertItem adds one item
func (r *ShoppingListRepository) InsertItem(ctx context.Context, item *shopping.Item) error {
	return r.db.WithContext(ctx).Create(ItemToModel(item)).Error
}

// UpdateItem saves one item
func (r *ShoppingListRepository) UpdateItem(ctx context.Context, item *shopping.Item) error {
	return r.db.WithContext(ctx).Save(ItemToModel(item)).Error
}

// DeleteItem removes one item
func (r *ShoppingListRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ShoppingItemModel{}, "id = ?", itemID).Error
}
