// Package shopping provides the application layer for shopping lists:
// generation from the weekly plan, regeneration that preserves manual
// items, and item-level edits.
package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/ingredient"
	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/domain/shopping"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// ShoppingService implements the shopping list use cases.
type ShoppingService struct {
	catalog    outbound.RecipeCatalog
	pantryRepo outbound.PantryRepository
	planRepo   outbound.MealPlanRepository
	listRepo   outbound.ShoppingListRepository
	logger     *zap.Logger
}

// NewShoppingService creates a new shopping list service.
func NewShoppingService(
	catalog outbound.RecipeCatalog,
	pantryRepo outbound.PantryRepository,
	planRepo outbound.MealPlanRepository,
	listRepo outbound.ShoppingListRepository,
	logger *zap.Logger,
) inbound.ShoppingService {
	return &ShoppingService{
		catalog:    catalog,
		pantryRepo: pantryRepo,
		planRepo:   planRepo,
		listRepo:   listRepo,
		logger:     logger.Named("shopping-service"),
	}
}

// GenerateForWeek builds the shopping list for a planned week. Running it
// again replaces all generated items while leaving manual items alone.
func (s *ShoppingService) GenerateForWeek(ctx context.Context, userID uuid.UUID, weekKey string, strictness shopping.Strictness) (*shopping.List, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}

	s.logger.Info("Generating shopping list",
		zap.String("user_id", userID.String()),
		zap.String("week_key", weekKey),
		zap.String("strictness", string(strictness)),
	)

	pantrySet, err := s.pantryCoverage(ctx, userID)
	if err != nil {
		return nil, err
	}

	week, err := s.getOrCreateWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, err
	}

	recipes := s.resolveWeekRecipes(week)
	candidates := shopping.BuildCandidates(recipes, pantrySet, strictness)

	list, err := s.getOrCreateList(ctx, userID, week, strictness)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	generated := make([]*shopping.Item, 0, candidates.Len())
	candidates.Each(func(key string, c *shopping.Candidate) {
		generated = append(generated, &shopping.Item{
			ID:                uuid.New(),
			ListID:            list.ID,
			Name:              c.Name,
			NormalizedName:    key,
			Category:          string(c.Category),
			SourceRecipeSlugs: c.SourceRecipeSlugs,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	})

	if err := s.listRepo.ReplaceGenerated(ctx, list.ID, generated); err != nil {
		return nil, errors.NewDatabaseError("replace generated items", err)
	}

	list.Strictness = strictness
	list.GeneratedAt = &now
	if err := s.listRepo.UpdateList(ctx, list); err != nil {
		return nil, errors.NewDatabaseError("update shopping list", err)
	}

	result, err := s.listRepo.GetWithItems(ctx, list.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("load shopping list", err)
	}

	s.logger.Info("Shopping list generated",
		zap.String("list_id", list.ID.String()),
		zap.Int("generated_items", len(generated)),
		zap.Int("total_items", len(result.Items)),
	)
	return result, nil
}

// GetForWeek returns the week's list with items, or (nil, nil) when
// nothing has been generated or added yet.
func (s *ShoppingService) GetForWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*shopping.List, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}

	week, err := s.planRepo.FindWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan week", err)
	}
	if week == nil {
		return nil, nil
	}

	list, err := s.listRepo.FindByUserAndWeek(ctx, userID, week.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list == nil {
		return nil, nil
	}

	return s.listRepo.GetWithItems(ctx, list.ID)
}

// ToggleItem flips an item's checked state.
func (s *ShoppingService) ToggleItem(ctx context.Context, userID, itemID uuid.UUID) (*shopping.Item, error) {
	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Checked = !item.Checked
	item.UpdatedAt = time.Now()
	if err := s.listRepo.UpdateItem(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("update shopping item", err)
	}
	return item, nil
}

// UpdateItem applies a partial edit to an item. Renaming recomputes the
// normalized name and, when no explicit category is given, the inferred
// category.
func (s *ShoppingService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, cmd inbound.UpdateItemCommand) (*shopping.Item, error) {
	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		item.Name = *cmd.Name
		item.NormalizedName = ingredient.Canonical(*cmd.Name)
		if cmd.Category == nil {
			item.Category = string(ingredient.InferCategory(*cmd.Name))
		}
	}
	if cmd.QuantityText != nil {
		item.QuantityText = *cmd.QuantityText
	}
	if cmd.Note != nil {
		item.Note = *cmd.Note
	}
	if cmd.Category != nil {
		item.Category = *cmd.Category
	}

	item.UpdatedAt = time.Now()
	if err := s.listRepo.UpdateItem(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("update shopping item", err)
	}
	return item, nil
}

// AddManualItem appends a user-authored item to the week's list, creating
// the week and list on first use. Manual items survive regeneration.
func (s *ShoppingService) AddManualItem(ctx context.Context, userID uuid.UUID, weekKey string, cmd inbound.ManualItemCommand) (*shopping.Item, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}

	week, err := s.getOrCreateWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, err
	}
	list, err := s.getOrCreateList(ctx, userID, week, shopping.StrictnessNoFilter)
	if err != nil {
		return nil, err
	}

	category := cmd.Category
	if category == "" {
		category = string(ingredient.InferCategory(cmd.Name))
	}

	now := time.Now()
	item := &shopping.Item{
		ID:             uuid.New(),
		ListID:         list.ID,
		Name:           cmd.Name,
		NormalizedName: ingredient.Canonical(cmd.Name),
		Category:       category,
		QuantityText:   cmd.QuantityText,
		Note:           cmd.Note,
		IsManual:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.listRepo.InsertItem(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("insert shopping item", err)
	}

	s.logger.Info("Manual item added",
		zap.String("list_id", list.ID.String()),
		zap.String("item_id", item.ID.String()),
	)
	return item, nil
}

// RemoveManualItem deletes a user-authored item. Generated items are
// managed by regeneration and cannot be removed this way.
func (s *ShoppingService) RemoveManualItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if !item.IsManual {
		return errors.NewBadRequestError("only manual items can be removed")
	}
	if err := s.listRepo.DeleteItem(ctx, item.ID); err != nil {
		return errors.NewDatabaseError("delete shopping item", err)
	}
	return nil
}

func (s *ShoppingService) findOwnedItem(ctx context.Context, userID, itemID uuid.UUID) (*shopping.Item, error) {
	item, err := s.listRepo.FindItem(ctx, userID, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping item", err)
	}
	if item == nil {
		return nil, errors.NewItemNotFoundError(itemID.String())
	}
	return item, nil
}

// pantryCoverage snapshots the user's pantry as a set of canonical names.
func (s *ShoppingService) pantryCoverage(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	items, err := s.pantryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}

	normalized := make([]string, len(items))
	raw := make([]string, len(items))
	for i, item := range items {
		normalized[i] = item.NormalizedName
		raw[i] = item.Name
	}
	return shopping.PantrySet(normalized, raw), nil
}

// resolveWeekRecipes maps the week's entries to their catalog
// ingredients. Entries whose slug no longer resolves are skipped; a stale
// plan should not fail the whole generation.
func (s *ShoppingService) resolveWeekRecipes(week *planner.Week) []shopping.RecipeIngredients {
	seen := make(map[string]bool, len(week.Entries))
	var out []shopping.RecipeIngredients
	for _, entry := range week.Entries {
		if seen[entry.RecipeSlug] {
			continue
		}
		seen[entry.RecipeSlug] = true

		recipe, ok := s.catalog.BySlug(entry.RecipeSlug)
		if !ok {
			s.logger.Warn("Plan entry references unknown recipe",
				zap.String("slug", entry.RecipeSlug),
				zap.String("week_id", week.ID.String()),
			)
			continue
		}
		out = append(out, shopping.RecipeIngredients{
			Slug:        recipe.Slug,
			Ingredients: recipe.Ingredients,
		})
	}
	return out
}

func (s *ShoppingService) getOrCreateWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	week, err := s.planRepo.FindWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan week", err)
	}
	if week != nil {
		return week, nil
	}

	now := time.Now()
	week = &planner.Week{
		ID:        uuid.New(),
		UserID:    userID,
		WeekKey:   weekKey,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.planRepo.CreateWeek(ctx, week); err != nil {
		// A concurrent caller may have created the week between the find
		// and the create; the unique index makes the loser re-read.
		existing, findErr := s.planRepo.FindWeek(ctx, userID, weekKey)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, errors.NewDatabaseError("create meal plan week", err)
	}
	return week, nil
}

func (s *ShoppingService) getOrCreateList(ctx context.Context, userID uuid.UUID, week *planner.Week, strictness shopping.Strictness) (*shopping.List, error) {
	list, err := s.listRepo.FindByUserAndWeek(ctx, userID, week.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("find shopping list", err)
	}
	if list != nil {
		return list, nil
	}

	now := time.Now()
	list = &shopping.List{
		ID:         uuid.New(),
		UserID:     userID,
		WeekID:     week.ID,
		Title:      fmt.Sprintf("Shopping List (%s)", week.WeekKey),
		Strictness: strictness,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		existing, findErr := s.listRepo.FindByUserAndWeek(ctx, userID, week.ID)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, errors.NewDatabaseError("create shopping list", err)
	}
	return list, nil
}
