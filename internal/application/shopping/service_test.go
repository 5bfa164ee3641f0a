package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/domain/shopping"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/memory"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
	"github.com/recipehub/recipehub/test/testutils"
)

const testWeekKey = "2026-W09"

type stubCatalog struct {
	recipes []catalog.Recipe
}

func (s *stubCatalog) All() []catalog.Recipe { return s.recipes }

func (s *stubCatalog) BySlug(slug string) (catalog.Recipe, bool) {
	for _, r := range s.recipes {
		if r.Slug == slug {
			return r, true
		}
	}
	return catalog.Recipe{}, false
}

func (s *stubCatalog) Slugs() map[string]bool {
	out := make(map[string]bool, len(s.recipes))
	for _, r := range s.recipes {
		out[r.Slug] = true
	}
	return out
}

// blinkPlanRepo hides the week from the first FindWeek call, standing in
// for a concurrent caller creating it between the find and the create.
type blinkPlanRepo struct {
	outbound.MealPlanRepository
	missed bool
}

func (r *blinkPlanRepo) FindWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	if !r.missed {
		r.missed = true
		return nil, nil
	}
	return r.MealPlanRepository.FindWeek(ctx, userID, weekKey)
}

// blinkListRepo does the same for the shopping list lookup.
type blinkListRepo struct {
	outbound.ShoppingListRepository
	missed bool
}

func (r *blinkListRepo) FindByUserAndWeek(ctx context.Context, userID, weekID uuid.UUID) (*shopping.List, error) {
	if !r.missed {
		r.missed = true
		return nil, nil
	}
	return r.ShoppingListRepository.FindByUserAndWeek(ctx, userID, weekID)
}

type fixture struct {
	svc        inbound.ShoppingService
	planRepo   *memory.MealPlanRepository
	pantryRepo *memory.PantryRepository
	listRepo   *memory.ShoppingListRepository
	userID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tacos := testutils.RecipeFixture("beef-tacos",
		"1 lb ground beef", "8 taco shells", "1 onion, diced", "2 cups rice")
	friedRice := testutils.RecipeFixture("chicken-fried-rice",
		"2 cups rice", "1 onion", "2 eggs")

	f := &fixture{
		planRepo:   memory.NewMealPlanRepository(),
		pantryRepo: memory.NewPantryRepository(),
		listRepo:   memory.NewShoppingListRepository(),
		userID:     uuid.New(),
	}
	f.svc = NewShoppingService(
		&stubCatalog{recipes: []catalog.Recipe{tacos, friedRice}},
		f.pantryRepo,
		f.planRepo,
		f.listRepo,
		zap.NewNop(),
	)
	return f
}

// planWeek creates the week with dinner entries for the given slugs.
func (f *fixture) planWeek(t *testing.T, slugs ...string) *planner.Week {
	t.Helper()
	ctx := context.Background()

	week := &planner.Week{
		ID:      uuid.New(),
		UserID:  f.userID,
		WeekKey: testWeekKey,
	}
	require.NoError(t, f.planRepo.CreateWeek(ctx, week))

	for day, slug := range slugs {
		entry := &planner.Entry{
			ID:          uuid.New(),
			WeekID:      week.ID,
			DayOfWeek:   day,
			Slot:        planner.SlotDinner,
			RecipeSlug:  slug,
			RecipeTitle: slug,
		}
		require.NoError(t, f.planRepo.UpsertEntry(ctx, entry))
	}
	return week
}

func (f *fixture) stockPantry(t *testing.T, names ...string) {
	t.Helper()
	factory := testutils.NewPantryItemFactory(1)
	for _, name := range names {
		require.NoError(t, f.pantryRepo.Create(context.Background(), factory.Create(f.userID, name)))
	}
}

func normalizedNames(items []*shopping.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.NormalizedName
	}
	return out
}

func TestGenerateForWeekRejectsInvalidKey(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GenerateForWeek(context.Background(), f.userID, "2026-9", shopping.StrictnessNoFilter)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidWeekKey, errors.GetCode(err))
}

func TestGenerateForWeekEmptyPlan(t *testing.T) {
	f := newFixture(t)

	list, err := f.svc.GenerateForWeek(context.Background(), f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, "Shopping List (2026-W09)", list.Title)
	assert.Empty(t, list.Items)
	assert.NotNil(t, list.GeneratedAt)
}

func TestGenerateForWeekAggregatesAndDedups(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos", "chicken-fried-rice", "beef-tacos")

	list, err := f.svc.GenerateForWeek(context.Background(), f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"ground beef", "taco shell", "onion", "rice", "egg"},
		normalizedNames(list.Items),
	)

	onion := list.ItemByNormalizedName("onion")
	require.NotNil(t, onion)
	assert.Equal(t, "1 onion, diced", onion.Name, "first contribution's display name sticks")
	assert.ElementsMatch(t, []string{"beef-tacos", "chicken-fried-rice"}, onion.SourceRecipeSlugs)
	assert.Equal(t, "produce", onion.Category)
	assert.False(t, onion.IsManual)

	rice := list.ItemByNormalizedName("rice")
	require.NotNil(t, rice)
	assert.Equal(t, "grains", rice.Category)
}

func TestGenerateForWeekSkipsUnknownSlugs(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos", "deleted-recipe")

	list, err := f.svc.GenerateForWeek(context.Background(), f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"ground beef", "taco shell", "onion", "rice"},
		normalizedNames(list.Items),
	)
}

func TestGenerateForWeekExcludeCovered(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos", "chicken-fried-rice")
	f.stockPantry(t, "Rice", "Eggs")

	list, err := f.svc.GenerateForWeek(context.Background(), f.userID, testWeekKey, shopping.StrictnessExcludeCovered)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"ground beef", "taco shell", "onion"},
		normalizedNames(list.Items),
	)
	assert.Equal(t, shopping.StrictnessExcludeCovered, list.Strictness)
}

func TestGenerateForWeekMarkCovered(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos")
	f.stockPantry(t, "rice")

	list, err := f.svc.GenerateForWeek(context.Background(), f.userID, testWeekKey, shopping.StrictnessMarkCovered)
	require.NoError(t, err)

	rice := list.ItemByNormalizedName("rice")
	require.NotNil(t, rice)
	assert.Equal(t, "2 cups rice (pantry)", rice.Name)

	beef := list.ItemByNormalizedName("ground beef")
	require.NotNil(t, beef)
	assert.Equal(t, "1 lb ground beef", beef.Name)
}

func TestRegenerationPreservesManualItems(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos")
	ctx := context.Background()

	_, err := f.svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)

	manual, err := f.svc.AddManualItem(ctx, f.userID, testWeekKey, inbound.ManualItemCommand{
		Name: "paper towels",
	})
	require.NoError(t, err)

	list, err := f.svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)

	manuals := list.ManualItems()
	require.Len(t, manuals, 1)
	assert.Equal(t, manual.ID, manuals[0].ID)
	assert.Equal(t, "paper towels", manuals[0].Name)
	assert.Len(t, list.GeneratedItems(), 4)
}

func TestRegenerationReplacesGeneratedItems(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos")
	ctx := context.Background()

	first, err := f.svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)
	require.NotEmpty(t, first.Items)

	// Check an item off, then regenerate. Generated items are replaced
	// wholesale, so the checked state does not survive.
	checked, err := f.svc.ToggleItem(ctx, f.userID, first.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, checked.Checked)

	second, err := f.svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)
	assert.Len(t, second.Items, len(first.Items), "regeneration is idempotent")
	assert.Equal(t, first.ID, second.ID, "same list row is reused")
	for _, item := range second.Items {
		assert.False(t, item.Checked)
	}
}

func TestGenerateForWeekConvergesOnCreateRace(t *testing.T) {
	f := newFixture(t)
	week := f.planWeek(t, "beef-tacos")
	ctx := context.Background()

	list := &shopping.List{
		ID:         uuid.New(),
		UserID:     f.userID,
		WeekID:     week.ID,
		Title:      "Shopping List (2026-W09)",
		Strictness: shopping.StrictnessNoFilter,
	}
	require.NoError(t, f.listRepo.Create(ctx, list))

	// Both lookups miss once, so both creates hit the unique constraint
	// and must fall back to the winner's rows.
	svc := NewShoppingService(
		&stubCatalog{recipes: []catalog.Recipe{
			testutils.RecipeFixture("beef-tacos", "1 lb ground beef"),
		}},
		f.pantryRepo,
		&blinkPlanRepo{MealPlanRepository: f.planRepo},
		&blinkListRepo{ShoppingListRepository: f.listRepo},
		zap.NewNop(),
	)

	got, err := svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)
	assert.Equal(t, list.ID, got.ID)
	assert.NotEmpty(t, got.Items)
}

func TestGetForWeek(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.svc.GetForWeek(ctx, f.userID, testWeekKey)
	require.NoError(t, err)
	assert.Nil(t, list, "nothing generated yet")

	_, err = f.svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)

	list, err = f.svc.GetForWeek(ctx, f.userID, testWeekKey)
	require.NoError(t, err)
	require.NotNil(t, list)

	_, err = f.svc.GetForWeek(ctx, f.userID, "not-a-key")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidWeekKey, errors.GetCode(err))
}

func TestToggleItem(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos")
	ctx := context.Background()

	list, err := f.svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)
	itemID := list.Items[0].ID

	item, err := f.svc.ToggleItem(ctx, f.userID, itemID)
	require.NoError(t, err)
	assert.True(t, item.Checked)

	item, err = f.svc.ToggleItem(ctx, f.userID, itemID)
	require.NoError(t, err)
	assert.False(t, item.Checked)

	_, err = f.svc.ToggleItem(ctx, uuid.New(), itemID)
	require.Error(t, err, "items are owner-scoped")
	assert.Equal(t, errors.CodeItemNotFound, errors.GetCode(err))
}

func TestUpdateItemRename(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	manual, err := f.svc.AddManualItem(ctx, f.userID, testWeekKey, inbound.ManualItemCommand{
		Name: "sparkling water",
	})
	require.NoError(t, err)

	name := "2 cups rice"
	updated, err := f.svc.UpdateItem(ctx, f.userID, manual.ID, inbound.UpdateItemCommand{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "2 cups rice", updated.Name)
	assert.Equal(t, "rice", updated.NormalizedName)
	assert.Equal(t, "grains", updated.Category, "category re-inferred on rename")
}

func TestUpdateItemExplicitCategoryWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	manual, err := f.svc.AddManualItem(ctx, f.userID, testWeekKey, inbound.ManualItemCommand{
		Name: "ice cream",
	})
	require.NoError(t, err)

	name := "frozen rice"
	category := "frozen"
	note := "family size"
	updated, err := f.svc.UpdateItem(ctx, f.userID, manual.ID, inbound.UpdateItemCommand{
		Name:     &name,
		Category: &category,
		Note:     &note,
	})
	require.NoError(t, err)
	assert.Equal(t, "frozen", updated.Category)
	assert.Equal(t, "family size", updated.Note)
}

func TestAddManualItemInfersCategory(t *testing.T) {
	f := newFixture(t)

	item, err := f.svc.AddManualItem(context.Background(), f.userID, testWeekKey, inbound.ManualItemCommand{
		Name:         "cheddar cheese",
		QuantityText: "200 g",
	})
	require.NoError(t, err)
	assert.True(t, item.IsManual)
	assert.Equal(t, "cheddar cheese", item.NormalizedName)
	assert.Equal(t, "dairy", item.Category)
	assert.Equal(t, "200 g", item.QuantityText)
}

func TestRemoveManualItem(t *testing.T) {
	f := newFixture(t)
	f.planWeek(t, "beef-tacos")
	ctx := context.Background()

	list, err := f.svc.GenerateForWeek(ctx, f.userID, testWeekKey, shopping.StrictnessNoFilter)
	require.NoError(t, err)

	manual, err := f.svc.AddManualItem(ctx, f.userID, testWeekKey, inbound.ManualItemCommand{Name: "napkins"})
	require.NoError(t, err)

	err = f.svc.RemoveManualItem(ctx, f.userID, list.Items[0].ID)
	require.Error(t, err, "generated items cannot be removed directly")
	assert.Equal(t, errors.CodeBadRequest, errors.GetCode(err))

	require.NoError(t, f.svc.RemoveManualItem(ctx, f.userID, manual.ID))

	refreshed, err := f.svc.GetForWeek(ctx, f.userID, testWeekKey)
	require.NoError(t, err)
	assert.Empty(t, refreshed.ManualItems())
}
