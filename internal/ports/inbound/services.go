// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the HTTP layer invokes.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/domain/household"
	"github.com/recipehub/recipehub/internal/domain/pantry"
	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/domain/shopping"
	"github.com/recipehub/recipehub/internal/domain/user"
)

// RecipeFilter narrows catalog browsing.
type RecipeFilter struct {
	Query    string
	Tag      string
	Category string
}

// CatalogService exposes the static recipe catalog and the ingredient
// matcher.
type CatalogService interface {
	ListRecipes(filter RecipeFilter) []catalog.Recipe
	GetRecipe(slug string) (catalog.Recipe, error)
	MatchByIngredients(ingredients []string) []catalog.MatchResult
}

// RegisterCommand creates an account.
type RegisterCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginCommand authenticates an account.
type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned on successful register/login.
type AuthResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserDTO   `json:"user"`
}

// UserDTO is the public shape of a user.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Favorites []string  `json:"favorites"`
}

// UserService exposes accounts, authentication, and favorites.
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
	Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
	Get(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	ResolveByEmail(ctx context.Context, email string) (*user.User, error)
	ToggleFavorite(ctx context.Context, userID uuid.UUID, recipeSlug string) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]catalog.Recipe, error)
}

// PantryItemCommand creates or updates a pantry item.
type PantryItemCommand struct {
	Name              string   `json:"name" validate:"required,max=120"`
	Quantity          *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit              string   `json:"unit"`
	Category          string   `json:"category"`
	ExpiresAt         *string  `json:"expiresAt"`
	LowStockThreshold *float64 `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	Note              string   `json:"note"`
}

// PantryItemDTO is a pantry item with its derived status.
type PantryItemDTO struct {
	ID                uuid.UUID     `json:"id"`
	Name              string        `json:"name"`
	NormalizedName    string        `json:"normalizedName"`
	Quantity          *float64      `json:"quantity"`
	Unit              string        `json:"unit"`
	Category          string        `json:"category"`
	ExpiresAt         *time.Time    `json:"expiresAt"`
	LowStockThreshold *float64      `json:"lowStockThreshold"`
	Note              string        `json:"note"`
	Status            pantry.Status `json:"status"`
}

// BulkAddResult reports the outcome of a multiline pantry import.
type BulkAddResult struct {
	Created []string `json:"created"`
	Invalid []string `json:"invalid"`
}

// PantryService exposes pantry inventory management.
type PantryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]PantryItemDTO, error)
	Add(ctx context.Context, userID uuid.UUID, cmd PantryItemCommand) (*PantryItemDTO, error)
	Update(ctx context.Context, userID, itemID uuid.UUID, cmd PantryItemCommand) (*PantryItemDTO, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	BulkAdd(ctx context.Context, userID uuid.UUID, rawText string) (*BulkAddResult, error)
	Summary(ctx context.Context, userID uuid.UUID) (*pantry.Summary, error)
}

// PlanEntryCommand places a recipe into a week slot.
type PlanEntryCommand struct {
	WeekKey           string `json:"weekKey" validate:"required"`
	DayOfWeek         int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	Slot              string `json:"slot" validate:"required"`
	RecipeSlug        string `json:"recipeSlug" validate:"required"`
	Note              string `json:"note"`
	IsLeftoversRepeat bool   `json:"isLeftoversRepeat"`
	Rationale         string `json:"rationale"`
}

// PlannerService exposes weekly meal planning, including AI-assisted
// slot filling.
type PlannerService interface {
	GetWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error)
	UpsertEntry(ctx context.Context, userID uuid.UUID, cmd PlanEntryCommand) (*planner.Week, error)
	DeleteEntry(ctx context.Context, userID uuid.UUID, weekKey string, dayOfWeek int, slot planner.Slot) (*planner.Week, error)
	CopyPreviousWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error)
	FillWeekWithAI(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error)
	RegenerateSlot(ctx context.Context, userID uuid.UUID, weekKey string, dayOfWeek int, slot planner.Slot) (*planner.Week, error)
}

// HouseholdCommand upserts a household profile.
type HouseholdCommand struct {
	HouseholdName       string   `json:"householdName" validate:"max=120"`
	AdultCount          int      `json:"adultCount" validate:"gte=1,lte=20"`
	KidCount            int      `json:"kidCount" validate:"gte=0,lte=20"`
	DietaryPreferences  []string `json:"dietaryPreferences"`
	Allergies           []string `json:"allergies"`
	DislikedIngredients []string `json:"dislikedIngredients"`
	WeeklyBudget        *float64 `json:"weeklyBudget" validate:"omitempty,gte=0"`
	MaxWeekdayCookTime  *int     `json:"maxWeekdayCookTime" validate:"omitempty,gte=0"`
	MaxWeekendCookTime  *int     `json:"maxWeekendCookTime" validate:"omitempty,gte=0"`
	MealsPerWeek        *int     `json:"mealsPerWeek" validate:"omitempty,gte=0,lte=21"`
	PrefersLeftovers    bool     `json:"prefersLeftovers"`
}

// HouseholdService exposes the household profile.
type HouseholdService interface {
	Get(ctx context.Context, userID uuid.UUID) (*household.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, cmd HouseholdCommand) (*household.Profile, error)
}

// UpdateItemCommand edits a shopping list item. Nil fields are left
// unchanged.
type UpdateItemCommand struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	QuantityText *string `json:"quantityText"`
	Note         *string `json:"note"`
	Category     *string `json:"category"`
}

// ManualItemCommand adds a user-authored item to a week's list.
type ManualItemCommand struct {
	Name         string `json:"name" validate:"required,max=200"`
	QuantityText string `json:"quantityText"`
	Note         string `json:"note"`
	Category     string `json:"category"`
}

// ShoppingService exposes shopping list generation and item management.
type ShoppingService interface {
	GenerateForWeek(ctx context.Context, userID uuid.UUID, weekKey string, strictness shopping.Strictness) (*shopping.List, error)
	// GetForWeek returns (nil, nil) when no list has been generated yet.
	GetForWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*shopping.List, error)
	ToggleItem(ctx context.Context, userID, itemID uuid.UUID) (*shopping.Item, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, cmd UpdateItemCommand) (*shopping.Item, error)
	AddManualItem(ctx context.Context, userID uuid.UUID, weekKey string, cmd ManualItemCommand) (*shopping.Item, error)
	RemoveManualItem(ctx context.Context, userID, itemID uuid.UUID) error
}
