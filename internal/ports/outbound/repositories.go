// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

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

// RecipeCatalog is the read-only static recipe dataset.
type RecipeCatalog interface {
	All() []catalog.Recipe
	BySlug(slug string) (catalog.Recipe, bool)
	Slugs() map[string]bool
}

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// HouseholdRepository persists household profiles, one per user.
type HouseholdRepository interface {
	// FindByUserID returns (nil, nil) when the user has no profile yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*household.Profile, error)
	Upsert(ctx context.Context, profile *household.Profile) error
}

// PantryRepository persists pantry inventory items.
type PantryRepository interface {
	// ListByUserID returns items ordered by category then name.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*pantry.Item, error)
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*pantry.Item, error)
	Create(ctx context.Context, item *pantry.Item) error
	Update(ctx context.Context, item *pantry.Item) error
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// MealPlanRepository persists weekly plans and their entries.
type MealPlanRepository interface {
	// FindWeek returns (nil, nil) when no week exists for the key.
	FindWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error)
	// CreateWeek inserts an empty week; the storage layer enforces the
	// (user, week key) uniqueness.
	CreateWeek(ctx context.Context, week *planner.Week) error
	UpsertEntry(ctx context.Context, entry *planner.Entry) error
	DeleteEntry(ctx context.Context, weekID uuid.UUID, dayOfWeek int, slot planner.Slot) error
}

// ShoppingListRepository persists shopping lists and items.
type ShoppingListRepository interface {
	// FindByUserAndWeek returns (nil, nil) when no list exists.
	FindByUserAndWeek(ctx context.Context, userID, weekID uuid.UUID) (*shopping.List, error)
	Create(ctx context.Context, list *shopping.List) error
	// UpdateList persists list metadata (title, strictness, generation
	// timestamp). Items are managed through the item methods.
	UpdateList(ctx context.Context, list *shopping.List) error
	// GetWithItems loads the list with items ordered by category then name.
	GetWithItems(ctx context.Context, listID uuid.UUID) (*shopping.List, error)
	// ReplaceGenerated atomically deletes all non-manual items of the list
	// and inserts the given replacements. A failure leaves either the pre-
	// or post-state, never a mix.
	ReplaceGenerated(ctx context.Context, listID uuid.UUID, items []*shopping.Item) error
	// FindItem resolves an item scoped to a list owner.
	FindItem(ctx context.Context, userID, itemID uuid.UUID) (*shopping.Item, error)
	InsertItem(ctx context.Context, item *shopping.Item) error
	UpdateItem(ctx context.Context, item *shopping.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

// CacheRepository defines the interface for caching operations. It backs
// session storage and request counters.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Increment(ctx context.Context, key string) (int64, error)
}

// AIRunRepository records the audit trail of AI planning calls.
type AIRunRepository interface {
	Create(ctx context.Context, run *planner.AIRun) error
}
