// Package testutils provides test data factories for consistent test
// data generation.
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/domain/ingredient"
	"github.com/recipehub/recipehub/internal/domain/pantry"
	"github.com/recipehub/recipehub/internal/domain/user"
)

// UserFactory creates test users.
type UserFactory struct {
	faker *gofakeit.Faker
}

// NewUserFactory creates a user factory with a seeded faker.
func NewUserFactory(seed int64) *UserFactory {
	return &UserFactory{faker: gofakeit.New(seed)}
}

// Create returns a valid user with a fake bcrypt-shaped hash.
func (f *UserFactory) Create() *user.User {
	u, err := user.NewUser(
		f.faker.Email(),
		f.faker.Name(),
		"$2a$10$"+f.faker.LetterN(53),
	)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid user: %v", err))
	}
	return u
}

// PantryItemFactory creates test pantry items.
type PantryItemFactory struct {
	faker *gofakeit.Faker
}

// NewPantryItemFactory creates a pantry item factory with a seeded faker.
func NewPantryItemFactory(seed int64) *PantryItemFactory {
	return &PantryItemFactory{faker: gofakeit.New(seed)}
}

// Create returns a pantry item for the given owner and ingredient name.
func (f *PantryItemFactory) Create(userID uuid.UUID, name string) *pantry.Item {
	now := time.Now()
	quantity := f.faker.Float64Range(1, 10)
	return &pantry.Item{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		NormalizedName: ingredient.Canonical(name),
		Quantity:       &quantity,
		Unit:           "pcs",
		Category:       string(ingredient.InferCategory(name)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// RecipeFixture returns a minimal catalog recipe for matcher and planner
// tests. The slug doubles as the title.
func RecipeFixture(slug string, ingredients ...string) catalog.Recipe {
	return catalog.Recipe{
		ID:                 slug,
		Slug:               slug,
		Title:              slug,
		Servings:           4,
		TotalTime:          30,
		CaloriesPerServing: 500,
		Category:           "dinner",
		Ingredients:        ingredients,
		Steps:              []string{"cook", "serve"},
	}
}
