// Package catalog loads the bundled recipe dataset and serves it as the
// read-only catalog.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/ports/outbound"
)

//go:embed data/recipes.json
var recipesJSON []byte

type dataset struct {
	Recipes []catalog.Recipe `json:"recipes"`
}

// Store is an in-memory catalog backed by the embedded dataset.
type Store struct {
	recipes []catalog.Recipe
	bySlug  map[string]catalog.Recipe
}

// NewStore parses the embedded dataset.
func NewStore() (*Store, error) {
	return newStoreFrom(recipesJSON)
}

// NewStoreFromJSON builds a catalog from raw dataset bytes. Tests use it
// to run against small fixtures.
func NewStoreFromJSON(raw []byte) (*Store, error) {
	return newStoreFrom(raw)
}

func newStoreFrom(raw []byte) (*Store, error) {
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse recipe dataset: %w", err)
	}
	if len(ds.Recipes) == 0 {
		return nil, fmt.Errorf("recipe dataset is empty")
	}

	bySlug := make(map[string]catalog.Recipe, len(ds.Recipes))
	for _, recipe := range ds.Recipes {
		if recipe.Slug == "" {
			return nil, fmt.Errorf("recipe %q has no slug", recipe.Title)
		}
		if _, dup := bySlug[recipe.Slug]; dup {
			return nil, fmt.Errorf("duplicate recipe slug %q", recipe.Slug)
		}
		bySlug[recipe.Slug] = recipe
	}

	return &Store{recipes: ds.Recipes, bySlug: bySlug}, nil
}

// All returns every recipe in dataset order.
func (s *Store) All() []catalog.Recipe {
	out := make([]catalog.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// BySlug returns the recipe for slug.
func (s *Store) BySlug(slug string) (catalog.Recipe, bool) {
	recipe, ok := s.bySlug[slug]
	return recipe, ok
}

// Slugs returns the set of known slugs.
func (s *Store) Slugs() map[string]bool {
	out := make(map[string]bool, len(s.bySlug))
	for slug := range s.bySlug {
		out[slug] = true
	}
	return out
}

var _ outbound.RecipeCatalog = (*Store)(nil)
