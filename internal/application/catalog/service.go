// Package catalog provides the application layer for browsing the static
// recipe catalog and matching recipes against on-hand ingredients.
package catalog

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/domain/ingredient"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

const (
	maxMatchResults     = 10
	maxMissingPerRecipe = 5
)

// CatalogService implements the catalog use cases.
type CatalogService struct {
	catalog outbound.RecipeCatalog
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog outbound.RecipeCatalog, logger *zap.Logger) inbound.CatalogService {
	return &CatalogService{
		catalog: catalog,
		logger:  logger.Named("catalog-service"),
	}
}

// ListRecipes returns the catalog filtered by free-text query, tag, and
// category. All filters are conjunctive and case-insensitive.
func (s *CatalogService) ListRecipes(filter inbound.RecipeFilter) []catalog.Recipe {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	tag := strings.ToLower(strings.TrimSpace(filter.Tag))
	category := strings.ToLower(strings.TrimSpace(filter.Category))

	var out []catalog.Recipe
	for _, recipe := range s.catalog.All() {
		if query != "" && !matchesQuery(recipe, query) {
			continue
		}
		if tag != "" && !hasTag(recipe, tag) {
			continue
		}
		if category != "" && strings.ToLower(recipe.Category) != category {
			continue
		}
		out = append(out, recipe)
	}
	return out
}

// GetRecipe returns the recipe for slug.
func (s *CatalogService) GetRecipe(slug string) (catalog.Recipe, error) {
	recipe, ok := s.catalog.BySlug(slug)
	if !ok {
		return catalog.Recipe{}, errors.NewRecipeNotFoundError(slug)
	}
	return recipe, nil
}

// MatchByIngredients scores every recipe against the supplied ingredient
// names and returns the best matches. Matching is bidirectional substring
// containment over canonical names, so "chicken breast" matches a recipe
// calling for "chicken".
func (s *CatalogService) MatchByIngredients(ingredients []string) []catalog.MatchResult {
	have := make([]string, 0, len(ingredients))
	for _, raw := range ingredients {
		if key := ingredient.Canonical(raw); key != "" {
			have = append(have, key)
		}
	}
	if len(have) == 0 {
		return nil
	}

	var results []catalog.MatchResult
	for _, recipe := range s.catalog.All() {
		result := scoreRecipe(recipe, have)
		if result.MatchCount == 0 {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercent > results[j].MatchPercent
	})

	if len(results) > maxMatchResults {
		results = results[:maxMatchResults]
	}
	return results
}

func scoreRecipe(recipe catalog.Recipe, have []string) catalog.MatchResult {
	matched := 0
	var missing []string
	total := 0

	for _, raw := range recipe.Ingredients {
		key := ingredient.Canonical(raw)
		if key == "" {
			continue
		}
		total++

		if covered(key, have) {
			matched++
		} else if len(missing) < maxMissingPerRecipe {
			missing = append(missing, key)
		}
	}

	percent := 0
	if total > 0 {
		// Rounded to the nearest whole percent.
		percent = (matched*100 + total/2) / total
	}
	return catalog.MatchResult{
		Recipe:             recipe,
		MatchCount:         matched,
		MatchPercent:       percent,
		MissingIngredients: missing,
	}
}

func covered(key string, have []string) bool {
	for _, h := range have {
		if strings.Contains(key, h) || strings.Contains(h, key) {
			return true
		}
	}
	return false
}

func matchesQuery(recipe catalog.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(recipe.Title), query) {
		return true
	}
	return strings.Contains(strings.ToLower(recipe.Description), query)
}

func hasTag(recipe catalog.Recipe, tag string) bool {
	for _, t := range recipe.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}
