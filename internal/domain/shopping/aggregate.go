package shopping

import "github.com/recipehub/recipehub/internal/domain/ingredient"

// RecipeIngredients is the slice of ingredient strings for one recipe,
// identified by slug. The aggregation does not need anything else from
// the catalog.
type RecipeIngredients struct {
	Slug        string
	Ingredients []string
}

// BuildCandidates walks the week's resolved recipes and aggregates their
// ingredients into a candidate set, applying the pantry strictness
// policy. pantrySet holds canonical names currently covered by the
// pantry. Ingredients that canonicalize to an empty key are skipped; they
// are data-quality noise, not errors.
func BuildCandidates(recipes []RecipeIngredients, pantrySet map[string]bool, strictness Strictness) *CandidateSet {
	candidates := NewCandidateSet()

	for _, recipe := range recipes {
		for _, raw := range recipe.Ingredients {
			key := ingredient.Canonical(raw)
			if key == "" {
				continue
			}

			covered := pantrySet[key]
			if covered && strictness == StrictnessExcludeCovered {
				continue
			}

			displayName := raw
			if covered && strictness == StrictnessMarkCovered {
				displayName = raw + " (pantry)"
			}

			candidates.Add(key, displayName, ingredient.InferCategory(raw), recipe.Slug)
		}
	}

	return candidates
}

// PantrySet canonicalizes pantry item names into the coverage set the
// generator consults. The normalized name wins when present; the raw name
// is the fallback. Empty keys are dropped.
func PantrySet(normalizedNames []string, rawNames []string) map[string]bool {
	set := make(map[string]bool, len(normalizedNames))
	for i, name := range normalizedNames {
		source := name
		if source == "" && i < len(rawNames) {
			source = rawNames[i]
		}
		if key := ingredient.Canonical(source); key != "" {
			set[key] = true
		}
	}
	return set
}
