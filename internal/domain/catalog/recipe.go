// Package catalog contains the read-only recipe catalog domain types.
// Recipes are supplied by a static bundled dataset and are immutable at
// runtime.
package catalog

// Recipe is a catalog entry. Slug is the unique key everything else in
// the application references; planner entries and shopping list items
// carry slugs, never recipe IDs.
type Recipe struct {
	ID                 string   `json:"id"`
	Slug               string   `json:"slug"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Servings           int      `json:"servings"`
	PrepTime           int      `json:"prepTime"`
	CookTime           int      `json:"cookTime"`
	TotalTime          int      `json:"totalTime"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
	Tags               []string `json:"tags"`
	Category           string   `json:"category"`
	Images             []string `json:"images"`
	YoutubeVideoURL    string   `json:"youtubeVideoUrl"`
	SourceURL          string   `json:"sourceUrl"`
	Ingredients        []string `json:"ingredients"`
	Steps              []string `json:"steps"`
}

// MatchResult scores a recipe against a set of user-supplied ingredients.
type MatchResult struct {
	Recipe             Recipe   `json:"recipe"`
	MatchCount         int      `json:"matchCount"`
	MatchPercent       int      `json:"matchPercent"`
	MissingIngredients []string `json:"missingIngredients"`
}

// RecipeSummary is the condensed shape handed to the AI planner prompt.
type RecipeSummary struct {
	Slug               string   `json:"slug"`
	Title              string   `json:"title"`
	Tags               []string `json:"tags"`
	TotalTime          int      `json:"totalTime"`
	CaloriesPerServing int      `json:"caloriesPerServing"`
}

// Summary returns the condensed shape of the recipe.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		Slug:               r.Slug,
		Title:              r.Title,
		Tags:               r.Tags,
		TotalTime:          r.TotalTime,
		CaloriesPerServing: r.CaloriesPerServing,
	}
}
