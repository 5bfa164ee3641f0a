package outbound

import (
	"context"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/domain/household"
)

// PlanSuggestion is one AI-proposed meal assignment. Validation of the
// day/slot/slug values is the caller's responsibility; the provider's
// structured output is untrusted.
type PlanSuggestion struct {
	DayOfWeek  int    `json:"dayOfWeek"`
	Slot       string `json:"slot"`
	RecipeSlug string `json:"recipeSlug"`
	Rationale  string `json:"rationale,omitempty"`
}

// WeekPlanRequest carries everything the AI needs to fill a week.
type WeekPlanRequest struct {
	WeekKey     string                  `json:"weekKey"`
	Household   *household.Profile      `json:"household,omitempty"`
	PantryNames []string                `json:"pantry"`
	Recipes     []catalog.RecipeSummary `json:"recipes"`
}

// WeekPlanResponse is the provider's structured answer.
type WeekPlanResponse struct {
	Suggestions []PlanSuggestion `json:"suggestions"`
}

// SlotRegenRequest asks for a single replacement suggestion.
type SlotRegenRequest struct {
	WeekKey      string                  `json:"weekKey"`
	DayOfWeek    int                     `json:"dayOfWeek"`
	Slot         string                  `json:"slot"`
	ExcludeSlugs []string                `json:"excludeSlugs"`
	Household    *household.Profile      `json:"household,omitempty"`
	PantryNames  []string                `json:"pantry"`
	Recipes      []catalog.RecipeSummary `json:"recipes"`
}

// AIService is the chat-completion boundary. Implementations return the
// provider's parsed JSON object and the model identifier used.
type AIService interface {
	SuggestWeekPlan(ctx context.Context, req WeekPlanRequest) (*WeekPlanResponse, error)
	SuggestSlot(ctx context.Context, req SlotRegenRequest) (*PlanSuggestion, error)
	Model() string
}
