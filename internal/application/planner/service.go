// Package planner provides the application layer for weekly meal
// planning, including AI-assisted week filling and slot regeneration.
package planner

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/catalog"
	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// PlannerService implements the meal planning use cases.
type PlannerService struct {
	catalog       outbound.RecipeCatalog
	planRepo      outbound.MealPlanRepository
	householdRepo outbound.HouseholdRepository
	pantryRepo    outbound.PantryRepository
	aiRunRepo     outbound.AIRunRepository
	aiService     outbound.AIService
	logger        *zap.Logger
}

// NewPlannerService creates a new planner service.
func NewPlannerService(
	catalog outbound.RecipeCatalog,
	planRepo outbound.MealPlanRepository,
	householdRepo outbound.HouseholdRepository,
	pantryRepo outbound.PantryRepository,
	aiRunRepo outbound.AIRunRepository,
	aiService outbound.AIService,
	logger *zap.Logger,
) inbound.PlannerService {
	return &PlannerService{
		catalog:       catalog,
		planRepo:      planRepo,
		householdRepo: householdRepo,
		pantryRepo:    pantryRepo,
		aiRunRepo:     aiRunRepo,
		aiService:     aiService,
		logger:        logger.Named("planner-service"),
	}
}

// GetWeek returns the plan for weekKey, creating an empty week on first
// access.
func (s *PlannerService) GetWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}
	return s.getOrCreateWeek(ctx, userID, weekKey)
}

// UpsertEntry places a recipe into a slot, replacing whatever occupied
// it. The recipe's title, total time, and calories are snapshotted.
func (s *PlannerService) UpsertEntry(ctx context.Context, userID uuid.UUID, cmd inbound.PlanEntryCommand) (*planner.Week, error) {
	if !planner.ValidWeekKey(cmd.WeekKey) {
		return nil, errors.NewInvalidWeekKeyError(cmd.WeekKey)
	}
	slot := planner.Slot(cmd.Slot)
	if !planner.ValidSlot(slot) {
		return nil, errors.NewInvalidPlanEntryError("slot must be BREAKFAST, LUNCH, or DINNER")
	}
	if !planner.ValidDayOfWeek(cmd.DayOfWeek) {
		return nil, errors.NewInvalidPlanEntryError("dayOfWeek must be between 0 and 6")
	}

	recipe, ok := s.catalog.BySlug(cmd.RecipeSlug)
	if !ok {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeSlug)
	}

	week, err := s.getOrCreateWeek(ctx, userID, cmd.WeekKey)
	if err != nil {
		return nil, err
	}

	entry := snapshotEntry(week.ID, cmd.DayOfWeek, slot, recipe)
	entry.Note = cmd.Note
	entry.IsLeftoversRepeat = cmd.IsLeftoversRepeat
	entry.Rationale = cmd.Rationale

	if err := s.planRepo.UpsertEntry(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("upsert plan entry", err)
	}

	s.logger.Info("Plan entry saved",
		zap.String("week_key", cmd.WeekKey),
		zap.Int("day", cmd.DayOfWeek),
		zap.String("slot", cmd.Slot),
		zap.String("recipe_slug", cmd.RecipeSlug),
	)
	return s.reloadWeek(ctx, userID, cmd.WeekKey)
}

// DeleteEntry clears a slot.
func (s *PlannerService) DeleteEntry(ctx context.Context, userID uuid.UUID, weekKey string, dayOfWeek int, slot planner.Slot) (*planner.Week, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}
	if !planner.ValidSlot(slot) || !planner.ValidDayOfWeek(dayOfWeek) {
		return nil, errors.NewInvalidPlanEntryError("invalid day or slot")
	}

	week, err := s.planRepo.FindWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan week", err)
	}
	if week == nil {
		return nil, errors.NewNotFoundError("meal plan week")
	}

	if err := s.planRepo.DeleteEntry(ctx, week.ID, dayOfWeek, slot); err != nil {
		return nil, errors.NewDatabaseError("delete plan entry", err)
	}
	return s.reloadWeek(ctx, userID, weekKey)
}

// CopyPreviousWeek copies the preceding week's entries into weekKey. A
// target week that already has entries is returned unchanged.
func (s *PlannerService) CopyPreviousWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}

	week, err := s.getOrCreateWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, err
	}
	if len(week.Entries) > 0 {
		return week, nil
	}

	previousKey := planner.PreviousWeekKey(weekKey)
	if previousKey == weekKey {
		return nil, errors.NewNotFoundError("previous week plan")
	}

	previous, err := s.planRepo.FindWeek(ctx, userID, previousKey)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan week", err)
	}
	if previous == nil || len(previous.Entries) == 0 {
		return nil, errors.NewNotFoundError("previous week plan")
	}

	copied := 0
	for _, src := range previous.Entries {
		now := time.Now()
		entry := &planner.Entry{
			ID:              uuid.New(),
			WeekID:          week.ID,
			DayOfWeek:       src.DayOfWeek,
			Slot:            src.Slot,
			RecipeSlug:      src.RecipeSlug,
			RecipeTitle:     src.RecipeTitle,
			RecipeTotalTime: src.RecipeTotalTime,
			RecipeCalories:  src.RecipeCalories,
			Note:            src.Note,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.planRepo.UpsertEntry(ctx, entry); err != nil {
			return nil, errors.NewDatabaseError("upsert plan entry", err)
		}
		copied++
	}

	s.logger.Info("Copied previous week",
		zap.String("from", previousKey),
		zap.String("to", weekKey),
		zap.Int("entries", copied),
	)
	return s.reloadWeek(ctx, userID, weekKey)
}

// FillWeekWithAI asks the AI for a full week of suggestions and applies
// the valid ones to empty slots. Every attempt is recorded in the AI run
// audit trail, including failures.
func (s *PlannerService) FillWeekWithAI(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}

	week, err := s.getOrCreateWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, err
	}

	req, err := s.buildWeekPlanRequest(ctx, userID, weekKey)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	resp, aiErr := s.aiService.SuggestWeekPlan(ctx, *req)
	latency := time.Since(started).Milliseconds()

	if aiErr != nil {
		s.recordRun(ctx, userID, planner.AIRunWeekPlan, aiErr, latency, weekKey)
		return nil, errors.NewExternalServiceError("ai planner", aiErr)
	}

	applied := 0
	for _, suggestion := range resp.Suggestions {
		entry, ok := s.validateSuggestion(week, suggestion)
		if !ok {
			continue
		}
		if err := s.planRepo.UpsertEntry(ctx, entry); err != nil {
			return nil, errors.NewDatabaseError("upsert plan entry", err)
		}
		week.Entries = append(week.Entries, entry)
		applied++
	}

	s.recordRun(ctx, userID, planner.AIRunWeekPlan, nil, latency, weekKey)
	s.logger.Info("AI week fill applied",
		zap.String("week_key", weekKey),
		zap.Int("suggested", len(resp.Suggestions)),
		zap.Int("applied", applied),
		zap.Int64("latency_ms", latency),
	)
	return s.reloadWeek(ctx, userID, weekKey)
}

// RegenerateSlot asks the AI for a single replacement. When the AI fails
// or answers with an unusable suggestion, a random catalog recipe that
// differs from the current one is used instead; regeneration always
// produces a new entry.
func (s *PlannerService) RegenerateSlot(ctx context.Context, userID uuid.UUID, weekKey string, dayOfWeek int, slot planner.Slot) (*planner.Week, error) {
	if !planner.ValidWeekKey(weekKey) {
		return nil, errors.NewInvalidWeekKeyError(weekKey)
	}
	if !planner.ValidSlot(slot) || !planner.ValidDayOfWeek(dayOfWeek) {
		return nil, errors.NewInvalidPlanEntryError("invalid day or slot")
	}

	week, err := s.getOrCreateWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, err
	}

	var excludeSlugs []string
	if current := week.EntryAt(dayOfWeek, slot); current != nil {
		excludeSlugs = append(excludeSlugs, current.RecipeSlug)
	}

	weekReq, err := s.buildWeekPlanRequest(ctx, userID, weekKey)
	if err != nil {
		return nil, err
	}
	req := outbound.SlotRegenRequest{
		WeekKey:      weekKey,
		DayOfWeek:    dayOfWeek,
		Slot:         string(slot),
		ExcludeSlugs: excludeSlugs,
		Household:    weekReq.Household,
		PantryNames:  weekReq.PantryNames,
		Recipes:      weekReq.Recipes,
	}

	started := time.Now()
	suggestion, aiErr := s.aiService.SuggestSlot(ctx, req)
	latency := time.Since(started).Milliseconds()
	s.recordRun(ctx, userID, planner.AIRunSlotRegen, aiErr, latency, weekKey)

	var recipe catalog.Recipe
	rationale := ""
	ok := false
	if aiErr == nil && suggestion != nil {
		recipe, ok = s.catalog.BySlug(suggestion.RecipeSlug)
		if ok && excluded(suggestion.RecipeSlug, excludeSlugs) {
			ok = false
		}
		rationale = suggestion.Rationale
	}
	if !ok {
		recipe, err = s.randomRecipe(excludeSlugs)
		if err != nil {
			return nil, err
		}
		rationale = ""
		s.logger.Warn("Falling back to random recipe for slot",
			zap.String("week_key", weekKey),
			zap.Int("day", dayOfWeek),
			zap.String("slot", string(slot)),
			zap.Error(aiErr),
		)
	}

	entry := snapshotEntry(week.ID, dayOfWeek, slot, recipe)
	entry.Rationale = rationale
	if err := s.planRepo.UpsertEntry(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("upsert plan entry", err)
	}
	return s.reloadWeek(ctx, userID, weekKey)
}

// validateSuggestion turns an AI suggestion into an entry. Suggestions
// with out-of-range days, unknown slots, unknown slugs, or targeting an
// occupied slot are dropped.
func (s *PlannerService) validateSuggestion(week *planner.Week, suggestion outbound.PlanSuggestion) (*planner.Entry, bool) {
	slot := planner.Slot(suggestion.Slot)
	if !planner.ValidSlot(slot) || !planner.ValidDayOfWeek(suggestion.DayOfWeek) {
		s.logger.Warn("Dropping AI suggestion with invalid position",
			zap.Int("day", suggestion.DayOfWeek),
			zap.String("slot", suggestion.Slot),
		)
		return nil, false
	}
	recipe, ok := s.catalog.BySlug(suggestion.RecipeSlug)
	if !ok {
		s.logger.Warn("Dropping AI suggestion with unknown recipe",
			zap.String("slug", suggestion.RecipeSlug),
		)
		return nil, false
	}
	if week.EntryAt(suggestion.DayOfWeek, slot) != nil {
		return nil, false
	}

	entry := snapshotEntry(week.ID, suggestion.DayOfWeek, slot, recipe)
	entry.Rationale = suggestion.Rationale
	return entry, true
}

// maxPantryNames bounds the pantry portion of the AI prompt.
const maxPantryNames = 80

func (s *PlannerService) buildWeekPlanRequest(ctx context.Context, userID uuid.UUID, weekKey string) (*outbound.WeekPlanRequest, error) {
	profile, err := s.householdRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find household profile", err)
	}

	pantryItems, err := s.pantryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}
	if len(pantryItems) > maxPantryNames {
		pantryItems = pantryItems[:maxPantryNames]
	}
	pantryNames := make([]string, len(pantryItems))
	for i, item := range pantryItems {
		name := item.NormalizedName
		if name == "" {
			name = item.Name
		}
		pantryNames[i] = name
	}

	recipes := s.catalog.All()
	summaries := make([]catalog.RecipeSummary, len(recipes))
	for i, recipe := range recipes {
		summaries[i] = recipe.Summary()
	}

	return &outbound.WeekPlanRequest{
		WeekKey:     weekKey,
		Household:   profile,
		PantryNames: pantryNames,
		Recipes:     summaries,
	}, nil
}

// recordRun writes the AI audit record. Audit failures are logged, never
// surfaced; the planning outcome matters more than the trail.
func (s *PlannerService) recordRun(ctx context.Context, userID uuid.UUID, runType planner.AIRunType, aiErr error, latencyMs int64, scope string) {
	run := &planner.AIRun{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         runType,
		Status:       planner.AIRunSuccess,
		Model:        s.aiService.Model(),
		LatencyMs:    latencyMs,
		RequestScope: scope,
		CreatedAt:    time.Now(),
	}
	if aiErr != nil {
		run.Status = planner.AIRunError
		if errors.Is(aiErr, errors.CodeAIResponseInvalid) {
			run.Status = planner.AIRunInvalidJSON
		}
		run.ErrorCode = string(errors.GetCode(aiErr))
		run.ErrorMessage = aiErr.Error()
	}

	if err := s.aiRunRepo.Create(ctx, run); err != nil {
		s.logger.Error("Failed to record AI run", zap.Error(err))
	}
}

func (s *PlannerService) randomRecipe(excludeSlugs []string) (catalog.Recipe, error) {
	all := s.catalog.All()
	candidates := make([]catalog.Recipe, 0, len(all))
	for _, recipe := range all {
		if !excluded(recipe.Slug, excludeSlugs) {
			candidates = append(candidates, recipe)
		}
	}
	if len(candidates) == 0 {
		return catalog.Recipe{}, errors.NewInternalError("recipe catalog is empty")
	}
	return candidates[rand.Intn(len(candidates))], nil
}

func (s *PlannerService) getOrCreateWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
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
		// Lost a create race; the unique (user, week key) index means the
		// winner's row is now there to read.
		existing, findErr := s.planRepo.FindWeek(ctx, userID, weekKey)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, errors.NewDatabaseError("create meal plan week", err)
	}
	return week, nil
}

func (s *PlannerService) reloadWeek(ctx context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	week, err := s.planRepo.FindWeek(ctx, userID, weekKey)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan week", err)
	}
	if week == nil {
		return nil, errors.NewNotFoundError("meal plan week")
	}
	return week, nil
}

func snapshotEntry(weekID uuid.UUID, dayOfWeek int, slot planner.Slot, recipe catalog.Recipe) *planner.Entry {
	now := time.Now()
	totalTime := recipe.TotalTime
	calories := recipe.CaloriesPerServing
	return &planner.Entry{
		ID:              uuid.New(),
		WeekID:          weekID,
		DayOfWeek:       dayOfWeek,
		Slot:            slot,
		RecipeSlug:      recipe.Slug,
		RecipeTitle:     recipe.Title,
		RecipeTotalTime: &totalTime,
		RecipeCalories:  &calories,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func excluded(slug string, excludeSlugs []string) bool {
	for _, s := range excludeSlugs {
		if s == slug {
			return true
		}
	}
	return false
}
