// Package household provides the application layer for household
// profiles.
package household

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/household"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// HouseholdService implements the household profile use cases.
type HouseholdService struct {
	householdRepo outbound.HouseholdRepository
	logger        *zap.Logger
}

// NewHouseholdService creates a new household service.
func NewHouseholdService(householdRepo outbound.HouseholdRepository, logger *zap.Logger) inbound.HouseholdService {
	return &HouseholdService{
		householdRepo: householdRepo,
		logger:        logger.Named("household-service"),
	}
}

// Get returns the user's profile, or (nil, nil) when none exists yet.
func (s *HouseholdService) Get(ctx context.Context, userID uuid.UUID) (*household.Profile, error) {
	profile, err := s.householdRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find household profile", err)
	}
	return profile, nil
}

// Upsert creates or replaces the user's profile.
func (s *HouseholdService) Upsert(ctx context.Context, userID uuid.UUID, cmd inbound.HouseholdCommand) (*household.Profile, error) {
	existing, err := s.householdRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find household profile", err)
	}

	now := time.Now()
	profile := &household.Profile{
		ID:                  uuid.New(),
		UserID:              userID,
		HouseholdName:       cmd.HouseholdName,
		AdultCount:          cmd.AdultCount,
		KidCount:            cmd.KidCount,
		DietaryPreferences:  cmd.DietaryPreferences,
		Allergies:           cmd.Allergies,
		DislikedIngredients: cmd.DislikedIngredients,
		WeeklyBudget:        cmd.WeeklyBudget,
		MaxWeekdayCookTime:  cmd.MaxWeekdayCookTime,
		MaxWeekendCookTime:  cmd.MaxWeekendCookTime,
		MealsPerWeek:        cmd.MealsPerWeek,
		PrefersLeftovers:    cmd.PrefersLeftovers,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	if err := profile.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.householdRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.NewDatabaseError("upsert household profile", err)
	}

	s.logger.Info("Household profile saved",
		zap.String("user_id", userID.String()),
		zap.Int("adults", profile.AdultCount),
		zap.Int("kids", profile.KidCount),
	)
	return profile, nil
}
