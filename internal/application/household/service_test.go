package household

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/infrastructure/persistence/memory"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

func TestGetWithoutProfile(t *testing.T) {
	svc := NewHouseholdService(memory.NewHouseholdRepository(), zap.NewNop())

	profile, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestUpsertCreatesAndReplaces(t *testing.T) {
	svc := NewHouseholdService(memory.NewHouseholdRepository(), zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Upsert(ctx, userID, inbound.HouseholdCommand{
		HouseholdName:      "The Testers",
		AdultCount:         2,
		KidCount:           1,
		DietaryPreferences: []string{"vegetarian"},
		MealsPerWeek:       5,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)

	replaced, err := svc.Upsert(ctx, userID, inbound.HouseholdCommand{
		HouseholdName: "The Testers",
		AdultCount:    3,
		MealsPerWeek:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID, "profile identity is stable across upserts")
	assert.Equal(t, 3, replaced.AdultCount)
	assert.Empty(t, replaced.DietaryPreferences, "upsert replaces, it does not merge")

	loaded, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 3, loaded.AdultCount)
}

func TestUpsertValidation(t *testing.T) {
	svc := NewHouseholdService(memory.NewHouseholdRepository(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Upsert(ctx, uuid.New(), inbound.HouseholdCommand{AdultCount: 0})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))

	_, err = svc.Upsert(ctx, uuid.New(), inbound.HouseholdCommand{AdultCount: 2, KidCount: -1})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}
