package pantry

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/pantry"
	"github.com/recipehub/recipehub/internal/infrastructure/persistence/memory"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

func strPtr(s string) *string     { return &s }
func floatPtr(v float64) *float64 { return &v }

func newTestService(t *testing.T) (inbound.PantryService, uuid.UUID) {
	t.Helper()
	return NewPantryService(memory.NewPantryRepository(), zap.NewNop()), uuid.New()
}

func TestAddItem(t *testing.T) {
	svc, userID := newTestService(t)

	dto, err := svc.Add(context.Background(), userID, inbound.PantryItemCommand{
		Name:     "Basmati Rice",
		Quantity: floatPtr(2),
		Unit:     "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice", dto.Name)
	assert.Equal(t, "basmati rice", dto.NormalizedName)
	assert.Equal(t, "grains", dto.Category, "category inferred when not given")
	assert.Equal(t, pantry.StatusInStock, dto.Status)
}

func TestAddItemValidation(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		cmd  inbound.PantryItemCommand
	}{
		{"empty name", inbound.PantryItemCommand{Name: "   "}},
		{"unknown unit", inbound.PantryItemCommand{Name: "rice", Unit: "barrel"}},
		{"unknown category", inbound.PantryItemCommand{Name: "rice", Category: "misc"}},
		{"bad expiry", inbound.PantryItemCommand{Name: "milk", ExpiresAt: strPtr("tomorrow")}},
		{"negative quantity", inbound.PantryItemCommand{Name: "rice", Quantity: floatPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, userID, tc.cmd)
			require.Error(t, err)
			assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
		})
	}
}

func TestUpdateItemPreservesIdentity(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, userID, inbound.PantryItemCommand{Name: "Milk", Unit: "l"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userID, created.ID, inbound.PantryItemCommand{
		Name:      "Oat Milk",
		Unit:      "l",
		ExpiresAt: strPtr("2026-09-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "oat milk", updated.NormalizedName)
	require.NotNil(t, updated.ExpiresAt)
	assert.Equal(t, "2026-09-15", updated.ExpiresAt.Format("2006-01-02"))

	_, err = svc.Update(ctx, userID, uuid.New(), inbound.PantryItemCommand{Name: "ghost"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeItemNotFound, errors.GetCode(err))
}

func TestDeleteItem(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	created, err := svc.Add(ctx, userID, inbound.PantryItemCommand{Name: "Salt"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID, created.ID))

	items, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = svc.Delete(ctx, userID, created.ID)
	require.Error(t, err)
	assert.Equal(t, errors.CodeItemNotFound, errors.GetCode(err))
}

func TestBulkAdd(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	result, err := svc.BulkAdd(ctx, userID, "2 cups rice\n\n  \nchickpeas\n250 g\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"2 cups rice", "chickpeas"}, result.Created)
	assert.Equal(t, []string{"250 g"}, result.Invalid, "quantity-only lines are invalid")

	items, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	found := map[string]bool{}
	for _, item := range items {
		found[item.NormalizedName] = true
	}
	assert.True(t, found["rice"])
	assert.True(t, found["garbanzo bean"], "bulk lines canonicalize through aliases")
}

func TestBulkAddLineLimit(t *testing.T) {
	svc, userID := newTestService(t)

	_, err := svc.BulkAdd(context.Background(), userID, strings.Repeat("rice\n", 101))
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}

func TestSummary(t *testing.T) {
	svc, userID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, userID, inbound.PantryItemCommand{Name: "Rice"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, inbound.PantryItemCommand{Name: "Milk", ExpiresAt: strPtr("2020-01-01")})
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, inbound.PantryItemCommand{
		Name: "Eggs", Quantity: floatPtr(1), LowStockThreshold: floatPtr(3),
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.ExpiredCount)
	assert.Equal(t, 1, summary.LowStockCount)
}
