package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestItemStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	nextWeek := now.Add(7 * 24 * time.Hour)

	tests := []struct {
		name     string
		item     Item
		expected Status
	}{
		{"no quantity or expiry", Item{Name: "Salt"}, StatusInStock},
		{"above threshold", Item{Quantity: floatPtr(5), LowStockThreshold: floatPtr(1)}, StatusInStock},
		{"at threshold", Item{Quantity: floatPtr(1), LowStockThreshold: floatPtr(1)}, StatusLowStock},
		{"below threshold", Item{Quantity: floatPtr(0), LowStockThreshold: floatPtr(1)}, StatusLowStock},
		{"quantity without threshold", Item{Quantity: floatPtr(0)}, StatusInStock},
		{"expired", Item{ExpiresAt: &yesterday}, StatusExpired},
		{"expiring later", Item{ExpiresAt: &nextWeek}, StatusInStock},
		{"expired wins over low stock", Item{ExpiresAt: &yesterday, Quantity: floatPtr(0), LowStockThreshold: floatPtr(1)}, StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.Status(now))
		})
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)

	items := []*Item{
		{Name: "Rice"},
		{Name: "Milk", ExpiresAt: &yesterday},
		{Name: "Eggs", Quantity: floatPtr(1), LowStockThreshold: floatPtr(2)},
	}

	summary := Summarize(items, now)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.ExpiredCount)
	assert.Equal(t, 1, summary.LowStockCount)
}

func TestValidUnitAndCategory(t *testing.T) {
	assert.True(t, ValidUnit("kg"))
	assert.True(t, ValidUnit("can"))
	assert.False(t, ValidUnit("barrel"))

	assert.True(t, ValidCategory("produce"))
	assert.True(t, ValidCategory("other"))
	assert.False(t, ValidCategory("misc"))
}
