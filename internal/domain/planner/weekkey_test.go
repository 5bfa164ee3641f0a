package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidWeekKey(t *testing.T) {
	assert.True(t, ValidWeekKey("2026-W09"))
	assert.True(t, ValidWeekKey("2026-W52"))
	assert.False(t, ValidWeekKey("2026-W9"))
	assert.False(t, ValidWeekKey("2026-09"))
	assert.False(t, ValidWeekKey("26-W09"))
	assert.False(t, ValidWeekKey("2026-W091"))
	assert.False(t, ValidWeekKey(""))
}

func TestCurrentWeekKey(t *testing.T) {
	// 2026-02-25 falls in ISO week 9 of 2026.
	key := CurrentWeekKey(time.Date(2026, 2, 25, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-W09", key)

	// 2027-01-01 is a Friday belonging to ISO week 53 of 2026.
	key = CurrentWeekKey(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-W53", key)
}

func TestPreviousWeekKey(t *testing.T) {
	assert.Equal(t, "2026-W08", PreviousWeekKey("2026-W09"))
	assert.Equal(t, "2026-W01", PreviousWeekKey("2026-W02"))
	assert.Equal(t, "2026-W01", PreviousWeekKey("2026-W01"), "clamped at week 01")
	assert.Equal(t, "garbage", PreviousWeekKey("garbage"))
}

func TestEntryAt(t *testing.T) {
	week := &Week{
		Entries: []*Entry{
			{DayOfWeek: 0, Slot: SlotBreakfast, RecipeSlug: "overnight-oats"},
			{DayOfWeek: 2, Slot: SlotDinner, RecipeSlug: "beef-tacos"},
		},
	}

	entry := week.EntryAt(2, SlotDinner)
	assert.NotNil(t, entry)
	assert.Equal(t, "beef-tacos", entry.RecipeSlug)
	assert.Nil(t, week.EntryAt(2, SlotLunch))
	assert.Nil(t, week.EntryAt(5, SlotDinner))
}

func TestValidSlotAndDay(t *testing.T) {
	assert.True(t, ValidSlot(SlotBreakfast))
	assert.True(t, ValidSlot(SlotLunch))
	assert.True(t, ValidSlot(SlotDinner))
	assert.False(t, ValidSlot("BRUNCH"))

	assert.True(t, ValidDayOfWeek(0))
	assert.True(t, ValidDayOfWeek(6))
	assert.False(t, ValidDayOfWeek(-1))
	assert.False(t, ValidDayOfWeek(7))
}
