// Package planner contains the weekly meal plan domain model.
package planner

import (
	"time"

	"github.com/google/uuid"
)

// Slot identifies a meal within a day.
type Slot string

const (
	SlotBreakfast Slot = "BREAKFAST"
	SlotLunch     Slot = "LUNCH"
	SlotDinner    Slot = "DINNER"
)

// ValidSlot reports whether s is a recognized meal slot.
func ValidSlot(s Slot) bool {
	return s == SlotBreakfast || s == SlotLunch || s == SlotDinner
}

// ValidDayOfWeek reports whether day is in the 0..6 range (Monday-based,
// matching the week key's ISO semantics).
func ValidDayOfWeek(day int) bool {
	return day >= 0 && day <= 6
}

// Entry is one planned meal. The recipe's title, time, and calories are
// snapshotted at planning time so catalog edits do not rewrite history.
type Entry struct {
	ID                uuid.UUID
	WeekID            uuid.UUID
	DayOfWeek         int
	Slot              Slot
	RecipeSlug        string
	RecipeTitle       string
	RecipeTotalTime   *int
	RecipeCalories    *int
	Note              string
	IsLeftoversRepeat bool
	Rationale         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Week is a user's plan for one ISO week. At most one week exists per
// (user, week key) pair.
type Week struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	WeekKey   string
	Timezone  string
	Entries   []*Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryAt returns the entry occupying (day, slot), or nil.
func (w *Week) EntryAt(day int, slot Slot) *Entry {
	for _, e := range w.Entries {
		if e.DayOfWeek == day && e.Slot == slot {
			return e
		}
	}
	return nil
}
