// Package household contains the household profile domain model used to
// steer AI meal planning.
package household

import (
	"time"

	"github.com/google/uuid"
)

// Profile describes the household a user cooks for. All pointer fields
// are optional.
type Profile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	HouseholdName       string
	AdultCount          int
	KidCount            int
	DietaryPreferences  []string
	Allergies           []string
	DislikedIngredients []string
	WeeklyBudget        *float64
	MaxWeekdayCookTime  *int
	MaxWeekendCookTime  *int
	MealsPerWeek        *int
	PrefersLeftovers    bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the count fields; counts cannot be negative and at
// least one adult is expected.
func (p *Profile) Validate() error {
	if p.AdultCount < 1 {
		return ErrNoAdults
	}
	if p.KidCount < 0 {
		return ErrNegativeCount
	}
	return nil
}
