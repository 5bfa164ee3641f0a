// Package gorm provides GORM model definitions and repository
// implementations for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringSlice stores a []string as a JSON column
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string      `gorm:"type:varchar(255);not null"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	Favorites    StringSlice `gorm:"type:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// TableName returns the table name for users
func (UserModel) TableName() string {
	return "users"
}

// HouseholdModel represents the GORM model for household profiles
type HouseholdModel struct {
	ID                  uuid.UUID   `gorm:"type:char(36);primaryKey"`
	UserID              uuid.UUID   `gorm:"type:char(36);uniqueIndex;not null"`
	HouseholdName       string      `gorm:"type:varchar(255)"`
	AdultCount          int         `gorm:"default:1"`
	KidCount            int         `gorm:"default:0"`
	DietaryPreferences  StringSlice `gorm:"type:json"`
	Allergies           StringSlice `gorm:"type:json"`
	DislikedIngredients StringSlice `gorm:"type:json"`
	WeeklyBudget        *float64
	MaxWeekdayCookTime  *int
	MaxWeekendCookTime  *int
	MealsPerWeek        *int
	PrefersLeftovers    bool `gorm:"default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName returns the table name for household profiles
func (HouseholdModel) TableName() string {
	return "household_profiles"
}

// PantryItemModel represents the GORM model for pantry items
type PantryItemModel struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID            uuid.UUID `gorm:"type:char(36);not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	NormalizedName    string    `gorm:"type:varchar(255);not null;index"`
	Quantity          *float64
	Unit              string `gorm:"type:varchar(50)"`
	Category          string `gorm:"type:varchar(50);index"`
	ExpiresAt         *time.Time
	LowStockThreshold *float64
	Note              string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for pantry items
func (PantryItemModel) TableName() string {
	return "pantry_items"
}

// MealPlanWeekModel represents the GORM model for meal plan weeks
type MealPlanWeekModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_week"`
	WeekKey   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_week"`
	Timezone  string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entries []MealPlanEntryModel `gorm:"foreignKey:WeekID"`
}

// TableName returns the table name for meal plan weeks
func (MealPlanWeekModel) TableName() string {
	return "meal_plan_weeks"
}

// MealPlanEntryModel represents the GORM model for meal plan entries
type MealPlanEntryModel struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey"`
	WeekID            uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_week_day_slot"`
	DayOfWeek         int       `gorm:"not null;uniqueIndex:idx_week_day_slot;check:day_of_week >= 0 AND day_of_week <= 6"`
	Slot              string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_week_day_slot"`
	RecipeSlug        string    `gorm:"type:varchar(255);not null"`
	RecipeTitle       string    `gorm:"type:varchar(255)"`
	RecipeTotalTime   *int
	RecipeCalories    *int
	Note              string `gorm:"type:text"`
	IsLeftoversRepeat bool   `gorm:"default:false"`
	Rationale         string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for meal plan entries
func (MealPlanEntryModel) TableName() string {
	return "meal_plan_entries"
}

// ShoppingListModel represents the GORM model for shopping lists
type ShoppingListModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_week_list"`
	WeekID      uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:idx_user_week_list"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Strictness  string    `gorm:"type:varchar(30);default:'no-filter'"`
	GeneratedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []ShoppingItemModel `gorm:"foreignKey:ListID"`
}

// TableName returns the table name for shopping lists
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// ShoppingItemModel represents the GORM model for shopping list items
type ShoppingItemModel struct {
	ID                uuid.UUID   `gorm:"type:char(36);primaryKey"`
	ListID            uuid.UUID   `gorm:"type:char(36);not null;index"`
	Name              string      `gorm:"type:varchar(255);not null"`
	NormalizedName    string      `gorm:"type:varchar(255);not null;index"`
	Category          string      `gorm:"type:varchar(50);index"`
	QuantityText      string      `gorm:"type:varchar(100)"`
	Note              string      `gorm:"type:text"`
	Checked           bool        `gorm:"default:false"`
	IsManual          bool        `gorm:"default:false;index"`
	SourceRecipeSlugs StringSlice `gorm:"type:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName returns the table name for shopping list items
func (ShoppingItemModel) TableName() string {
	return "shopping_list_items"
}

// AIRunModel represents the GORM model for AI planning audit records
type AIRunModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID `gorm:"type:char(36);not null;index"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Status       string    `gorm:"type:varchar(20);not null;index"`
	Model        string    `gorm:"type:varchar(100)"`
	LatencyMs    int64     `gorm:"default:0"`
	ErrorCode    string    `gorm:"type:varchar(50)"`
	ErrorMessage string    `gorm:"type:text"`
	RequestScope string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for AI runs
func (AIRunModel) TableName() string {
	return "ai_runs"
}
