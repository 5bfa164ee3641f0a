package gorm

import (
	"github.com/recipehub/recipehub/internal/domain/household"
	"github.com/recipehub/recipehub/internal/domain/pantry"
	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/domain/shopping"
	"github.com/recipehub/recipehub/internal/domain/user"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Favorites:    StringSlice(u.Favorites),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(m *UserModel) *user.User {
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Favorites:    []string(m.Favorites),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		LastLoginAt:  m.LastLoginAt,
	}
}

// HouseholdToModel converts a domain household profile to a GORM model
func HouseholdToModel(p *household.Profile) *HouseholdModel {
	return &HouseholdModel{
		ID:                  p.ID,
		UserID:              p.UserID,
		HouseholdName:       p.HouseholdName,
		AdultCount:          p.AdultCount,
		KidCount:            p.KidCount,
		DietaryPreferences:  StringSlice(p.DietaryPreferences),
		Allergies:           StringSlice(p.Allergies),
		DislikedIngredients: StringSlice(p.DislikedIngredients),
		WeeklyBudget:        p.WeeklyBudget,
		MaxWeekdayCookTime:  p.MaxWeekdayCookTime,
		MaxWeekendCookTime:  p.MaxWeekendCookTime,
		MealsPerWeek:        p.MealsPerWeek,
		PrefersLeftovers:    p.PrefersLeftovers,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// ModelToHousehold converts a GORM model to a domain household profile
func ModelToHousehold(m *HouseholdModel) *household.Profile {
	return &household.Profile{
		ID:                  m.ID,
		UserID:              m.UserID,
		HouseholdName:       m.HouseholdName,
		AdultCount:          m.AdultCount,
		KidCount:            m.KidCount,
		DietaryPreferences:  []string(m.DietaryPreferences),
		Allergies:           []string(m.Allergies),
		DislikedIngredients: []string(m.DislikedIngredients),
		WeeklyBudget:        m.WeeklyBudget,
		MaxWeekdayCookTime:  m.MaxWeekdayCookTime,
		MaxWeekendCookTime:  m.MaxWeekendCookTime,
		MealsPerWeek:        m.MealsPerWeek,
		PrefersLeftovers:    m.PrefersLeftovers,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// PantryItemToModel converts a domain pantry item to a GORM model
func PantryItemToModel(i *pantry.Item) *PantryItemModel {
	return &PantryItemModel{
		ID:                i.ID,
		UserID:            i.UserID,
		Name:              i.Name,
		NormalizedName:    i.NormalizedName,
		Quantity:          i.Quantity,
		Unit:              string(i.Unit),
		Category:          i.Category,
		ExpiresAt:         i.ExpiresAt,
		LowStockThreshold: i.LowStockThreshold,
		Note:              i.Note,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

// ModelToPantryItem converts a GORM model to a domain pantry item
func ModelToPantryItem(m *PantryItemModel) *pantry.Item {
	return &pantry.Item{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		NormalizedName:    m.NormalizedName,
		Quantity:          m.Quantity,
		Unit:              pantry.Unit(m.Unit),
		Category:          m.Category,
		ExpiresAt:         m.ExpiresAt,
		LowStockThreshold: m.LowStockThreshold,
		Note:              m.Note,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// WeekToModel converts a domain meal plan week to a GORM model
func WeekToModel(w *planner.Week) *MealPlanWeekModel {
	model := &MealPlanWeekModel{
		ID:        w.ID,
		UserID:    w.UserID,
		WeekKey:   w.WeekKey,
		Timezone:  w.Timezone,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	for _, entry := range w.Entries {
		model.Entries = append(model.Entries, *EntryToModel(entry))
	}
	return model
}

// ModelToWeek converts a GORM model to a domain meal plan week
func ModelToWeek(m *MealPlanWeekModel) *planner.Week {
	week := &planner.Week{
		ID:        m.ID,
		UserID:    m.UserID,
		WeekKey:   m.WeekKey,
		Timezone:  m.Timezone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Entries {
		week.Entries = append(week.Entries, ModelToEntry(&m.Entries[i]))
	}
	return week
}

// EntryToModel converts a domain meal plan entry to a GORM model
func EntryToModel(e *planner.Entry) *MealPlanEntryModel {
	return &MealPlanEntryModel{
		ID:                e.ID,
		WeekID:            e.WeekID,
		DayOfWeek:         e.DayOfWeek,
		Slot:              string(e.Slot),
		RecipeSlug:        e.RecipeSlug,
		RecipeTitle:       e.RecipeTitle,
		RecipeTotalTime:   e.RecipeTotalTime,
		RecipeCalories:    e.RecipeCalories,
		Note:              e.Note,
		IsLeftoversRepeat: e.IsLeftoversRepeat,
		Rationale:         e.Rationale,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// ModelToEntry converts a GORM model to a domain meal plan entry
func ModelToEntry(m *MealPlanEntryModel) *planner.Entry {
	return &planner.Entry{
		ID:                m.ID,
		WeekID:            m.WeekID,
		DayOfWeek:         m.DayOfWeek,
		Slot:              planner.Slot(m.Slot),
		RecipeSlug:        m.RecipeSlug,
		RecipeTitle:       m.RecipeTitle,
		RecipeTotalTime:   m.RecipeTotalTime,
		RecipeCalories:    m.RecipeCalories,
		Note:              m.Note,
		IsLeftoversRepeat: m.IsLeftoversRepeat,
		Rationale:         m.Rationale,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ListToModel converts a domain shopping list to a GORM model
func ListToModel(l *shopping.List) *ShoppingListModel {
	return &ShoppingListModel{
		ID:          l.ID,
		UserID:      l.UserID,
		WeekID:      l.WeekID,
		Title:       l.Title,
		Strictness:  string(l.Strictness),
		GeneratedAt: l.GeneratedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// ModelToList converts a GORM model to a domain shopping list
func ModelToList(m *ShoppingListModel) *shopping.List {
	list := &shopping.List{
		ID:          m.ID,
		UserID:      m.UserID,
		WeekID:      m.WeekID,
		Title:       m.Title,
		Strictness:  shopping.Strictness(m.Strictness),
		GeneratedAt: m.GeneratedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Items {
		list.Items = append(list.Items, ModelToItem(&m.Items[i]))
	}
	return list
}

// ItemToModel converts a domain shopping item to a GORM model
func ItemToModel(i *shopping.Item) *ShoppingItemModel {
	return &ShoppingItemModel{
		ID:                i.ID,
		ListID:            i.ListID,
		Name:              i.Name,
		NormalizedName:    i.NormalizedName,
		Category:          i.Category,
		QuantityText:      i.QuantityText,
		Note:              i.Note,
		Checked:           i.Checked,
		IsManual:          i.IsManual,
		SourceRecipeSlugs: StringSlice(i.SourceRecipeSlugs),
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

// ModelToItem converts a GORM model to a domain shopping item
func ModelToItem(m *ShoppingItemModel) *shopping.Item {
	return &shopping.Item{
		ID:                m.ID,
		ListID:            m.ListID,
		Name:              m.Name,
		NormalizedName:    m.NormalizedName,
		Category:          m.Category,
		QuantityText:      m.QuantityText,
		Note:              m.Note,
		Checked:           m.Checked,
		IsManual:          m.IsManual,
		SourceRecipeSlugs: []string(m.SourceRecipeSlugs),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// AIRunToModel converts a domain AI run record to a GORM model
func AIRunToModel(r *planner.AIRun) *AIRunModel {
	return &AIRunModel{
		ID:           r.ID,
		UserID:       r.UserID,
		Type:         string(r.Type),
		Status:       string(r.Status),
		Model:        r.Model,
		LatencyMs:    r.LatencyMs,
		ErrorCode:    r.ErrorCode,
		ErrorMessage: r.ErrorMessage,
		RequestScope: r.RequestScope,
		CreatedAt:    r.CreatedAt,
	}
}
