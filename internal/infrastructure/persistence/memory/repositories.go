// Package memory provides in-memory repository implementations. They
// back unit tests and local development without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/recipehub/recipehub/internal/domain/household"
	"github.com/recipehub/recipehub/internal/domain/pantry"
	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/domain/shopping"
	"github.com/recipehub/recipehub/internal/domain/user"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	apperrors "github.com/recipehub/recipehub/pkg/errors"
)

// UserRepository is an in-memory user store.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*user.User
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]*user.User)}
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperrors.NewEmailAlreadyExistsError(u.Email)
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return apperrors.NewUserNotFoundError(u.ID.String())
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		now := time.Now()
		u.LastLoginAt = &now
		u.UpdatedAt = now
	}
	return nil
}

// HouseholdRepository is an in-memory household profile store.
type HouseholdRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*household.Profile
}

// NewHouseholdRepository creates an empty household store.
func NewHouseholdRepository() *HouseholdRepository {
	return &HouseholdRepository{profiles: make(map[uuid.UUID]*household.Profile)}
}

func (r *HouseholdRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*household.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *HouseholdRepository) Upsert(_ context.Context, profile *household.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *profile
	r.profiles[profile.UserID] = &cp
	return nil
}

// PantryRepository is an in-memory pantry store.
type PantryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*pantry.Item
}

// NewPantryRepository creates an empty pantry store.
func NewPantryRepository() *PantryRepository {
	return &PantryRepository{items: make(map[uuid.UUID]*pantry.Item)}
}

func (r *PantryRepository) ListByUserID(_ context.Context, userID uuid.UUID) ([]*pantry.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*pantry.Item
	for _, item := range r.items {
		if item.UserID == userID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *PantryRepository) FindByID(_ context.Context, userID, itemID uuid.UUID) (*pantry.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if item, ok := r.items[itemID]; ok && item.UserID == userID {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}

func (r *PantryRepository) Create(_ context.Context, item *pantry.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *PantryRepository) Update(_ context.Context, item *pantry.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apperrors.NewItemNotFoundError(item.ID.String())
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *PantryRepository) Delete(_ context.Context, userID, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[itemID]; ok && item.UserID == userID {
		delete(r.items, itemID)
	}
	return nil
}

// MealPlanRepository is an in-memory meal plan store.
type MealPlanRepository struct {
	mu      sync.RWMutex
	weeks   map[uuid.UUID]*planner.Week
	entries map[uuid.UUID]*planner.Entry
}

// NewMealPlanRepository creates an empty meal plan store.
func NewMealPlanRepository() *MealPlanRepository {
	return &MealPlanRepository{
		weeks:   make(map[uuid.UUID]*planner.Week),
		entries: make(map[uuid.UUID]*planner.Entry),
	}
}

func (r *MealPlanRepository) FindWeek(_ context.Context, userID uuid.UUID, weekKey string) (*planner.Week, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, week := range r.weeks {
		if week.UserID == userID && week.WeekKey == weekKey {
			return r.loadWeek(week), nil
		}
	}
	return nil, nil
}

func (r *MealPlanRepository) loadWeek(week *planner.Week) *planner.Week {
	cp := *week
	cp.Entries = nil
	for _, entry := range r.entries {
		if entry.WeekID == week.ID {
			ecp := *entry
			cp.Entries = append(cp.Entries, &ecp)
		}
	}
	sort.Slice(cp.Entries, func(i, j int) bool {
		if cp.Entries[i].DayOfWeek != cp.Entries[j].DayOfWeek {
			return cp.Entries[i].DayOfWeek < cp.Entries[j].DayOfWeek
		}
		return cp.Entries[i].Slot < cp.Entries[j].Slot
	})
	return &cp
}

func (r *MealPlanRepository) CreateWeek(_ context.Context, week *planner.Week) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.weeks {
		if existing.UserID == week.UserID && existing.WeekKey == week.WeekKey {
			return apperrors.NewConflictError("week already exists")
		}
	}
	cp := *week
	cp.Entries = nil
	r.weeks[week.ID] = &cp
	return nil
}

func (r *MealPlanRepository) UpsertEntry(_ context.Context, entry *planner.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.entries {
		if existing.WeekID == entry.WeekID &&
			existing.DayOfWeek == entry.DayOfWeek &&
			existing.Slot == entry.Slot {
			delete(r.entries, id)
			break
		}
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *MealPlanRepository) DeleteEntry(_ context.Context, weekID uuid.UUID, dayOfWeek int, slot planner.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, entry := range r.entries {
		if entry.WeekID == weekID && entry.DayOfWeek == dayOfWeek && entry.Slot == slot {
			delete(r.entries, id)
			return nil
		}
	}
	return nil
}

// ShoppingListRepository is an in-memory shopping list store.
type ShoppingListRepository struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]*shopping.List
	items map[uuid.UUID]*shopping.Item
}

// NewShoppingListRepository creates an empty shopping list store.
func NewShoppingListRepository() *ShoppingListRepository {
	return &ShoppingListRepository{
		lists: make(map[uuid.UUID]*shopping.List),
		items: make(map[uuid.UUID]*shopping.Item),
	}
}

func (r *ShoppingListRepository) FindByUserAndWeek(_ context.Context, userID, weekID uuid.UUID) (*shopping.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, list := range r.lists {
		if list.UserID == userID && list.WeekID == weekID {
			cp := *list
			cp.Items = nil
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ShoppingListRepository) Create(_ context.Context, list *shopping.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.lists {
		if existing.UserID == list.UserID && existing.WeekID == list.WeekID {
			return apperrors.NewConflictError("shopping list already exists")
		}
	}
	cp := *list
	cp.Items = nil
	r.lists[list.ID] = &cp
	return nil
}

func (r *ShoppingListRepository) UpdateList(_ context.Context, list *shopping.List) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[list.ID]; !ok {
		return apperrors.NewItemNotFoundError(list.ID.String())
	}
	cp := *list
	cp.Items = nil
	r.lists[list.ID] = &cp
	return nil
}

func (r *ShoppingListRepository) GetWithItems(_ context.Context, listID uuid.UUID) (*shopping.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.lists[listID]
	if !ok {
		return nil, apperrors.NewItemNotFoundError(listID.String())
	}
	cp := *list
	cp.Items = nil
	for _, item := range r.items {
		if item.ListID == listID {
			icp := *item
			cp.Items = append(cp.Items, &icp)
		}
	}
	sort.Slice(cp.Items, func(i, j int) bool {
		if cp.Items[i].Category != cp.Items[j].Category {
			return cp.Items[i].Category < cp.Items[j].Category
		}
		return cp.Items[i].Name < cp.Items[j].Name
	})
	return &cp, nil
}

func (r *ShoppingListRepository) ReplaceGenerated(_ context.Context, listID uuid.UUID, items []*shopping.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		if item.ListID == listID && !item.IsManual {
			delete(r.items, id)
		}
	}
	for _, item := range items {
		cp := *item
		r.items[item.ID] = &cp
	}
	return nil
}

func (r *ShoppingListRepository) FindItem(_ context.Context, userID, itemID uuid.UUID) (*shopping.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	list, ok := r.lists[item.ListID]
	if !ok || list.UserID != userID {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *ShoppingListRepository) InsertItem(_ context.Context, item *shopping.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *ShoppingListRepository) UpdateItem(_ context.Context, item *shopping.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apperrors.NewItemNotFoundError(item.ID.String())
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *ShoppingListRepository) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, itemID)
	return nil
}

// AIRunRepository is an in-memory AI run audit store.
type AIRunRepository struct {
	mu   sync.RWMutex
	runs []*planner.AIRun
}

// NewAIRunRepository creates an empty AI run store.
func NewAIRunRepository() *AIRunRepository {
	return &AIRunRepository{}
}

func (r *AIRunRepository) Create(_ context.Context, run *planner.AIRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *run
	r.runs = append(r.runs, &cp)
	return nil
}

// Runs returns a snapshot of recorded runs.
func (r *AIRunRepository) Runs() []*planner.AIRun {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*planner.AIRun, len(r.runs))
	copy(out, r.runs)
	return out
}

// CacheRepository is an in-memory cache with TTL support.
type CacheRepository struct {
	mu       sync.RWMutex
	values   map[string][]byte
	expiries map[string]time.Time
	counters map[string]int64
}

// NewCacheRepository creates an empty cache.
func NewCacheRepository() *CacheRepository {
	return &CacheRepository{
		values:   make(map[string][]byte),
		expiries: make(map[string]time.Time),
		counters: make(map[string]int64),
	}
}

func (r *CacheRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.expired(key) {
		return nil, nil
	}
	if v, ok := r.values[key]; ok {
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	}
	return nil, nil
}

func (r *CacheRepository) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	r.values[key] = cp
	if ttl > 0 {
		r.expiries[key] = time.Now().Add(ttl)
	} else {
		delete(r.expiries, key)
	}
	return nil
}

func (r *CacheRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	delete(r.expiries, key)
	return nil
}

func (r *CacheRepository) Exists(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.expired(key) {
		return false, nil
	}
	_, ok := r.values[key]
	return ok, nil
}

func (r *CacheRepository) Increment(_ context.Context, key string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[key]++
	return r.counters[key], nil
}

func (r *CacheRepository) expired(key string) bool {
	if exp, ok := r.expiries[key]; ok {
		return time.Now().After(exp)
	}
	return false
}

var (
	_ outbound.UserRepository         = (*UserRepository)(nil)
	_ outbound.HouseholdRepository    = (*HouseholdRepository)(nil)
	_ outbound.PantryRepository       = (*PantryRepository)(nil)
	_ outbound.MealPlanRepository     = (*MealPlanRepository)(nil)
	_ outbound.ShoppingListRepository = (*ShoppingListRepository)(nil)
	_ outbound.AIRunRepository        = (*AIRunRepository)(nil)
	_ outbound.CacheRepository        = (*CacheRepository)(nil)
)
