// Package shopping contains the shopping list domain model and the pure
// candidate aggregation the generator runs before touching persistence.
package shopping

import (
	"time"

	"github.com/google/uuid"

	"github.com/recipehub/recipehub/internal/domain/ingredient"
)

// Strictness governs how pantry-covered ingredients are treated during
// generation.
type Strictness string

const (
	// StrictnessExcludeCovered omits pantry-covered ingredients entirely.
	StrictnessExcludeCovered Strictness = "exclude-covered"
	// StrictnessMarkCovered keeps covered ingredients but annotates the
	// display name with " (pantry)".
	StrictnessMarkCovered Strictness = "mark-covered"
	// StrictnessNoFilter includes every ingredient unannotated.
	StrictnessNoFilter Strictness = "no-filter"
)

// ParseStrictness maps a raw mode string to a Strictness. Unrecognized
// values deliberately fall through to the no-filter pass-through; callers
// have historically relied on that default.
func ParseStrictness(raw string) Strictness {
	switch Strictness(raw) {
	case StrictnessExcludeCovered:
		return StrictnessExcludeCovered
	case StrictnessMarkCovered:
		return StrictnessMarkCovered
	default:
		return StrictnessNoFilter
	}
}

// Item is a single shopping list entry. Generator-authored items carry
// IsManual=false and are replaced wholesale on regeneration; manual items
// are never touched by the generator.
type Item struct {
	ID                uuid.UUID
	ListID            uuid.UUID
	Name              string
	NormalizedName    string
	Category          string
	QuantityText      string
	Note              string
	Checked           bool
	IsManual          bool
	SourceRecipeSlugs []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// List is the shopping list for one (user, meal plan week) pair. The
// storage layer enforces at most one per pair.
type List struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WeekID      uuid.UUID
	Title       string
	Strictness  Strictness
	GeneratedAt *time.Time
	Items       []*Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ManualItems returns the user-authored items.
func (l *List) ManualItems() []*Item {
	var out []*Item
	for _, item := range l.Items {
		if item.IsManual {
			out = append(out, item)
		}
	}
	return out
}

// GeneratedItems returns the generator-authored items.
func (l *List) GeneratedItems() []*Item {
	var out []*Item
	for _, item := range l.Items {
		if !item.IsManual {
			out = append(out, item)
		}
	}
	return out
}

// ItemByNormalizedName returns the first item carrying the canonical key,
// or nil.
func (l *List) ItemByNormalizedName(key string) *Item {
	for _, item := range l.Items {
		if item.NormalizedName == key {
			return item
		}
	}
	return nil
}

// Candidate is one aggregated ingredient bound for the list: a display
// name, an inferred category, and the set of recipes that contributed it.
type Candidate struct {
	Name              string
	Category          ingredient.Category
	SourceRecipeSlugs []string
}

// CandidateSet is an insertion-ordered map keyed by canonical ingredient
// name. It enforces the dedup invariant: at most one candidate per key,
// with source slugs accumulated set-wise.
type CandidateSet struct {
	order []string
	byKey map[string]*Candidate
}

// NewCandidateSet returns an empty candidate set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{byKey: make(map[string]*Candidate)}
}

// Add records a contribution for the canonical key. The display name and
// category stick from the first contribution; the slug joins the source
// set if not already present.
func (c *CandidateSet) Add(key, displayName string, category ingredient.Category, recipeSlug string) {
	existing, ok := c.byKey[key]
	if !ok {
		c.order = append(c.order, key)
		c.byKey[key] = &Candidate{
			Name:              displayName,
			Category:          category,
			SourceRecipeSlugs: []string{recipeSlug},
		}
		return
	}
	for _, slug := range existing.SourceRecipeSlugs {
		if slug == recipeSlug {
			return
		}
	}
	existing.SourceRecipeSlugs = append(existing.SourceRecipeSlugs, recipeSlug)
}

// Len returns the number of distinct canonical keys.
func (c *CandidateSet) Len() int {
	return len(c.order)
}

// Get returns the candidate for key, or nil.
func (c *CandidateSet) Get(key string) *Candidate {
	return c.byKey[key]
}

// Keys returns canonical keys in insertion order.
func (c *CandidateSet) Keys() []string {
	return append([]string(nil), c.order...)
}

// Each calls fn for every (key, candidate) pair in insertion order.
func (c *CandidateSet) Each(fn func(key string, candidate *Candidate)) {
	for _, key := range c.order {
		fn(key, c.byKey[key])
	}
}
