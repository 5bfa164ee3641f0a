// Package pantry contains the pantry inventory domain model.
package pantry

import (
	"time"

	"github.com/google/uuid"
)

// Status describes the stock state derived from quantity and expiry.
type Status string

const (
	StatusInStock  Status = "in_stock"
	StatusLowStock Status = "low_stock"
	StatusExpired  Status = "expired"
)

// Unit is a recognized pantry measurement unit.
type Unit string

// Units accepted on pantry items. An empty unit is also valid.
var Units = []Unit{
	"g", "kg", "oz", "lb", "ml", "l", "cup", "tbsp", "tsp",
	"pcs", "can", "bottle", "pack", "unit",
}

// ValidUnit reports whether u is in the recognized unit vocabulary.
func ValidUnit(u Unit) bool {
	for _, known := range Units {
		if known == u {
			return true
		}
	}
	return false
}

// Categories accepted on pantry items.
var Categories = []string{
	"produce", "protein", "dairy", "grains", "spices",
	"frozen", "canned", "snacks", "other",
}

// ValidCategory reports whether c is a recognized pantry category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Item is a single pantry entry. NormalizedName is the canonicalized key
// the shopping list generator compares against.
type Item struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	NormalizedName    string
	Quantity          *float64
	Unit              Unit
	Category          string
	ExpiresAt         *time.Time
	LowStockThreshold *float64
	Note              string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Status derives the stock state at the given instant. Expiry wins over
// low stock.
func (i *Item) Status(now time.Time) Status {
	if i.ExpiresAt != nil && i.ExpiresAt.Before(now) {
		return StatusExpired
	}
	if i.Quantity != nil && i.LowStockThreshold != nil && *i.Quantity <= *i.LowStockThreshold {
		return StatusLowStock
	}
	return StatusInStock
}

// Summary aggregates pantry health counts.
type Summary struct {
	Total         int `json:"total"`
	ExpiredCount  int `json:"expiredCount"`
	LowStockCount int `json:"lowStockCount"`
}

// Summarize counts items per derived status.
func Summarize(items []*Item, now time.Time) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		switch item.Status(now) {
		case StatusExpired:
			s.ExpiredCount++
		case StatusLowStock:
			s.LowStockCount++
		}
	}
	return s
}
