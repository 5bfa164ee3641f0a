package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/ports/outbound"
)

// AIRunRepository implements the AI run audit repository using GORM
type AIRunRepository struct {
	db *gorm.DB
}

// NewAIRunRepository creates a new AI run repository
func NewAIRunRepository(db *gorm.DB) outbound.AIRunRepository {
	return &AIRunRepository{db: db}
}

// Create appends one audit record
func (r *AIRunRepository) Create(ctx context.Context, run *planner.AIRun) error {
	return r.db.WithContext(ctx).Create(AIRunToModel(run)).Error
}
