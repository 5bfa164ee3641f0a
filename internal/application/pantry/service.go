// Package pantry provides the application layer for pantry inventory
// management.
package pantry

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/ingredient"
	"github.com/recipehub/recipehub/internal/domain/pantry"
	"github.com/recipehub/recipehub/internal/ports/inbound"
	"github.com/recipehub/recipehub/internal/ports/outbound"
	"github.com/recipehub/recipehub/pkg/errors"
)

// maxBulkLines caps one multiline import.
const maxBulkLines = 100

const expiryDateLayout = "2006-01-02"

// PantryService implements the pantry use cases.
type PantryService struct {
	pantryRepo outbound.PantryRepository
	logger     *zap.Logger
}

// NewPantryService creates a new pantry service.
func NewPantryService(pantryRepo outbound.PantryRepository, logger *zap.Logger) inbound.PantryService {
	return &PantryService{
		pantryRepo: pantryRepo,
		logger:     logger.Named("pantry-service"),
	}
}

// List returns the user's pantry ordered by category then name, with
// derived stock status.
func (s *PantryService) List(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	items, err := s.pantryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}

	now := time.Now()
	out := make([]inbound.PantryItemDTO, len(items))
	for i, item := range items {
		out[i] = itemToDTO(item, now)
	}
	return out, nil
}

// Add creates one pantry item.
func (s *PantryService) Add(ctx context.Context, userID uuid.UUID, cmd inbound.PantryItemCommand) (*inbound.PantryItemDTO, error) {
	item, err := s.buildItem(userID, cmd)
	if err != nil {
		return nil, err
	}

	if err := s.pantryRepo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create pantry item", err)
	}

	s.logger.Info("Pantry item added",
		zap.String("user_id", userID.String()),
		zap.String("item_id", item.ID.String()),
		zap.String("normalized_name", item.NormalizedName),
	)
	dto := itemToDTO(item, time.Now())
	return &dto, nil
}

// Update overwrites an existing item with the command's fields.
func (s *PantryService) Update(ctx context.Context, userID, itemID uuid.UUID, cmd inbound.PantryItemCommand) (*inbound.PantryItemDTO, error) {
	existing, err := s.findItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildItem(userID, cmd)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	if err := s.pantryRepo.Update(ctx, updated); err != nil {
		return nil, errors.NewDatabaseError("update pantry item", err)
	}
	dto := itemToDTO(updated, time.Now())
	return &dto, nil
}

// Delete removes an item.
func (s *PantryService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := s.findItem(ctx, userID, itemID); err != nil {
		return err
	}
	if err := s.pantryRepo.Delete(ctx, userID, itemID); err != nil {
		return errors.NewDatabaseError("delete pantry item", err)
	}
	return nil
}

// BulkAdd imports one item per non-empty line of rawText. Lines that
// normalize to an empty key are reported as invalid, not errors.
func (s *PantryService) BulkAdd(ctx context.Context, userID uuid.UUID, rawText string) (*inbound.BulkAddResult, error) {
	lines := strings.Split(rawText, "\n")
	if len(lines) > maxBulkLines {
		return nil, errors.NewValidationError("bulk import is limited to 100 lines")
	}

	result := &inbound.BulkAddResult{Created: []string{}, Invalid: []string{}}
	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		normalized := ingredient.Canonical(name)
		if normalized == "" {
			result.Invalid = append(result.Invalid, name)
			continue
		}

		now := time.Now()
		item := &pantry.Item{
			ID:             uuid.New(),
			UserID:         userID,
			Name:           name,
			NormalizedName: normalized,
			Category:       string(ingredient.InferCategory(name)),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.pantryRepo.Create(ctx, item); err != nil {
			return nil, errors.NewDatabaseError("create pantry item", err)
		}
		result.Created = append(result.Created, name)
	}

	s.logger.Info("Pantry bulk import",
		zap.String("user_id", userID.String()),
		zap.Int("created", len(result.Created)),
		zap.Int("invalid", len(result.Invalid)),
	)
	return result, nil
}

// Summary returns pantry health counts.
func (s *PantryService) Summary(ctx context.Context, userID uuid.UUID) (*pantry.Summary, error) {
	items, err := s.pantryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}
	summary := pantry.Summarize(items, time.Now())
	return &summary, nil
}

func (s *PantryService) buildItem(userID uuid.UUID, cmd inbound.PantryItemCommand) (*pantry.Item, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	unit := pantry.Unit(cmd.Unit)
	if cmd.Unit != "" && !pantry.ValidUnit(unit) {
		return nil, errors.NewValidationError("unrecognized unit: " + cmd.Unit)
	}

	category := cmd.Category
	if category == "" {
		category = string(ingredient.InferCategory(name))
	} else if !pantry.ValidCategory(category) {
		return nil, errors.NewValidationError("unrecognized category: " + category)
	}

	var expiresAt *time.Time
	if cmd.ExpiresAt != nil && *cmd.ExpiresAt != "" {
		parsed, err := time.Parse(expiryDateLayout, *cmd.ExpiresAt)
		if err != nil {
			return nil, errors.NewValidationError("expiresAt must be a YYYY-MM-DD date")
		}
		expiresAt = &parsed
	}

	if cmd.Quantity != nil && *cmd.Quantity < 0 {
		return nil, errors.NewValidationError("quantity cannot be negative")
	}
	if cmd.LowStockThreshold != nil && *cmd.LowStockThreshold < 0 {
		return nil, errors.NewValidationError("lowStockThreshold cannot be negative")
	}

	now := time.Now()
	return &pantry.Item{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              name,
		NormalizedName:    ingredient.Canonical(name),
		Quantity:          cmd.Quantity,
		Unit:              unit,
		Category:          category,
		ExpiresAt:         expiresAt,
		LowStockThreshold: cmd.LowStockThreshold,
		Note:              cmd.Note,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (s *PantryService) findItem(ctx context.Context, userID, itemID uuid.UUID) (*pantry.Item, error) {
	item, err := s.pantryRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry item", err)
	}
	if item == nil {
		return nil, errors.NewItemNotFoundError(itemID.String())
	}
	return item, nil
}

func itemToDTO(item *pantry.Item, now time.Time) inbound.PantryItemDTO {
	return inbound.PantryItemDTO{
		ID:                item.ID,
		Name:              item.Name,
		NormalizedName:    item.NormalizedName,
		Quantity:          item.Quantity,
		Unit:              string(item.Unit),
		Category:          item.Category,
		ExpiresAt:         item.ExpiresAt,
		LowStockThreshold: item.LowStockThreshold,
		Note:              item.Note,
		Status:            item.Status(now),
	}
}
