package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/shopping"
	"github.com/recipehub/recipehub/internal/ports/inbound"
)

// ShoppingHandlers handles shopping list endpoints.
type ShoppingHandlers struct {
	shoppingService inbound.ShoppingService
	validate        *validator.Validate
	logger          *zap.Logger
}

// NewShoppingHandlers creates the shopping handlers.
func NewShoppingHandlers(shoppingService inbound.ShoppingService, logger *zap.Logger) *ShoppingHandlers {
	return &ShoppingHandlers{
		shoppingService: shoppingService,
		validate:        validator.New(),
		logger:          logger.Named("shopping-handlers"),
	}
}

// Generate handles POST /api/v1/shopping/:weekKey/generate
func (h *ShoppingHandlers) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	var req struct {
		Strictness string `json:"strictness"`
	}
	// An empty body means the default pass-through mode.
	_ = c.ShouldBindJSON(&req)

	list, err := h.shoppingService.GenerateForWeek(
		c.Request.Context(), userID, c.Param("weekKey"), shopping.ParseStrictness(req.Strictness),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, list)
}

// GetForWeek handles GET /api/v1/shopping/:weekKey
func (h *ShoppingHandlers) GetForWeek(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	list, err := h.shoppingService.GetForWeek(c.Request.Context(), userID, c.Param("weekKey"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if list == nil {
		respondOK(c, nil)
		return
	}
	respondOK(c, list)
}

// ToggleItem handles POST /api/v1/shopping/items/:id/toggle
func (h *ShoppingHandlers) ToggleItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	item, err := h.shoppingService.ToggleItem(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, item)
}

// UpdateItem handles PATCH /api/v1/shopping/items/:id
func (h *ShoppingHandlers) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var cmd inbound.UpdateItemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.shoppingService.UpdateItem(c.Request.Context(), userID, itemID, cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, item)
}

// AddManualItem handles POST /api/v1/shopping/:weekKey/items
func (h *ShoppingHandlers) AddManualItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	var cmd inbound.ManualItemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.shoppingService.AddManualItem(c.Request.Context(), userID, c.Param("weekKey"), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, item)
}

// RemoveManualItem handles DELETE /api/v1/shopping/items/:id
func (h *ShoppingHandlers) RemoveManualItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.shoppingService.RemoveManualItem(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}
