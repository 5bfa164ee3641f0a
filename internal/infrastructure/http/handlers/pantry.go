package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/ports/inbound"
)

// PantryHandlers handles pantry inventory endpoints.
type PantryHandlers struct {
	pantryService inbound.PantryService
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewPantryHandlers creates the pantry handlers.
func NewPantryHandlers(pantryService inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{
		pantryService: pantryService,
		validate:      validator.New(),
		logger:        logger.Named("pantry-handlers"),
	}
}

// List handles GET /api/v1/pantry
func (h *PantryHandlers) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	items, err := h.pantryService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, items)
}

// Add handles POST /api/v1/pantry
func (h *PantryHandlers) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	var cmd inbound.PantryItemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.pantryService.Add(c.Request.Context(), userID, cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, item)
}

// Update handles PUT /api/v1/pantry/:id
func (h *PantryHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var cmd inbound.PantryItemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.pantryService.Update(c.Request.Context(), userID, itemID, cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, item)
}

// Delete handles DELETE /api/v1/pantry/:id
func (h *PantryHandlers) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.pantryService.Delete(c.Request.Context(), userID, itemID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// BulkAdd handles POST /api/v1/pantry/bulk
func (h *PantryHandlers) BulkAdd(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "text is required")
		return
	}

	result, err := h.pantryService.BulkAdd(c.Request.Context(), userID, req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, result)
}

// Summary handles GET /api/v1/pantry/summary
func (h *PantryHandlers) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	summary, err := h.pantryService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, summary)
}
