package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/ports/inbound"
)

// HouseholdHandlers handles household profile endpoints.
type HouseholdHandlers struct {
	householdService inbound.HouseholdService
	validate         *validator.Validate
	logger           *zap.Logger
}

// NewHouseholdHandlers creates the household handlers.
func NewHouseholdHandlers(householdService inbound.HouseholdService, logger *zap.Logger) *HouseholdHandlers {
	return &HouseholdHandlers{
		householdService: householdService,
		validate:         validator.New(),
		logger:           logger.Named("household-handlers"),
	}
}

// Get handles GET /api/v1/household
func (h *HouseholdHandlers) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	profile, err := h.householdService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, profile)
}

// Upsert handles PUT /api/v1/household
func (h *HouseholdHandlers) Upsert(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	var cmd inbound.HouseholdCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	profile, err := h.householdService.Upsert(c.Request.Context(), userID, cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, profile)
}
