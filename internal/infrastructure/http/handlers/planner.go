package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/domain/planner"
	"github.com/recipehub/recipehub/internal/ports/inbound"
)

// PlannerHandlers handles weekly meal plan endpoints.
type PlannerHandlers struct {
	plannerService inbound.PlannerService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewPlannerHandlers creates the planner handlers.
func NewPlannerHandlers(plannerService inbound.PlannerService, logger *zap.Logger) *PlannerHandlers {
	return &PlannerHandlers{
		plannerService: plannerService,
		validate:       validator.New(),
		logger:         logger.Named("planner-handlers"),
	}
}

// GetWeek handles GET /api/v1/plan/:weekKey
func (h *PlannerHandlers) GetWeek(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	week, err := h.plannerService.GetWeek(c.Request.Context(), userID, c.Param("weekKey"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, week)
}

// UpsertEntry handles PUT /api/v1/plan/:weekKey/entries
func (h *PlannerHandlers) UpsertEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	var cmd inbound.PlanEntryCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	cmd.WeekKey = c.Param("weekKey")
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	week, err := h.plannerService.UpsertEntry(c.Request.Context(), userID, cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, week)
}

// DeleteEntry handles DELETE /api/v1/plan/:weekKey/entries/:day/:slot
func (h *PlannerHandlers) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		respondBadRequest(c, "day must be an integer")
		return
	}

	week, err := h.plannerService.DeleteEntry(
		c.Request.Context(), userID, c.Param("weekKey"), day, planner.Slot(c.Param("slot")),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, week)
}

// CopyPreviousWeek handles POST /api/v1/plan/:weekKey/copy-previous
func (h *PlannerHandlers) CopyPreviousWeek(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	week, err := h.plannerService.CopyPreviousWeek(c.Request.Context(), userID, c.Param("weekKey"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, week)
}

// FillWithAI handles POST /api/v1/plan/:weekKey/ai-fill
func (h *PlannerHandlers) FillWithAI(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	week, err := h.plannerService.FillWeekWithAI(c.Request.Context(), userID, c.Param("weekKey"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, week)
}

// RegenerateSlot handles POST /api/v1/plan/:weekKey/regenerate/:day/:slot
func (h *PlannerHandlers) RegenerateSlot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		respondBadRequest(c, "day must be an integer")
		return
	}

	week, err := h.plannerService.RegenerateSlot(
		c.Request.Context(), userID, c.Param("weekKey"), day, planner.Slot(c.Param("slot")),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, week)
}
