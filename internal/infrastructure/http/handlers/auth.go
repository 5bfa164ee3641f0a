package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/internal/ports/inbound"
)

// AuthHandlers handles registration, login, and the current user.
type AuthHandlers struct {
	userService inbound.UserService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAuthHandlers creates the auth handlers.
func NewAuthHandlers(userService inbound.UserService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		userService: userService,
		validate:    validator.New(),
		logger:      logger.Named("auth-handlers"),
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var cmd inbound.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.userService.Register(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondCreated(c, result)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var cmd inbound.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := h.validate.Struct(cmd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.userService.Login(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, result)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondBadRequest(c, "missing authentication")
		return
	}

	dto, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	respondOK(c, dto)
}
