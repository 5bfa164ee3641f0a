// Package handlers provides the gin HTTP handlers for the REST API
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipehub/recipehub/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// respondOK writes a success envelope
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// respondCreated writes a success envelope with a 201 status
func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// respondError maps application errors to HTTP responses. Unknown error
// types never leak their message to the client.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.StatusCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("path", c.FullPath()),
				zap.String("code", string(appErr.Code)),
				zap.Error(err),
			)
		}
		c.JSON(appErr.StatusCode(), APIResponse{Success: false, Error: appErr.Message})
		return
	}

	logger.Error("Unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Error: "internal server error"})
}

// respondBadRequest writes a 400 with the binding failure message
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Error: message})
}

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}

// pathUUID parses a UUID path parameter.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
