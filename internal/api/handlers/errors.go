package handlers

import (
	"errors"
	"net/http"

	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// ConflictResponse is returned with 409 when an allocation would overallocate a member
type ConflictResponse struct {
	Error     string      `json:"error"`
	Conflicts interface{} `json:"conflicts"`
}

// respondError maps service errors to HTTP responses
func respondError(c *gin.Context, err error) {
	if conflictErr, ok := apperrors.AsConflict(err); ok {
		c.JSON(http.StatusConflict, ConflictResponse{Error: conflictErr.Error(), Conflicts: conflictErr.Conflicts})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrLockTimeout):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}
