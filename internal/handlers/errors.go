package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps an error category to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the error response for a failed service call.
// Client errors echo the service message; internal ones only say what failed.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failedTo string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+failedTo, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + failedTo})
		return
	}
	logger.Warn("Request rejected by service", slog.String("action", failedTo), slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON binds and validates the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindQuery binds and validates query parameters, writing a 400 on failure.
func bindQuery(c *gin.Context, logger *slog.Logger, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.Warn("Failed to bind query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}

// actingUser returns the authenticated user id, writing a 401 when it is missing.
func actingUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
