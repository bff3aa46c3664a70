package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/SscSPs/treasury_ledger/internal/utils/analytics"
	"github.com/gin-gonic/gin"
)

// movementHandler handles HTTP requests for individual movements and manual edits.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
	posthog         *analytics.PosthogClientWrapper
}

// RegisterMovementRoutes registers the movement routes.
func RegisterMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade, posthog *analytics.PosthogClientWrapper) {
	h := &movementHandler{movementService: movementService, posthog: posthog}

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createManualMovement)
		movements.GET("/:movementID", h.getMovement)
		movements.PUT("/:movementID", h.updateManualMovement)
		movements.DELETE("/:movementID", h.deleteManualMovement)
	}
}

// createManualMovement godoc
// @Summary Create a manual movement
// @Description Records a hand-entered movement on a bank account or safe box
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movement body dto.CreateManualMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account archived"
// @Security BearerAuth
// @Router /movements [post]
func (h *movementHandler) createManualMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateManualMovementRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	movement, err := h.movementService.CreateManualMovement(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create movement")
		return
	}
	logger.Info("Manual movement created", slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// getMovement godoc
// @Summary Get a movement
// @Tags movements
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{movementID} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movement, err := h.movementService.GetMovement(c.Request.Context(), c.Param("movementID"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// updateManualMovement godoc
// @Summary Update a manual movement
// @Description Only movements entered by hand may be changed
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Param   movement body dto.UpdateManualMovementRequest true "Fields to update"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Movement was not entered manually"
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{movementID} [put]
func (h *movementHandler) updateManualMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateManualMovementRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	movement, err := h.movementService.UpdateManualMovement(c.Request.Context(), c.Param("movementID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update movement")
		return
	}
	middleware.PosthogEvent(c, h.posthog, analytics.EventManualMovementEdited, map[string]any{
		"movement_id": movement.MovementID,
		"action":      "update",
	})
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// deleteManualMovement godoc
// @Summary Delete a manual movement
// @Description Only movements entered by hand may be deleted; transfer legs and shift movements are rejected
// @Tags movements
// @Param   movementID path string true "Movement ID"
// @Param   accountType query string true "bank_account or safe_box"
// @Success 204
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Movement was not entered manually"
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{movementID} [delete]
func (h *movementHandler) deleteManualMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DeleteManualMovementParams
	if !bindQuery(c, logger, &params) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	movementID := c.Param("movementID")
	if err := h.movementService.DeleteManualMovement(c.Request.Context(), movementID, params.AccountType, userID); err != nil {
		respondServiceError(c, logger, err, "delete movement")
		return
	}
	middleware.PosthogEvent(c, h.posthog, analytics.EventManualMovementEdited, map[string]any{
		"movement_id": movementID,
		"action":      "delete",
	})
	c.Status(http.StatusNoContent)
}
