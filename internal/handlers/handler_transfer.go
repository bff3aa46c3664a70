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

// transferHandler handles HTTP requests for transfers between accounts.
type transferHandler struct {
	transferService portssvc.TransferSvc
	posthog         *analytics.PosthogClientWrapper
}

// RegisterTransferRoutes registers the transfer routes.
func RegisterTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvc, posthog *analytics.PosthogClientWrapper) {
	h := &transferHandler{transferService: transferService, posthog: posthog}

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/:reference", h.listTransferMovements)
	}
}

// createTransfer godoc
// @Summary Transfer funds between two accounts
// @Description Writes an outbound movement on the source and an inbound movement on the destination atomically, both under the same reference. A cash register side uses its open shift.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Validation error, same account or currency mismatch"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Archived account or register without an open shift"
// @Failure 500 {object} map[string]string "Failed to create transfer"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create transfer",
		slog.String("source_type", string(req.SourceType)), slog.String("source_id", req.SourceID),
		slog.String("destination_type", string(req.DestinationType)), slog.String("destination_id", req.DestinationID))

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create transfer")
		return
	}

	middleware.PosthogEvent(c, h.posthog, analytics.EventTransferCreated, map[string]any{
		"reference":        transfer.Reference,
		"amount":           transfer.Amount.String(),
		"source_type":      string(transfer.Source.Kind),
		"destination_type": string(transfer.Destination.Kind),
	})
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// listTransferMovements godoc
// @Summary List the movements of a transfer
// @Tags transfers
// @Produce  json
// @Param   reference path string true "Transfer reference"
// @Success 200 {array} dto.MovementResponse
// @Failure 404 {object} map[string]string "Transfer not found"
// @Security BearerAuth
// @Router /transfers/{reference} [get]
func (h *transferHandler) listTransferMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movements, err := h.transferService.ListTransferMovements(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondServiceError(c, logger, err, "list transfer movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMovementResponse(movements))
}
