package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/SscSPs/treasury_ledger/internal/utils/analytics"
	"github.com/gin-gonic/gin"
)

// shiftHandler handles HTTP requests addressed to a single shift.
type shiftHandler struct {
	shiftService    portssvc.ShiftSvcFacade
	movementService portssvc.MovementReaderSvc
	posthog         *analytics.PosthogClientWrapper
}

// RegisterShiftRoutes registers the shift routes.
func RegisterShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade, movementService portssvc.MovementReaderSvc, posthog *analytics.PosthogClientWrapper) {
	h := &shiftHandler{
		shiftService:    shiftService,
		movementService: movementService,
		posthog:         posthog,
	}

	shifts := rg.Group("/shifts/:shiftID")
	{
		shifts.GET("", h.getShift)
		shifts.GET("/summary", h.getShiftSummary)
		shifts.GET("/movements", h.listShiftMovements)
		shifts.POST("/cash-in", h.addCash)
		shifts.POST("/cash-out", h.removeCash)
		shifts.POST("/close", h.closeShift)
	}
}

// getShift godoc
// @Summary Get a shift
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shift, err := h.shiftService.GetShift(c.Request.Context(), c.Param("shiftID"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// getShiftSummary godoc
// @Summary Get the cash summary of a shift
// @Description Opening float plus cash from sales plus cash in, minus cash out
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftSummaryResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/summary [get]
func (h *shiftHandler) getShiftSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.shiftService.GetShiftSummary(c.Request.Context(), c.Param("shiftID"))
	if err != nil {
		respondServiceError(c, logger, err, "summarize shift")
		return
	}
	c.JSON(http.StatusOK, dto.ShiftSummaryResponse(*summary))
}

// listShiftMovements godoc
// @Summary List the cash movements of a shift
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/movements [get]
func (h *shiftHandler) listShiftMovements(c *gin.Context) {
	listLedgerMovements(c, h.movementService, domain.LedgerShift, c.Param("shiftID"))
}

// addCash godoc
// @Summary Add cash to an open shift
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   cash body dto.ShiftCashRequest true "Amount and notes"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is not open"
// @Security BearerAuth
// @Router /shifts/{shiftID}/cash-in [post]
func (h *shiftHandler) addCash(c *gin.Context) {
	h.recordCash(c, h.shiftService.AddCash, "add cash to shift")
}

// removeCash godoc
// @Summary Remove cash from an open shift
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   cash body dto.ShiftCashRequest true "Amount and notes"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is not open"
// @Security BearerAuth
// @Router /shifts/{shiftID}/cash-out [post]
func (h *shiftHandler) removeCash(c *gin.Context) {
	h.recordCash(c, h.shiftService.RemoveCash, "remove cash from shift")
}

type cashRecorder func(ctx context.Context, shiftID string, req dto.ShiftCashRequest, userID string) (*domain.Movement, error)

func (h *shiftHandler) recordCash(c *gin.Context, record cashRecorder, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ShiftCashRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	shiftID := c.Param("shiftID")

	movement, err := record(c.Request.Context(), shiftID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, action)
		return
	}
	logger.Info("Shift cash recorded", slog.String("shift_id", shiftID), slog.String("movement_type", string(movement.MovementType)))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// closeShift godoc
// @Summary Close a shift
// @Description Reconciles counted cash against the expected amount. Counted cash not left in the drawer may be deposited into a bank account or safe box in the same transaction.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   close body dto.CloseShiftRequest true "Counted cash and deposit destination"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift already closed"
// @Security BearerAuth
// @Router /shifts/{shiftID}/close [post]
func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseShiftRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), c.Param("shiftID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "close shift")
		return
	}

	props := map[string]any{
		"shift_id":         shift.ShiftID,
		"cash_register_id": shift.CashRegisterID,
	}
	if shift.Discrepancy != nil {
		props["discrepancy"] = shift.Discrepancy.String()
	}
	middleware.PosthogEvent(c, h.posthog, analytics.EventShiftClosed, props)
	if shift.Discrepancy != nil && !shift.Discrepancy.IsZero() {
		middleware.PosthogEvent(c, h.posthog, analytics.EventShiftDiscrepancy, map[string]any{
			"shift_id":    shift.ShiftID,
			"discrepancy": shift.Discrepancy.String(),
		})
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}
