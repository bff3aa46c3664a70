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

// cashRegisterHandler handles HTTP requests for cash registers and the shifts opened on them.
type cashRegisterHandler struct {
	accountService portssvc.CashRegisterSvc
	shiftService   portssvc.ShiftSvcFacade
	posthog        *analytics.PosthogClientWrapper
}

// RegisterCashRegisterRoutes registers the cash register routes.
func RegisterCashRegisterRoutes(rg *gin.RouterGroup, accountService portssvc.CashRegisterSvc, shiftService portssvc.ShiftSvcFacade, posthog *analytics.PosthogClientWrapper) {
	h := &cashRegisterHandler{
		accountService: accountService,
		shiftService:   shiftService,
		posthog:        posthog,
	}

	registers := rg.Group("/cash-registers")
	{
		registers.POST("", h.createCashRegister)
		registers.GET("", h.listCashRegisters)
		registers.GET("/:registerID", h.getCashRegister)
		registers.POST("/:registerID/shifts", h.openShift)
		registers.GET("/:registerID/shifts", h.listShifts)
		registers.GET("/:registerID/shifts/open", h.getOpenShift)
		registers.GET("/:registerID/shifts/last-closed", h.getLastClosedShift)
	}
}

// createCashRegister godoc
// @Summary Create a cash register
// @Tags cash-registers
// @Accept  json
// @Produce  json
// @Param   register body dto.CreateCashRegisterRequest true "Cash register details"
// @Success 201 {object} dto.CashRegisterResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /cash-registers [post]
func (h *cashRegisterHandler) createCashRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashRegisterRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	register, err := h.accountService.CreateCashRegister(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create cash register")
		return
	}
	logger.Info("Cash register created successfully", slog.String("cash_register_id", register.CashRegisterID))
	c.JSON(http.StatusCreated, dto.ToCashRegisterResponse(register))
}

// listCashRegisters godoc
// @Summary List cash registers
// @Tags cash-registers
// @Produce  json
// @Success 200 {array} dto.CashRegisterResponse
// @Security BearerAuth
// @Router /cash-registers [get]
func (h *cashRegisterHandler) listCashRegisters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registers, err := h.accountService.ListCashRegisters(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list cash registers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashRegisterResponse(registers))
}

// getCashRegister godoc
// @Summary Get a cash register
// @Tags cash-registers
// @Produce  json
// @Param   registerID path string true "Cash register ID"
// @Success 200 {object} dto.CashRegisterResponse
// @Failure 404 {object} map[string]string "Cash register not found"
// @Security BearerAuth
// @Router /cash-registers/{registerID} [get]
func (h *cashRegisterHandler) getCashRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	register, err := h.accountService.GetCashRegister(c.Request.Context(), c.Param("registerID"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve cash register")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashRegisterResponse(register))
}

// openShift godoc
// @Summary Open a shift
// @Description Opens a shift on the register with the given opening float. Only one shift may be open per register.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   registerID path string true "Cash register ID"
// @Param   shift body dto.OpenShiftRequest true "Opening float"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Cash register not found"
// @Failure 409 {object} map[string]string "A shift is already open or the register is inactive"
// @Security BearerAuth
// @Router /cash-registers/{registerID}/shifts [post]
func (h *cashRegisterHandler) openShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenShiftRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	registerID := c.Param("registerID")

	shift, err := h.shiftService.OpenShift(c.Request.Context(), registerID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "open shift")
		return
	}

	middleware.PosthogEvent(c, h.posthog, analytics.EventShiftOpened, map[string]any{
		"shift_id":         shift.ShiftID,
		"cash_register_id": registerID,
		"opening_amount":   shift.OpeningAmount.String(),
	})
	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List the shifts of a register
// @Tags shifts
// @Produce  json
// @Param   registerID path string true "Cash register ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 404 {object} map[string]string "Cash register not found"
// @Security BearerAuth
// @Router /cash-registers/{registerID}/shifts [get]
func (h *cashRegisterHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListShiftsParams
	if !bindQuery(c, logger, &params) {
		return
	}
	resp, err := h.shiftService.ListShifts(c.Request.Context(), c.Param("registerID"), params)
	if err != nil {
		respondServiceError(c, logger, err, "list shifts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getOpenShift godoc
// @Summary Get the open shift of a register
// @Tags shifts
// @Produce  json
// @Param   registerID path string true "Cash register ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} map[string]string "Cash register not found"
// @Failure 409 {object} map[string]string "Register has no open shift"
// @Security BearerAuth
// @Router /cash-registers/{registerID}/shifts/open [get]
func (h *cashRegisterHandler) getOpenShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shift, err := h.shiftService.GetOpenShift(c.Request.Context(), c.Param("registerID"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve open shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// getLastClosedShift godoc
// @Summary Get the last closed shift of a register
// @Description Returns the float left in the drawer by the previous shift, or null when the register never closed a shift
// @Tags shifts
// @Produce  json
// @Param   registerID path string true "Cash register ID"
// @Success 200 {object} dto.LastClosedShiftResponse
// @Failure 404 {object} map[string]string "Cash register not found"
// @Security BearerAuth
// @Router /cash-registers/{registerID}/shifts/last-closed [get]
func (h *cashRegisterHandler) getLastClosedShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shift, err := h.shiftService.GetLastClosedShift(c.Request.Context(), c.Param("registerID"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve last closed shift")
		return
	}
	if shift == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToLastClosedShiftResponse(shift))
}
