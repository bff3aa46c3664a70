package handlers

import (
	"net/http"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvc
}

// RegisterBalanceRoutes registers the balance routes.
func RegisterBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := &balanceHandler{balanceService: balanceService}

	balances := rg.Group("/balances")
	{
		balances.POST("/batch", h.getBalances)
		balances.GET("/:accountType/:accountID", h.getBalance)
	}
}

// getBalance godoc
// @Summary Get the balance of an account
// @Description Folds the initial balance and every movement of the account. For a cash register it is the current cash of its open shift.
// @Tags balances
// @Produce  json
// @Param   accountType path string true "bank_account, safe_box or cash_register"
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Unknown account type"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Register has no open shift"
// @Security BearerAuth
// @Router /balances/{accountType}/{accountID} [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.AccountKind(c.Param("accountType"))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown account type: " + string(kind)})
		return
	}
	accountID := c.Param("accountID")

	balance, err := h.balanceService.GetBalance(c.Request.Context(), kind, accountID)
	if err != nil {
		respondServiceError(c, logger, err, "calculate balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountType: kind, AccountID: accountID, Balance: balance})
}

// getBalances godoc
// @Summary Get the balances of many accounts
// @Description Batch variant for bank accounts or safe boxes of one kind
// @Tags balances
// @Accept  json
// @Produce  json
// @Param   request body dto.BatchBalancesRequest true "Account type and ids"
// @Success 200 {object} dto.BatchBalancesResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /balances/batch [post]
func (h *balanceHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchBalancesRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	balances, err := h.balanceService.GetBalances(c.Request.Context(), req.AccountType, req.AccountIDs)
	if err != nil {
		respondServiceError(c, logger, err, "calculate balances")
		return
	}
	c.JSON(http.StatusOK, dto.BatchBalancesResponse{AccountType: req.AccountType, Balances: balances})
}
