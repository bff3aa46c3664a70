package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for bank accounts and safe boxes.
type accountHandler struct {
	accountService  portssvc.AccountSvcFacade
	movementService portssvc.MovementReaderSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, ms portssvc.MovementReaderSvc) *accountHandler {
	return &accountHandler{
		accountService:  as,
		movementService: ms,
	}
}

// RegisterAccountRoutes registers the bank account and safe box routes.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, movementService portssvc.MovementReaderSvc) {
	h := newAccountHandler(accountService, movementService)

	banks := rg.Group("/bank-accounts")
	{
		banks.POST("", h.createBankAccount)
		banks.GET("", h.listBankAccounts)
		banks.GET("/:accountID", h.getBankAccount)
		banks.PUT("/:accountID", h.updateBankAccount)
		banks.POST("/:accountID/archive", h.archive(domain.KindBankAccount))
		banks.POST("/:accountID/restore", h.restore(domain.KindBankAccount))
		banks.GET("/:accountID/movements", h.listMovements(domain.LedgerBankAccount))
	}

	safes := rg.Group("/safe-boxes")
	{
		safes.POST("", h.createSafeBox)
		safes.GET("", h.listSafeBoxes)
		safes.GET("/:accountID", h.getSafeBox)
		safes.PUT("/:accountID", h.updateSafeBox)
		safes.POST("/:accountID/archive", h.archive(domain.KindSafeBox))
		safes.POST("/:accountID/restore", h.restore(domain.KindSafeBox))
		safes.GET("/:accountID/movements", h.listMovements(domain.LedgerSafeBox))
	}
}

// createBankAccount godoc
// @Summary Create a bank account
// @Description Registers a bank account with its opening balance
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create bank account"
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *accountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create bank account", slog.String("name", req.Name), slog.String("currency_code", req.CurrencyCode))
	account, err := h.accountService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create bank account")
		return
	}

	logger.Info("Bank account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// getBankAccount godoc
// @Summary Get a bank account
// @Tags bank-accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bank account"
// @Security BearerAuth
// @Router /bank-accounts/{accountID} [get]
func (h *accountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, err := h.accountService.GetBankAccount(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags bank-accounts
// @Produce  json
// @Param   includeArchived query bool false "Include archived accounts"
// @Success 200 {array} dto.BankAccountResponse
// @Failure 500 {object} map[string]string "Failed to list bank accounts"
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *accountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if !bindQuery(c, logger, &params) {
		return
	}
	accounts, err := h.accountService.ListBankAccounts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list bank accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

// updateBankAccount godoc
// @Summary Update a bank account
// @Description Changes the descriptive fields of a bank account. Currency and opening balance are fixed.
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   account body dto.UpdateBankAccountRequest true "Fields to update"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{accountID} [put]
func (h *accountHandler) updateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBankAccountRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	account, err := h.accountService.UpdateBankAccount(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// createSafeBox godoc
// @Summary Create a safe box
// @Description Registers a safe box with its opening balance
// @Tags safe-boxes
// @Accept  json
// @Produce  json
// @Param   safeBox body dto.CreateSafeBoxRequest true "Safe box details"
// @Success 201 {object} dto.SafeBoxResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create safe box"
// @Security BearerAuth
// @Router /safe-boxes [post]
func (h *accountHandler) createSafeBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSafeBoxRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}

	box, err := h.accountService.CreateSafeBox(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create safe box")
		return
	}

	logger.Info("Safe box created successfully", slog.String("account_id", box.AccountID))
	c.JSON(http.StatusCreated, dto.ToSafeBoxResponse(box))
}

// getSafeBox godoc
// @Summary Get a safe box
// @Tags safe-boxes
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.SafeBoxResponse
// @Failure 404 {object} map[string]string "Safe box not found"
// @Security BearerAuth
// @Router /safe-boxes/{accountID} [get]
func (h *accountHandler) getSafeBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	box, err := h.accountService.GetSafeBox(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieve safe box")
		return
	}
	c.JSON(http.StatusOK, dto.ToSafeBoxResponse(box))
}

// listSafeBoxes godoc
// @Summary List safe boxes
// @Tags safe-boxes
// @Produce  json
// @Param   includeArchived query bool false "Include archived safe boxes"
// @Success 200 {array} dto.SafeBoxResponse
// @Security BearerAuth
// @Router /safe-boxes [get]
func (h *accountHandler) listSafeBoxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if !bindQuery(c, logger, &params) {
		return
	}
	boxes, err := h.accountService.ListSafeBoxes(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "list safe boxes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSafeBoxResponse(boxes))
}

// updateSafeBox godoc
// @Summary Update a safe box
// @Tags safe-boxes
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   safeBox body dto.UpdateSafeBoxRequest true "Fields to update"
// @Success 200 {object} dto.SafeBoxResponse
// @Failure 404 {object} map[string]string "Safe box not found"
// @Security BearerAuth
// @Router /safe-boxes/{accountID} [put]
func (h *accountHandler) updateSafeBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSafeBoxRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}
	box, err := h.accountService.UpdateSafeBox(c.Request.Context(), c.Param("accountID"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update safe box")
		return
	}
	c.JSON(http.StatusOK, dto.ToSafeBoxResponse(box))
}

// archive godoc
// @Summary Archive an account
// @Description Archived accounts keep their history but reject new movements
// @Tags bank-accounts, safe-boxes
// @Param   accountID path string true "Account ID"
// @Success 204
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account already archived"
// @Security BearerAuth
// @Router /bank-accounts/{accountID}/archive [post]
// @Router /safe-boxes/{accountID}/archive [post]
func (h *accountHandler) archive(kind domain.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		userID, ok := actingUser(c, logger)
		if !ok {
			return
		}
		accountID := c.Param("accountID")
		if err := h.accountService.ArchiveAccount(c.Request.Context(), kind, accountID, userID); err != nil {
			respondServiceError(c, logger, err, "archive account")
			return
		}
		logger.Info("Account archived", slog.String("kind", string(kind)), slog.String("account_id", accountID))
		c.Status(http.StatusNoContent)
	}
}

// restore godoc
// @Summary Restore an archived account
// @Tags bank-accounts, safe-boxes
// @Param   accountID path string true "Account ID"
// @Success 204
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account is not archived"
// @Security BearerAuth
// @Router /bank-accounts/{accountID}/restore [post]
// @Router /safe-boxes/{accountID}/restore [post]
func (h *accountHandler) restore(kind domain.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		userID, ok := actingUser(c, logger)
		if !ok {
			return
		}
		accountID := c.Param("accountID")
		if err := h.accountService.RestoreAccount(c.Request.Context(), kind, accountID, userID); err != nil {
			respondServiceError(c, logger, err, "restore account")
			return
		}
		logger.Info("Account restored", slog.String("kind", string(kind)), slog.String("account_id", accountID))
		c.Status(http.StatusNoContent)
	}
}

// listMovements godoc
// @Summary List the movements of an account
// @Description Newest first, paginated with an opaque token
// @Tags bank-accounts, safe-boxes
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /bank-accounts/{accountID}/movements [get]
// @Router /safe-boxes/{accountID}/movements [get]
func (h *accountHandler) listMovements(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		listLedgerMovements(c, h.movementService, kind, c.Param("accountID"))
	}
}

// listLedgerMovements is shared by the account and shift movement listings.
func listLedgerMovements(c *gin.Context, movementService portssvc.MovementReaderSvc, kind domain.LedgerKind, accountID string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMovementsParams
	if !bindQuery(c, logger, &params) {
		return
	}
	resp, err := movementService.ListMovements(c.Request.Context(), kind, accountID, params)
	if err != nil {
		respondServiceError(c, logger, err, "list movements")
		return
	}
	c.JSON(http.StatusOK, resp)
}
