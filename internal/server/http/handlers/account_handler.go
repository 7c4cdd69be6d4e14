package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"slotdesk/internal/domain/model"
	"slotdesk/internal/server/http/dto"
)

// AccountHandler manages administrative account endpoints.
type AccountHandler struct {
	facade AccountFacade
	logger *slog.Logger
}

// NewAccountHandler constructs AccountHandler.
func NewAccountHandler(facade AccountFacade, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{facade: facade, logger: logger}
}

// Create handles POST /api/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	account, err := h.facade.CreateAccount(c.Request.Context(), &model.Account{
		ServiceName:  req.ServiceName,
		Email:        req.Email,
		MaxUserSlots: req.MaxUserSlots,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toAccountResponse(account))
}

// List handles GET /api/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.facade.Accounts(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if len(accounts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		response = append(response, toAccountResponse(&accounts[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed account id"})
		return
	}

	account, err := h.facade.Account(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(account))
}

// Update handles PATCH /api/accounts/:id. Capacity may grow freely but never
// shrink below consumed slots.
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed account id"})
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	if err := h.facade.UpdateAccountCapacity(c.Request.Context(), id, req.MaxUserSlots); err != nil {
		writeError(c, h.logger, err)
		return
	}

	account, err := h.facade.Account(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(account))
}
