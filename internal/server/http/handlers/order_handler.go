package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
	"slotdesk/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	order := toOrderModel(req)
	created, err := h.facade.CreateOrder(c.Request.Context(), order)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(created))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:number.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// immutableOrderFields would desynchronize the slot ledger if patched in place.
var immutableOrderFields = []string{"items", "quantity", "unitPrice", "discountRate", "credentials"}

// Update handles PATCH /api/orders/:number. Only the status may change; edits to
// quantities or prices must go through delete and recreate.
func (h *OrderHandler) Update(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}
	for _, field := range immutableOrderFields {
		if _, ok := raw[field]; ok {
			writeError(c, h.logger, domainErrors.ErrImmutableItems)
			return
		}
	}

	var req dto.UpdateOrderRequest
	if rawStatus, ok := raw["status"]; ok {
		if err := json.Unmarshal(rawStatus, &req.Status); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed status"})
			return
		}
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("number"), model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /api/orders/:number.
func (h *OrderHandler) Delete(c *gin.Context) {
	number := c.Param("number")
	released, err := h.facade.DeleteOrder(c.Request.Context(), number)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteOrderResponse{OrderNumber: number, SlotsReleased: released})
}

func toOrderModel(req dto.CreateOrderRequest) *model.Order {
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			AccountID:    item.AccountID,
			AccountEmail: item.AccountEmail,
			ProductName:  item.ProductName,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
		})
	}

	var creds []model.Credential
	for _, cred := range req.Credentials {
		active := true
		if cred.IsActive != nil {
			active = *cred.IsActive
		}
		creds = append(creds, model.Credential{
			Username:       cred.Username,
			Password:       cred.Password,
			LoginURL:       cred.LoginURL,
			AdditionalInfo: cred.AdditionalInfo,
			IsActive:       active,
		})
	}

	return &model.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerType:  model.CustomerType(req.CustomerType),
		DiscountRate:  req.DiscountRate,
		Items:         items,
		Credentials:   creds,
	}
}
