package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
	"slotdesk/internal/server/http/dto"
)

// writeError maps domain errors to distinct status codes. Anything outside the
// taxonomy is an unmodeled failure: logged with context, returned as 500.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	var capacityErr *domainErrors.InsufficientCapacityError
	switch {
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: capacityErr.Error(),
			Account: &dto.AccountCapacityRef{
				ID:        capacityErr.AccountID,
				Email:     capacityErr.AccountEmail,
				Requested: capacityErr.Requested,
				Available: capacityErr.Available,
			},
		})
	case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrImmutableItems):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrAccountNotFound), errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrTransientStore):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error("unmodeled failure",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			AccountID:    item.AccountID,
			AccountEmail: item.AccountEmail,
			ProductName:  item.ProductName,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
		})
	}

	var creds []dto.CredentialResponse
	for _, cred := range order.Credentials {
		creds = append(creds, dto.CredentialResponse{
			Username:       cred.Username,
			Password:       cred.Password,
			LoginURL:       cred.LoginURL,
			AdditionalInfo: cred.AdditionalInfo,
			IsActive:       cred.IsActive,
		})
	}

	return dto.OrderResponse{
		OrderNumber:    order.Number,
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
		CustomerType:   string(order.CustomerType),
		DiscountRate:   order.DiscountRate,
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
		Status:         string(order.Status),
		Items:          items,
		Credentials:    creds,
		CreatedAt:      order.CreatedAt,
	}
}

func toAccountResponse(account *model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:             account.ID,
		ServiceName:    account.ServiceName,
		Email:          account.Email,
		MaxUserSlots:   account.MaxUserSlots,
		CurrentUsers:   account.CurrentUsers,
		AvailableSlots: account.AvailableSlots(),
	}
}
