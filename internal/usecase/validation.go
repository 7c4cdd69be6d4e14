package usecase

import (
	"fmt"
	"strings"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
)

// ValidateOrderInput checks required fields before any transaction is opened.
func ValidateOrderInput(order *model.Order) error {
	if strings.TrimSpace(order.CustomerName) == "" {
		return &domainErrors.ValidationError{Reason: "customerName is required"}
	}
	if len(order.Items) == 0 {
		return &domainErrors.ValidationError{Reason: "at least one line item is required"}
	}
	for i, item := range order.Items {
		if item.AccountID == 0 && strings.TrimSpace(item.AccountEmail) == "" {
			return &domainErrors.ValidationError{Reason: fmt.Sprintf("item %d: accountId or accountEmail is required", i)}
		}
		if item.Quantity <= 0 {
			return &domainErrors.ValidationError{Reason: fmt.Sprintf("item %d: quantity must be positive", i)}
		}
		if item.UnitPrice < 0 {
			return &domainErrors.ValidationError{Reason: fmt.Sprintf("item %d: unitPrice must not be negative", i)}
		}
	}
	switch order.CustomerType {
	case "", model.CustomerTypeStandard, model.CustomerTypeReseller:
	default:
		return &domainErrors.ValidationError{Reason: "customerType must be standard or reseller"}
	}
	return nil
}

// ValidateOrderStatus accepts only known lifecycle states.
func ValidateOrderStatus(status model.OrderStatus) error {
	switch status {
	case model.OrderStatusActive, model.OrderStatusCompleted, model.OrderStatusCancelled:
		return nil
	default:
		return &domainErrors.ValidationError{Reason: fmt.Sprintf("unknown order status %q", status)}
	}
}

// ValidateAccountInput checks administrative account creation fields.
func ValidateAccountInput(account *model.Account) error {
	if strings.TrimSpace(account.Email) == "" {
		return &domainErrors.ValidationError{Reason: "email is required"}
	}
	if account.MaxUserSlots < 1 {
		return &domainErrors.ValidationError{Reason: "maxUserSlots must be at least 1"}
	}
	return nil
}
