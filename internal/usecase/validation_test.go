package usecase

import (
	"errors"
	"testing"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
)

func TestValidateOrderStatus(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusActive, model.OrderStatusCompleted, model.OrderStatusCancelled} {
		if err := ValidateOrderStatus(status); err != nil {
			t.Errorf("status %s rejected: %v", status, err)
		}
	}
	if err := ValidateOrderStatus(""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Errorf("empty status accepted")
	}
	if err := ValidateOrderStatus("paused"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Errorf("unknown status accepted")
	}
}

func TestValidateOrderInputItemByEmailOnly(t *testing.T) {
	order := &model.Order{
		CustomerName: "Bob",
		Items:        []model.OrderItem{{AccountEmail: "a@x.io", Quantity: 1}},
	}
	if err := ValidateOrderInput(order); err != nil {
		t.Fatalf("email-only account reference rejected: %v", err)
	}
}

func TestValidateAccountInput(t *testing.T) {
	if err := ValidateAccountInput(&model.Account{Email: "  ", MaxUserSlots: 1}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Error("blank email accepted")
	}
	if err := ValidateAccountInput(&model.Account{Email: "a@x.io", MaxUserSlots: 1}); err != nil {
		t.Errorf("minimal valid account rejected: %v", err)
	}
}
