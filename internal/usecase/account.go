package usecase

import (
	"context"

	"slotdesk/internal/domain/model"
	"slotdesk/internal/domain/repository"
)

// AccountUseCase covers administrative account management. Slot counters are not
// touched here; they only move through order transactions.
type AccountUseCase struct {
	accounts repository.AccountRepository
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(accounts repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accounts: accounts}
}

// Create registers a new shared account with zero consumed slots.
func (u *AccountUseCase) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	if err := ValidateAccountInput(account); err != nil {
		return nil, err
	}
	return u.accounts.Create(ctx, account)
}

// Get returns an account by id.
func (u *AccountUseCase) Get(ctx context.Context, id int64) (*model.Account, error) {
	return u.accounts.GetByID(ctx, id)
}

// List returns all accounts ordered by id.
func (u *AccountUseCase) List(ctx context.Context) ([]model.Account, error) {
	return u.accounts.List(ctx)
}

// UpdateCapacity resizes an account, never below its consumed slots.
func (u *AccountUseCase) UpdateCapacity(ctx context.Context, id int64, maxUserSlots int) error {
	return u.accounts.UpdateCapacity(ctx, id, maxUserSlots)
}

// SlotUsage reports stored counters next to active item sums for auditing.
func (u *AccountUseCase) SlotUsage(ctx context.Context) ([]model.SlotUsage, error) {
	return u.accounts.SlotUsage(ctx)
}
