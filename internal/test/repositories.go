package test

import (
	"context"

	domainErrors "slotdesk/internal/domain/errors"
	"slotdesk/internal/domain/model"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	ByID    map[int64]*model.Account
	ByEmail map[string]*model.Account
	Next    int64
	Err     error

	SlotUsageFn func(context.Context) ([]model.SlotUsage, error)
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		ByID:    make(map[int64]*model.Account),
		ByEmail: make(map[string]*model.Account),
		Next:    1,
	}
}

// Add seeds an account, assigning an id when missing.
func (s *AccountRepositoryStub) Add(account *model.Account) *model.Account {
	if account.ID == 0 {
		account.ID = s.Next
		s.Next++
	}
	s.ByID[account.ID] = account
	s.ByEmail[account.Email] = account
	return account
}

// Create registers an account unless the email is taken.
func (s *AccountRepositoryStub) Create(ctx context.Context, account *model.Account) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[account.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	created := *account
	return s.Add(&created), nil
}

// GetByID fetches an account or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if a, ok := s.ByID[id]; ok {
		return a, nil
	}
	return nil, domainErrors.ErrAccountNotFound
}

// GetByEmail fetches an account by email or returns not found.
func (s *AccountRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if a, ok := s.ByEmail[email]; ok {
		return a, nil
	}
	return nil, domainErrors.ErrAccountNotFound
}

// List returns all seeded accounts.
func (s *AccountRepositoryStub) List(ctx context.Context) ([]model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Account, 0, len(s.ByID))
	for _, a := range s.ByID {
		result = append(result, *a)
	}
	return result, nil
}

// UpdateCapacity resizes an account with the same guard as the real repository.
func (s *AccountRepositoryStub) UpdateCapacity(ctx context.Context, id int64, maxUserSlots int) error {
	if s.Err != nil {
		return s.Err
	}
	a, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrAccountNotFound
	}
	if maxUserSlots < a.CurrentUsers {
		return &domainErrors.ValidationError{Reason: "cannot lower capacity below consumed slots"}
	}
	a.MaxUserSlots = maxUserSlots
	return nil
}

// SlotUsage delegates to SlotUsageFn or derives usage from seeded accounts.
func (s *AccountRepositoryStub) SlotUsage(ctx context.Context) ([]model.SlotUsage, error) {
	if s.SlotUsageFn != nil {
		return s.SlotUsageFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.SlotUsage, 0, len(s.ByID))
	for _, a := range s.ByID {
		result = append(result, model.SlotUsage{
			AccountID:      a.ID,
			AccountEmail:   a.Email,
			CurrentUsers:   a.CurrentUsers,
			ActiveQuantity: a.CurrentUsers,
		})
	}
	return result, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByNumberFn  func(context.Context, string) (*model.Order, error)
	ListFn         func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
	DeleteFn       func(context.Context, string) (int, error)
}

// Create delegates to CreateFn or echoes the order with an id.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = 1
	return &created, nil
}

// GetByNumber delegates to GetByNumberFn or reports not found.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	return nil, domainErrors.ErrNotFound
}

// List delegates to ListFn or returns nothing.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

// UpdateStatus delegates to UpdateStatusFn or reports not found.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, number string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, number, status)
	}
	return nil, domainErrors.ErrNotFound
}

// Delete delegates to DeleteFn or reports not found.
func (s *OrderRepositoryStub) Delete(ctx context.Context, number string) (int, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, number)
	}
	return 0, domainErrors.ErrNotFound
}
