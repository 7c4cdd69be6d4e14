package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation failed")
	ErrImmutableItems  = errors.New("order items cannot be edited in place")
	ErrTransientStore  = errors.New("transient store failure")
)

// ErrInsufficientCapacity matches the class; the concrete error names the account.
var ErrInsufficientCapacity = errors.New("insufficient slot capacity")

// InsufficientCapacityError reports which account could not satisfy a reservation.
type InsufficientCapacityError struct {
	AccountID    int64
	AccountEmail string
	Requested    int
	Available    int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("account %s has %d slots available, %d requested", e.AccountEmail, e.Available, e.Requested)
}

func (e *InsufficientCapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// ValidationError wraps ErrValidation with a field-level reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
