package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order lifecycle. Callers classify failures with
// errors.Is against these values; the typed errors below carry the details.
var (
	ErrInvalidTransition  = errors.New("status transition is not allowed")
	ErrTerminalState      = errors.New("order is in terminal state")
	ErrIncompleteShopping = errors.New("shopping is not complete")
	ErrInvalidQuantity    = errors.New("found quantity is out of bounds")
	ErrLedgerClosed       = errors.New("items are immutable outside the shopping phase")
)

// TransitionError indicates that a requested status transition is not present
// in the lifecycle table for the order.
type TransitionError struct {
	From Status
	To   Status
}

// NewTransitionError creates a TransitionError for the given status pair.
func NewTransitionError(from Status, to Status) *TransitionError {
	return &TransitionError{From: from, To: to}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// TerminalStateError indicates a mutation attempt on a delivered order.
// Delivered is a terminal status; no further transitions are permitted.
type TerminalStateError struct {
	To Status
}

// NewTerminalStateError creates a TerminalStateError for the requested target status.
func NewTerminalStateError(to Status) *TerminalStateError {
	return &TerminalStateError{To: to}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrTerminalState, Delivered, e.To)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// IncompleteShoppingError indicates an attempt to leave the shopping phase
// before any item was resolved as found or unavailable.
type IncompleteShoppingError struct {
	ItemCount int
}

// NewIncompleteShoppingError creates an IncompleteShoppingError for an order
// holding the given number of unresolved items.
func NewIncompleteShoppingError(itemCount int) *IncompleteShoppingError {
	return &IncompleteShoppingError{ItemCount: itemCount}
}

func (e *IncompleteShoppingError) Error() string {
	return fmt.Sprintf("%s: none of %d items is resolved", ErrIncompleteShopping, e.ItemCount)
}

func (e *IncompleteShoppingError) Unwrap() error {
	return ErrIncompleteShopping
}

// InvalidQuantityError indicates a found quantity outside the [0, quantity]
// bounds of an item, or a found item with no units.
type InvalidQuantityError struct {
	FoundQuantity int
	Quantity      int
}

// NewInvalidQuantityError creates an InvalidQuantityError describing the
// offending found quantity against the requested quantity.
func NewInvalidQuantityError(foundQuantity int, quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{FoundQuantity: foundQuantity, Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d of %d", ErrInvalidQuantity, e.FoundQuantity, e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// LedgerError indicates an item mutation attempted while the owning order is
// outside the shopping phase. Items are immutable before and after shopping.
type LedgerError struct {
	Status Status
}

// NewLedgerError creates a LedgerError for the order's current status.
func NewLedgerError(status Status) *LedgerError {
	return &LedgerError{Status: status}
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s: order is %s", ErrLedgerClosed, e.Status)
}

func (e *LedgerError) Unwrap() error {
	return ErrLedgerClosed
}
