package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order being fulfilled by a
// delivery worker. It implements a state machine with defined transitions to
// ensure orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Accepted ──> Shopping ──> OnTheWay ──> AtCustomer ──> Delivered
//	    │                        │  ^                        ^
//	    ├──> Picked ─────────────┘  └────────────────────────┘
//	    └───────────────────────────^
//
// The Shopping phase applies only to orders that require picking; restaurant
// orders and pre-made reel orders go straight from Accepted to Picked or
// OnTheWay. Delivered is terminal: every transition request from it fails with
// a TerminalStateError.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Accepted is the status at which an order enters fulfillment:
	// a delivery worker has taken the batch but work has not started.
	Accepted

	// Shopping indicates the worker is picking items at the shop.
	// Item found/not-found state is mutable only in this status.
	Shopping

	// Picked is an alternate intermediate for restaurant and pre-made reel
	// orders: the goods are collected without a shopping phase.
	Picked

	// OnTheWay indicates the worker is en route to the customer.
	OnTheWay

	// AtCustomer indicates the worker has arrived at the delivery address.
	AtCustomer

	// Delivered indicates the order has been handed over.
	// This is a terminal state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Accepted:      "accepted",
		Shopping:      "shopping",
		Picked:        "picked",
		OnTheWay:      "on_the_way",
		AtCustomer:    "at_customer",
		Delivered:     "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Accepted:   "accepted",
		Shopping:   "shopping",
		Picked:     "picked",
		OnTheWay:   "on_the_way",
		AtCustomer: "at_customer",
		Delivered:  "delivered",
	}
}

// StatusFromString parses a status from its wire representation
// ("accepted", "shopping", "picked", "on_the_way", "at_customer", "delivered").
// Returns an error for any other value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface; safe to call on any value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status is a valid non-terminal working state.
func (s Status) IsActive() bool {
	return s != Delivered && s.Validate() == nil
}

// IsPicking reports whether the status belongs to the picking phase
// (Accepted or Shopping). Used by the visible-shop filter: a shop group stays
// visible only while some order touching the shop is still picking.
func (s Status) IsPicking() bool {
	return s == Accepted || s == Shopping
}

// StartShopping transitions the status to Shopping.
//
// Valid transitions:
//   - Accepted -> Shopping, only when the order requires a shopping phase
//
// Returns (0, error) with a TransitionError or TerminalStateError if the
// transition is not allowed from the current status.
func (s Status) StartShopping(shoppingRequired bool) (Status, error) {
	if err := s.guardNotTerminal(Shopping); err != nil {
		return 0, err
	}

	if s != Accepted || !shoppingRequired {
		return 0, NewTransitionError(s, Shopping)
	}

	return Shopping, nil
}

// MarkPicked transitions the status to Picked.
//
// Valid transitions:
//   - Accepted -> Picked, only for orders whose shopping phase is skipped
//     (restaurant and pre-made reel orders)
//
// Returns (0, error) with a TransitionError or TerminalStateError if the
// transition is not allowed from the current status.
func (s Status) MarkPicked(shoppingRequired bool) (Status, error) {
	if err := s.guardNotTerminal(Picked); err != nil {
		return 0, err
	}

	if s != Accepted || shoppingRequired {
		return 0, NewTransitionError(s, Picked)
	}

	return Picked, nil
}

// Depart transitions the status to OnTheWay.
//
// Valid transitions:
//   - Shopping -> OnTheWay (picking finished)
//   - Picked -> OnTheWay
//   - Accepted -> OnTheWay, only for orders whose shopping phase is skipped
//
// The at-least-one-resolved-item guard for leaving Shopping lives on the Order
// aggregate, which owns the items.
func (s Status) Depart(shoppingRequired bool) (Status, error) {
	if err := s.guardNotTerminal(OnTheWay); err != nil {
		return 0, err
	}

	switch {
	case s == Shopping || s == Picked:
		return OnTheWay, nil
	case s == Accepted && !shoppingRequired:
		return OnTheWay, nil
	default:
		return 0, NewTransitionError(s, OnTheWay)
	}
}

// Arrive transitions the status to AtCustomer.
//
// Valid transitions:
//   - OnTheWay -> AtCustomer
func (s Status) Arrive() (Status, error) {
	if err := s.guardNotTerminal(AtCustomer); err != nil {
		return 0, err
	}

	if s != OnTheWay {
		return 0, NewTransitionError(s, AtCustomer)
	}

	return AtCustomer, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OnTheWay -> Delivered
//   - AtCustomer -> Delivered
//
// The proof-of-delivery guard lives on the Order aggregate, which holds the
// artifact reference.
func (s Status) Deliver() (Status, error) {
	if err := s.guardNotTerminal(Delivered); err != nil {
		return 0, err
	}

	if s != OnTheWay && s != AtCustomer {
		return 0, NewTransitionError(s, Delivered)
	}

	return Delivered, nil
}

// guardNotTerminal rejects any transition out of the Delivered status.
func (s Status) guardNotTerminal(to Status) error {
	if s == Delivered {
		return NewTerminalStateError(to)
	}
	return nil
}
