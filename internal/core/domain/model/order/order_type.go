package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// OrderType classifies how an order is sourced and whether a shopping phase
// applies to it.
//
// Regular orders are picked item by item at a shop, so they pass through the
// Shopping status. Restaurant orders are prepared by the restaurant and skip
// shopping entirely. Reel orders are placed from a promotional video; they skip
// shopping only when the reel belongs to a restaurant or a user-owned kitchen,
// since the goods are pre-made.
type OrderType int

const (
	// TypeUnknown represents an invalid or undefined order type.
	// This value (0) helps catch uninitialized OrderType values.
	TypeUnknown OrderType = iota

	// TypeRegular is a shop-scoped purchase picked item by item.
	TypeRegular

	// TypeReel is an order placed from a promotional reel.
	TypeReel

	// TypeRestaurant is a pre-made restaurant order.
	TypeRestaurant
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		TypeUnknown:    "unknown",
		TypeRegular:    "regular",
		TypeReel:       "reel",
		TypeRestaurant: "restaurant",
	}
}

func getValidOrderTypeStrings() map[OrderType]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[OrderType]string{
		TypeRegular:    "regular",
		TypeReel:       "reel",
		TypeRestaurant: "restaurant",
	}
}

// OrderTypeFromString parses an order type from its wire representation
// ("regular", "reel", "restaurant"). Returns an error for any other value.
func OrderTypeFromString(s string) (OrderType, error) {
	for orderType, str := range getValidOrderTypeStrings() {
		if str == s {
			return orderType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the OrderType value is valid.
// Valid types are: regular, reel, restaurant.
func (t OrderType) Validate() error {
	if _, ok := getValidOrderTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire representation of the order type.
// Implements the fmt.Stringer interface; safe to call on any value.
func (t OrderType) String() string {
	if str, ok := getOrderTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
