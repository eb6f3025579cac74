package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
)

// Money is an immutable value object for monetary amounts backed by
// arbitrary-precision decimals. Prices displayed to customers are tax-inclusive,
// so Money carries no currency breakdown - VAT extraction is a pricing concern.
//
// The zero value of Money is a valid zero amount, which keeps aggregations like
// refund totals convenient to fold:
//
//	total := kernel.ZeroMoney()
//	for _, item := range items {
//	    total = total.Add(item.UnitPrice().MulInt(item.Quantity()))
//	}
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a non-negative Money amount from an integer value,
// e.g. NewMoney(1000) for a listed price of 1000.
// Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	return NewMoneyFromDecimal(decimal.NewFromInt(amount))
}

// NewMoneyFromDecimal creates a non-negative Money amount from a decimal.
// Negative amounts are rejected.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// SubFloorZero returns m minus other, floored at zero. Used where business rules
// forbid negative results, such as refund values and discounted totals.
func (m Money) SubFloorZero(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return ZeroMoney()
	}
	return Money{amount: result}
}

// MulInt returns the amount multiplied by an integer factor,
// e.g. unit price times quantity.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality, ignoring exponent
// representation ("3500" equals "3500.00").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
// Implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.String()
}
