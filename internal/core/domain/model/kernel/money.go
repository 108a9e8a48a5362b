package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in
// minor currency units (cents). Prices and order line snapshots use Money
// so that arithmetic never touches floating point.
//
// The zero value (zero amount) is valid: free items are allowed.
type Money struct {
	amount int64
}

// NewMoney creates a Money value. The amount must not be negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Mul returns the amount multiplied by a quantity, for order line totals.
func (m Money) Mul(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	return Money{amount: m.amount * int64(quantity)}, nil
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}
