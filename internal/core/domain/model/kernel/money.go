package kernel

import (
	"fmt"

	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits every amount is kept at.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is an exact, non-negative amount with at most two fraction digits.
// Arithmetic goes through shopspring/decimal so sums of line items never drift.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	subtotal := price.MulInt(3) // 30.00
//	total := subtotal.Add(other)
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a constructed 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney rejects negative amounts and amounts with more than two fraction digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.00", "unbounded")
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s has more than %d fraction digits", amount.String(), MoneyScale))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a plain decimal such as "35.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MulInt returns m × n. Used for quantity × unit price.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))), guard: guard.NewConstructorGuard()}
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual compares amounts, ignoring representation ("5.5" equals "5.50").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Digits returns the count of significant digits at MoneyScale, e.g. 8 for 123456.78.
func (m Money) Digits() int {
	return len(m.amount.Abs().Shift(MoneyScale).Truncate(0).String())
}

// Decimal exposes the amount for persistence mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String formats with exactly two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
