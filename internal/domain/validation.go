package domain

import "github.com/shopspring/decimal"

// AmountTolerance is how far the sum of a payment's component amounts may
// deviate from the declared total.
var AmountTolerance = decimal.New(1, -2) // 0.01

// ValidateCompositeAmount checks that the component amounts of a multi-part
// payment add up to the declared total within tolerance and that at least one
// component is positive.
func ValidateCompositeAmount(total decimal.Decimal, components ...decimal.Decimal) error {
	sum := decimal.Zero
	allZero := true

	for _, c := range components {
		if c.IsNegative() {
			return ErrInvalidAmount.WithMessage("component amounts cannot be negative")
		}
		if c.IsPositive() {
			allZero = false
		}
		sum = sum.Add(c)
	}

	if allZero {
		return ErrInvalidAmount.WithMessage("at least one component amount must be positive")
	}

	if sum.Sub(total).Abs().GreaterThan(AmountTolerance) {
		return ErrInvalidAmount.WithMessage("component amounts %s do not add up to total %s", sum, total)
	}

	return nil
}

// ValidatePositiveAmount rejects zero and negative amounts.
func ValidatePositiveAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount.WithMessage("amount must be positive, got %s", amount)
	}
	return nil
}
