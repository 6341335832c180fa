package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var maxPenaltyRate = decimal.NewFromInt(1)

// CalculatePenalty charges base × rate for every day late beyond the grace
// period. Negative inputs are rejected rather than clamped.
func CalculatePenalty(base, penaltyRate decimal.Decimal, daysLate, allowedDelayDays int) (decimal.Decimal, error) {
	if base.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: base amount must not be negative", ErrInvalidInput)
	}
	if err := validatePenaltyRate(penaltyRate); err != nil {
		return decimal.Zero, err
	}
	if daysLate < 0 {
		return decimal.Zero, fmt.Errorf("%w: days late must not be negative", ErrInvalidInput)
	}
	if allowedDelayDays < 0 {
		return decimal.Zero, fmt.Errorf("%w: allowed delay days must not be negative", ErrInvalidInput)
	}

	overdue := daysLate - allowedDelayDays
	if overdue <= 0 {
		return decimal.Zero, nil
	}
	return base.Mul(penaltyRate).Mul(decimal.NewFromInt(int64(overdue))).Round(2), nil
}

func validatePenaltyRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxPenaltyRate) {
		return fmt.Errorf("%w: penalty rate must be between 0 and 1", ErrInvalidInput)
	}
	return nil
}
