package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePenalty(t *testing.T) {
	base := decimal.NewFromInt(1000)
	rate := decimal.RequireFromString("0.01")

	cases := []struct {
		name     string
		daysLate int
		allowed  int
		want     string
	}{
		{name: "beyond grace", daysLate: 5, allowed: 3, want: "20"},
		{name: "within grace", daysLate: 2, allowed: 3, want: "0"},
		{name: "on the last grace day", daysLate: 3, allowed: 3, want: "0"},
		{name: "no grace", daysLate: 1, allowed: 0, want: "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculatePenalty(base, rate, tc.daysLate, tc.allowed)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestCalculatePenaltyRounds(t *testing.T) {
	got, err := CalculatePenalty(decimal.RequireFromString("333.33"), decimal.RequireFromString("0.015"), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "5", got.String())
}

func TestCalculatePenaltyRejectsInvalidInput(t *testing.T) {
	base := decimal.NewFromInt(1000)
	rate := decimal.RequireFromString("0.01")

	_, err := CalculatePenalty(base.Neg(), rate, 5, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculatePenalty(base, rate.Neg(), 5, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculatePenalty(base, decimal.RequireFromString("1.5"), 5, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculatePenalty(base, rate, -1, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculatePenalty(base, rate, 5, -3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
