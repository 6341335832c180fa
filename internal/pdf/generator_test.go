package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/rental-contracts/internal/model"
)

func TestGenerate(t *testing.T) {
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	doc := model.ContractDocument{
		Contract: model.Contract{
			ID:          uuid.New(),
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     &end,
			Type:        model.ContractTypeDaily,
			DailyPrice:  decimal.NewNullDecimal(decimal.NewFromInt(50)),
			PenaltyRate: decimal.RequireFromString("0.01"),
			Status:      model.ContractStatusActive,
			Terms:       "El vehículo se entrega con el tanque lleno.",
			Driver:      &model.DriverSummary{FirstName: "José", LastName: "Núñez", DocumentNumber: "X-1"},
			Vehicle:     &model.VehicleSummary{Plate: "ABC-123", Brand: "Kia", Model: "Rio", Year: 2022},
			Payments: []model.Payment{
				{Type: model.PaymentTypeDeposit, Status: model.PaymentStatusPending, Amount: decimal.NewFromInt(300), Date: end},
			},
		},
		Balance: model.Balance{
			TotalValue: decimal.NewFromInt(1550),
			TotalPaid:  decimal.Zero,
			Penalties:  decimal.Zero,
			Balance:    decimal.NewFromInt(1550),
		},
		GeneratedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	content, err := NewGenerator().Generate(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestGenerateWithoutParties(t *testing.T) {
	content, err := NewGenerator().Generate(model.ContractDocument{
		Contract: model.Contract{
			ID:        uuid.New(),
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Type:      model.ContractTypeCustom,
			Status:    model.ContractStatusActive,
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

func TestFormatPeriod(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "from 01.01.2024, open-ended", formatPeriod(model.Contract{StartDate: start}))

	end := start.AddDate(0, 0, 30)
	assert.Equal(t, "01.01.2024 to 31.01.2024", formatPeriod(model.Contract{StartDate: start, EndDate: &end}))
}
