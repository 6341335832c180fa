package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseContractStatus(t *testing.T) {
	cases := map[string]ContractStatus{
		"Vigente":     ContractStatusActive,
		"ACTIVE":      ContractStatusActive,
		" completado": ContractStatusCompleted,
		"Vencido":     ContractStatusExpired,
		"Cancelado":   ContractStatusCancelled,
		"canceled":    ContractStatusCancelled,
	}
	for raw, want := range cases {
		got, ok := ParseContractStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := ParseContractStatus("Disponible")
	assert.False(t, ok)
}

func TestParseVehicleStatus(t *testing.T) {
	assert.Equal(t, VehicleStatusAvailable, ParseVehicleStatus("Disponible"))
	assert.Equal(t, VehicleStatusAvailable, ParseVehicleStatus("AVAILABLE"))
	assert.Equal(t, VehicleStatusMaintenance, ParseVehicleStatus("En Mantenimiento"))
	assert.Equal(t, VehicleStatusMaintenance, ParseVehicleStatus("en   mantenimiento"))
	assert.Equal(t, VehicleStatusUnknown, ParseVehicleStatus("Vigente"))
}

func TestParsePaymentStatus(t *testing.T) {
	got, ok := ParsePaymentStatus("Pagado")
	assert.True(t, ok)
	assert.Equal(t, PaymentStatusCompleted, got)

	_, ok = ParsePaymentStatus("refunded")
	assert.False(t, ok)
}

func TestContractStatusTransitions(t *testing.T) {
	assert.True(t, ContractStatusActive.CanTransition(ContractStatusCompleted))
	assert.True(t, ContractStatusActive.CanTransition(ContractStatusCancelled))
	assert.True(t, ContractStatusCancelled.CanTransition(ContractStatusActive))
	assert.True(t, ContractStatusExpired.CanTransition(ContractStatusActive))
	assert.False(t, ContractStatusCompleted.CanTransition(ContractStatusActive))
	assert.False(t, ContractStatusCancelled.CanTransition(ContractStatusCompleted))

	assert.True(t, ContractStatusExpired.Blocks())
	assert.False(t, ContractStatusCancelled.Blocks())
}

func TestContractCovers(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	bounded := Contract{StartDate: start, EndDate: &end}
	assert.True(t, bounded.Covers(start))
	assert.True(t, bounded.Covers(end))
	assert.False(t, bounded.Covers(end.AddDate(0, 0, 1)))
	assert.False(t, bounded.Covers(start.AddDate(0, 0, -1)))

	open := Contract{StartDate: start}
	assert.True(t, open.Covers(start.AddDate(5, 0, 0)))
}
