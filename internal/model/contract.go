package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractTypeDaily   ContractType = "DAILY"
	ContractTypeMonthly ContractType = "MONTHLY"
	ContractTypeCustom  ContractType = "CUSTOM"
)

func (t ContractType) Valid() bool {
	switch t {
	case ContractTypeDaily, ContractTypeMonthly, ContractTypeCustom:
		return true
	}
	return false
}

type Contract struct {
	ID               uuid.UUID
	DriverID         uuid.UUID
	VehicleID        uuid.UUID
	StartDate        time.Time
	EndDate          *time.Time // nil means open-ended
	Type             ContractType
	BasePrice        decimal.NullDecimal
	DailyPrice       decimal.NullDecimal
	MonthlyPrice     decimal.NullDecimal
	TotalAmount      decimal.NullDecimal
	Deposit          decimal.NullDecimal
	PenaltyRate      decimal.Decimal
	AllowedDelayDays int
	AutomaticRenewal bool
	Status           ContractStatus
	StatusID         *uuid.UUID
	Terms            string
	Notes            string
	CreatedBy        *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Driver       *DriverSummary  `gorm:"-"`
	Vehicle      *VehicleSummary `gorm:"-"`
	StatusLookup *Status         `gorm:"-"`
	Payments     []Payment       `gorm:"-"`
}

func (Contract) TableName() string {
	return "contracts"
}

// Covers reports whether day falls inside [StartDate, EndDate], treating a
// missing EndDate as unbounded.
func (c *Contract) Covers(day time.Time) bool {
	if day.Before(c.StartDate) {
		return false
	}
	return c.EndDate == nil || !day.After(*c.EndDate)
}

// ContractPatch carries the fields of a partial update. Nil means unchanged.
type ContractPatch struct {
	StartDate        *time.Time
	EndDate          *time.Time
	ClearEndDate     bool
	Type             *ContractType
	BasePrice        *decimal.Decimal
	DailyPrice       *decimal.Decimal
	MonthlyPrice     *decimal.Decimal
	TotalAmount      *decimal.Decimal
	Deposit          *decimal.Decimal
	PenaltyRate      *decimal.Decimal
	AllowedDelayDays *int
	AutomaticRenewal *bool
	Status           *ContractStatus
	StatusID         *uuid.UUID
	ClearStatusID    bool
	Terms            *string
	Notes            *string
}

// AvailabilityQuery describes a prospective booking to check against
// existing contracts.
type AvailabilityQuery struct {
	VehicleID uuid.UUID
	DriverID  uuid.UUID
	Start     time.Time
	End       *time.Time
	ExcludeID uuid.UUID
}

type ContractFilter struct {
	DriverID  *uuid.UUID
	VehicleID *uuid.UUID
	Status    *ContractStatus
}

type Balance struct {
	ContractID uuid.UUID
	TotalValue decimal.Decimal
	TotalPaid  decimal.Decimal
	Penalties  decimal.Decimal
	Balance    decimal.Decimal
}
