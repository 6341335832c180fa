package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypePayment PaymentType = "payment"
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypePenalty PaymentType = "penalty"
	PaymentTypeRefund  PaymentType = "refund"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypePayment, PaymentTypeDeposit, PaymentTypePenalty, PaymentTypeRefund:
		return true
	}
	return false
}

type Payment struct {
	ID          uuid.UUID
	ContractID  *uuid.UUID // nil for ad-hoc driver charges
	DriverID    uuid.UUID
	Amount      decimal.Decimal
	Type        PaymentType
	Method      string
	Status      PaymentStatus
	Date        time.Time
	DueDate     *time.Time
	Description string
	Reference   string
	CreatedAt   time.Time
}

func (Payment) TableName() string {
	return "payments"
}

type PaymentFilter struct {
	ContractID *uuid.UUID
	DriverID   *uuid.UUID
	Status     *PaymentStatus
}
