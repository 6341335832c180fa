package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/rental-contracts/internal/model"
)

// LedgerService records payments against contracts and drivers and
// aggregates what has been paid.
type LedgerService struct {
	payments  PaymentStore
	contracts ContractStore
	directory Directory
	now       func() time.Time
}

func NewLedgerService(payments PaymentStore, contracts ContractStore, directory Directory) *LedgerService {
	return &LedgerService{
		payments:  payments,
		contracts: contracts,
		directory: directory,
		now:       time.Now,
	}
}

type RecordPaymentInput struct {
	ContractID  *uuid.UUID
	DriverID    uuid.UUID
	Amount      decimal.Decimal
	Type        string
	Method      string
	Status      string
	Date        string
	DueDate     string
	Description string
	Reference   string
	Principal   model.Principal
}

func (s *LedgerService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*model.Payment, error) {
	if input.Principal.IsDriver() {
		return nil, ErrPermissionDenied
	}

	payment := &model.Payment{
		ID:          uuid.New(),
		ContractID:  input.ContractID,
		DriverID:    input.DriverID,
		Amount:      input.Amount,
		Type:        model.PaymentType(strings.ToLower(strings.TrimSpace(input.Type))),
		Method:      strings.TrimSpace(input.Method),
		Status:      model.PaymentStatusPending,
		Date:        s.now().UTC(),
		Description: input.Description,
		Reference:   input.Reference,
	}

	if strings.TrimSpace(input.Status) != "" {
		status, ok := model.ParsePaymentStatus(input.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, input.Status)
		}
		payment.Status = status
	}
	if strings.TrimSpace(input.Date) != "" {
		date, err := parseTimestamp(input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payment date", ErrInvalidInput)
		}
		payment.Date = date
	}
	if strings.TrimSpace(input.DueDate) != "" {
		due, err := parseDate(input.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date", ErrInvalidInput)
		}
		payment.DueDate = &due
	}
	if !payment.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	if !payment.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, input.Type)
	}

	if payment.ContractID != nil {
		contract, err := s.contracts.GetContract(ctx, *payment.ContractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContractNotFound
			}
			return nil, err
		}
		if payment.DriverID == uuid.Nil {
			payment.DriverID = contract.DriverID
		}
		if payment.DriverID != contract.DriverID {
			return nil, fmt.Errorf("%w: payment driver does not match the contract driver", ErrInvalidInput)
		}
	}
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	if _, err := s.directory.GetDriver(ctx, payment.DriverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *LedgerService) List(ctx context.Context, filter model.PaymentFilter) ([]model.Payment, error) {
	return s.payments.ListPayments(ctx, filter)
}

// UpdateStatus moves a payment between pending, completed and cancelled.
// Cancelled payments stay cancelled.
func (s *LedgerService) UpdateStatus(ctx context.Context, id uuid.UUID, raw string, principal model.Principal) (*model.Payment, error) {
	if principal.IsDriver() {
		return nil, ErrPermissionDenied
	}
	status, ok := model.ParsePaymentStatus(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, raw)
	}

	payment, err := s.payments.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status == model.PaymentStatusCancelled && status != model.PaymentStatusCancelled {
		return nil, fmt.Errorf("%w: cancelled payments cannot be reopened", ErrInvalidInput)
	}

	if err := s.payments.UpdatePaymentStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	payment.Status = status
	return payment, nil
}

func (s *LedgerService) Balance(ctx context.Context, contractID uuid.UUID) (*model.Balance, error) {
	contract, err := s.contracts.GetContract(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	balance := AggregateBalance(*contract, contract.Payments, s.now())
	return &balance, nil
}

// AggregateBalance sums the ledger of one contract. Completed payments and
// deposits count as paid, completed refunds are taken back out, and
// non-cancelled penalties are added to what is owed.
func AggregateBalance(contract model.Contract, payments []model.Payment, asOf time.Time) model.Balance {
	paid := decimal.Zero
	penalties := decimal.Zero
	for _, p := range payments {
		switch p.Type {
		case model.PaymentTypePayment, model.PaymentTypeDeposit:
			if p.Status == model.PaymentStatusCompleted {
				paid = paid.Add(p.Amount)
			}
		case model.PaymentTypeRefund:
			if p.Status == model.PaymentStatusCompleted {
				paid = paid.Sub(p.Amount)
			}
		case model.PaymentTypePenalty:
			if p.Status != model.PaymentStatusCancelled {
				penalties = penalties.Add(p.Amount)
			}
		}
	}

	value := ContractValue(contract, asOf)
	return model.Balance{
		ContractID: contract.ID,
		TotalValue: value,
		TotalPaid:  paid,
		Penalties:  penalties,
		Balance:    value.Add(penalties).Sub(paid),
	}
}

// ContractValue is the explicit total when one was agreed, otherwise the
// periodic price times the billed duration. Open-ended contracts are valued
// up to asOf.
func ContractValue(contract model.Contract, asOf time.Time) decimal.Decimal {
	if contract.TotalAmount.Valid {
		return contract.TotalAmount.Decimal
	}

	end := dateOnly(asOf)
	if contract.EndDate != nil {
		end = *contract.EndDate
	}

	switch contract.Type {
	case model.ContractTypeDaily:
		price := firstValid(contract.DailyPrice, contract.BasePrice)
		return price.Mul(decimal.NewFromInt(billableDays(contract.StartDate, end)))
	case model.ContractTypeMonthly:
		price := firstValid(contract.MonthlyPrice, contract.BasePrice)
		return price.Mul(decimal.NewFromInt(billableMonths(contract.StartDate, end)))
	}
	return firstValid(contract.BasePrice)
}

const secondsPerDay = 24 * 60 * 60

// billableDays counts calendar days in [start, end].
func billableDays(start, end time.Time) int64 {
	from, to := dateOnly(start), dateOnly(end)
	if to.Before(from) {
		return 0
	}
	return (to.Unix()-from.Unix())/secondsPerDay + 1
}

// billableMonths counts monthly periods starting on or before end; a started
// month is billed in full.
func billableMonths(start, end time.Time) int64 {
	var months int64
	for cursor := start; !cursor.After(end); cursor = start.AddDate(0, int(months), 0) {
		months++
	}
	return months
}

func firstValid(values ...decimal.NullDecimal) decimal.Decimal {
	for _, v := range values {
		if v.Valid {
			return v.Decimal
		}
	}
	return decimal.Zero
}

func newDepositPayment(contract *model.Contract, now time.Time) *model.Payment {
	contractID := contract.ID
	return &model.Payment{
		ID:          uuid.New(),
		ContractID:  &contractID,
		DriverID:    contract.DriverID,
		Amount:      contract.Deposit.Decimal,
		Type:        model.PaymentTypeDeposit,
		Status:      model.PaymentStatusPending,
		Date:        now.UTC(),
		Description: "Deposit",
	}
}

func newPenaltyPayment(contract *model.Contract, amount decimal.Decimal, daysLate int, now time.Time) *model.Payment {
	contractID := contract.ID
	return &model.Payment{
		ID:          uuid.New(),
		ContractID:  &contractID,
		DriverID:    contract.DriverID,
		Amount:      amount,
		Type:        model.PaymentTypePenalty,
		Status:      model.PaymentStatusPending,
		Date:        now.UTC(),
		Description: fmt.Sprintf("Late payment penalty, %d days late", daysLate),
	}
}

func validatePayment(payment *model.Payment) error {
	if payment.DriverID == uuid.Nil {
		return fmt.Errorf("%w: driver is required", ErrInvalidInput)
	}
	if !payment.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	if !payment.Type.Valid() {
		return fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, payment.Type)
	}
	return nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC(), nil
	}
	return parseDate(raw)
}
