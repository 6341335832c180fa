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

	"github.com/nurpe/rental-contracts/internal/config"
	"github.com/nurpe/rental-contracts/internal/model"
	"github.com/nurpe/rental-contracts/internal/repository"
)

const defaultExpiringWithinDays = 30

type ContractService struct {
	contracts    ContractStore
	payments     PaymentStore
	directory    Directory
	documents    DocumentRenderer
	sheets       SheetRenderer
	availability *AvailabilityChecker
	expiringDays int
	now          func() time.Time
}

func NewContractService(
	contracts ContractStore,
	payments PaymentStore,
	directory Directory,
	documents DocumentRenderer,
	sheets SheetRenderer,
	cfg *config.Config,
) *ContractService {
	expiringDays := defaultExpiringWithinDays
	if cfg != nil && cfg.Contracts.ExpiringWithinDays > 0 {
		expiringDays = cfg.Contracts.ExpiringWithinDays
	}
	return &ContractService{
		contracts:    contracts,
		payments:     payments,
		directory:    directory,
		documents:    documents,
		sheets:       sheets,
		availability: NewAvailabilityChecker(contracts),
		expiringDays: expiringDays,
		now:          time.Now,
	}
}

type CreateContractInput struct {
	DriverID         uuid.UUID
	VehicleID        uuid.UUID
	StartDate        string
	EndDate          *string
	Type             string
	BasePrice        *decimal.Decimal
	DailyPrice       *decimal.Decimal
	MonthlyPrice     *decimal.Decimal
	TotalAmount      *decimal.Decimal
	Deposit          *decimal.Decimal
	PenaltyRate      *decimal.Decimal
	AllowedDelayDays *int
	AutomaticRenewal bool
	StatusID         *uuid.UUID
	Terms            string
	Notes            string
	Principal        model.Principal
}

// UpdateContractInput holds a partial update. Nil fields are left as they
// are; an empty EndDate makes the contract open-ended.
type UpdateContractInput struct {
	StartDate        *string
	EndDate          *string
	Type             *string
	BasePrice        *decimal.Decimal
	DailyPrice       *decimal.Decimal
	MonthlyPrice     *decimal.Decimal
	TotalAmount      *decimal.Decimal
	Deposit          *decimal.Decimal
	PenaltyRate      *decimal.Decimal
	AllowedDelayDays *int
	AutomaticRenewal *bool
	Status           *string
	StatusID         *uuid.UUID
	Terms            *string
	Notes            *string
	Principal        model.Principal
}

type PenaltyInput struct {
	Base             *decimal.Decimal
	PenaltyRate      *decimal.Decimal
	DaysLate         int
	AllowedDelayDays *int
	Record           bool
	Principal        model.Principal
}

type PenaltyResult struct {
	Penalty decimal.Decimal
	Payment *model.Payment
}

type DocumentResult struct {
	FileName string
	Content  []byte
}

// Create books a vehicle and driver for a date range. The contract and its
// deposit are written in one transaction that holds the scheduling locks
// for both parties.
func (s *ContractService) Create(ctx context.Context, input CreateContractInput) (*model.Contract, error) {
	if !input.Principal.CanManageContracts() {
		return nil, ErrPermissionDenied
	}

	start, end, err := parseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if input.DriverID == uuid.Nil {
		return nil, fmt.Errorf("%w: driverId is required", ErrInvalidInput)
	}
	if input.VehicleID == uuid.Nil {
		return nil, fmt.Errorf("%w: vehicleId is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	contract := &model.Contract{
		ID:               uuid.New(),
		DriverID:         input.DriverID,
		VehicleID:        input.VehicleID,
		StartDate:        start,
		EndDate:          end,
		Type:             model.ContractType(strings.ToUpper(strings.TrimSpace(input.Type))),
		BasePrice:        nullDecimal(input.BasePrice),
		DailyPrice:       nullDecimal(input.DailyPrice),
		MonthlyPrice:     nullDecimal(input.MonthlyPrice),
		TotalAmount:      nullDecimal(input.TotalAmount),
		Deposit:          nullDecimal(input.Deposit),
		PenaltyRate:      decimal.Zero,
		AutomaticRenewal: input.AutomaticRenewal,
		Status:           model.ContractStatusActive,
		Terms:            input.Terms,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if input.PenaltyRate != nil {
		contract.PenaltyRate = *input.PenaltyRate
	}
	if input.AllowedDelayDays != nil {
		contract.AllowedDelayDays = *input.AllowedDelayDays
	}
	if input.Principal.UserID != uuid.Nil {
		createdBy := input.Principal.UserID
		contract.CreatedBy = &createdBy
	}
	if contract.Type == "" {
		contract.Type = inferContractType(contract)
	}
	if err := validateTerms(contract); err != nil {
		return nil, err
	}

	if input.StatusID != nil {
		status, err := s.resolveStatus(ctx, *input.StatusID)
		if err != nil {
			return nil, err
		}
		if status != model.ContractStatusActive {
			return nil, fmt.Errorf("%w: new contracts must start as %s", ErrInvalidInput, model.ContractStatusActive)
		}
		statusID := *input.StatusID
		contract.StatusID = &statusID
	}

	if _, err := s.directory.GetDriver(ctx, input.DriverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}
	vehicle, err := s.directory.GetVehicle(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	if err := ensureVehicleEligible(vehicle); err != nil {
		return nil, err
	}

	tx, err := s.contracts.BeginBooking(ctx, contract.VehicleID, contract.DriverID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := ensureAvailable(ctx, tx, model.AvailabilityQuery{
		VehicleID: contract.VehicleID,
		DriverID:  contract.DriverID,
		Start:     contract.StartDate,
		End:       contract.EndDate,
	}); err != nil {
		return nil, err
	}
	if err := tx.CreateContract(ctx, contract); err != nil {
		return nil, contractError(err)
	}
	if contract.Deposit.Valid && contract.Deposit.Decimal.IsPositive() {
		if err := tx.CreatePayment(ctx, newDepositPayment(contract, now)); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, contractError(err)
	}

	return s.Get(ctx, contract.ID)
}

// Update merges a partial change into a contract. Moving the dates, or
// reactivating the contract, re-checks availability under the scheduling
// locks.
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, input UpdateContractInput) (*model.Contract, error) {
	if !input.Principal.CanManageContracts() {
		return nil, ErrPermissionDenied
	}

	current, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		return nil, contractError(err)
	}

	patch, err := s.buildPatch(ctx, current, input)
	if err != nil {
		return nil, err
	}
	merged := applyPatch(*current, patch)
	if merged.EndDate != nil && merged.EndDate.Before(merged.StartDate) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", ErrInvalidDateRange,
			merged.EndDate.Format(time.DateOnly), merged.StartDate.Format(time.DateOnly))
	}
	if err := validateTerms(&merged); err != nil {
		return nil, err
	}

	datesChanged := !merged.StartDate.Equal(current.StartDate) || !sameDay(merged.EndDate, current.EndDate)
	reactivated := merged.Status == model.ContractStatusActive && current.Status != model.ContractStatusActive
	recheck := merged.Status.Blocks() && (datesChanged || reactivated)

	tx, err := s.contracts.BeginBooking(ctx, current.VehicleID, current.DriverID)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if recheck {
		if err := ensureAvailable(ctx, tx, model.AvailabilityQuery{
			VehicleID: merged.VehicleID,
			DriverID:  merged.DriverID,
			Start:     merged.StartDate,
			End:       merged.EndDate,
			ExcludeID: merged.ID,
		}); err != nil {
			return nil, err
		}
	}
	if err := tx.UpdateContract(ctx, id, patch); err != nil {
		return nil, contractError(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, contractError(err)
	}

	return s.Get(ctx, id)
}

// Delete removes the contract and every payment linked to it.
func (s *ContractService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanManageContracts() {
		return ErrPermissionDenied
	}
	if err := s.contracts.DeleteContract(ctx, id); err != nil {
		return contractError(err)
	}
	return nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		return nil, contractError(err)
	}
	return contract, nil
}

func (s *ContractService) List(ctx context.Context, filter model.ContractFilter) ([]model.Contract, error) {
	return s.contracts.ListContracts(ctx, filter)
}

func (s *ContractService) ByDriver(ctx context.Context, driverID uuid.UUID) ([]model.Contract, error) {
	return s.contracts.ListContracts(ctx, model.ContractFilter{DriverID: &driverID})
}

func (s *ContractService) ByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]model.Contract, error) {
	return s.contracts.ListContracts(ctx, model.ContractFilter{VehicleID: &vehicleID})
}

func (s *ContractService) ByStatus(ctx context.Context, raw string) ([]model.Contract, error) {
	status, ok := model.ParseContractStatus(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown contract status %q", ErrInvalidInput, raw)
	}
	return s.contracts.ListContracts(ctx, model.ContractFilter{Status: &status})
}

// Active lists ACTIVE contracts whose range covers today.
func (s *ContractService) Active(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.ListActive(ctx, s.today())
}

// Expiring lists ACTIVE contracts ending within the next days. Zero uses
// the configured window.
func (s *ContractService) Expiring(ctx context.Context, days int) ([]model.Contract, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}
	if days == 0 {
		days = s.expiringDays
	}
	today := s.today()
	return s.contracts.ListExpiring(ctx, today, today.AddDate(0, 0, days))
}

func (s *ContractService) Search(ctx context.Context, term string) ([]model.Contract, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}
	return s.contracts.SearchContracts(ctx, term)
}

func (s *ContractService) Stats(ctx context.Context) (*model.ContractStats, error) {
	counts, err := s.contracts.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()
	active, err := s.contracts.ListActive(ctx, today)
	if err != nil {
		return nil, err
	}
	expiring, err := s.contracts.ListExpiring(ctx, today, today.AddDate(0, 0, s.expiringDays))
	if err != nil {
		return nil, err
	}
	collected, err := s.payments.SumCollected(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.ContractStats{
		ByStatus:       counts,
		ActiveToday:    int64(len(active)),
		ExpiringSoon:   int64(len(expiring)),
		ExpiringWithin: s.expiringDays,
		CollectedTotal: collected,
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// CalculatePenalty prices a late payment on a contract. Omitted terms fall
// back to the contract's own. With Record set a positive penalty is also
// booked as a pending penalty payment.
func (s *ContractService) CalculatePenalty(ctx context.Context, id uuid.UUID, input PenaltyInput) (*PenaltyResult, error) {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		return nil, contractError(err)
	}

	base := penaltyBase(contract)
	if input.Base != nil {
		base = *input.Base
	}
	rate := contract.PenaltyRate
	if input.PenaltyRate != nil {
		rate = *input.PenaltyRate
	}
	allowed := contract.AllowedDelayDays
	if input.AllowedDelayDays != nil {
		allowed = *input.AllowedDelayDays
	}

	penalty, err := CalculatePenalty(base, rate, input.DaysLate, allowed)
	if err != nil {
		return nil, err
	}
	result := &PenaltyResult{Penalty: penalty}
	if !input.Record || !penalty.IsPositive() {
		return result, nil
	}

	if !input.Principal.CanManageContracts() {
		return nil, ErrPermissionDenied
	}
	payment := newPenaltyPayment(contract, penalty, input.DaysLate, s.now())
	if err := s.payments.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	result.Payment = payment
	return result, nil
}

func (s *ContractService) Document(ctx context.Context, id uuid.UUID) (*DocumentResult, error) {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		return nil, contractError(err)
	}

	now := s.now()
	content, err := s.documents.Generate(model.ContractDocument{
		Contract:    *contract,
		Balance:     AggregateBalance(*contract, contract.Payments, now),
		GeneratedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering contract document: %w", err)
	}

	label := contract.ID.String()[:8]
	if contract.Vehicle != nil && contract.Vehicle.Plate != "" {
		label = sanitizeFileName(contract.Vehicle.Plate)
	}
	return &DocumentResult{
		FileName: fmt.Sprintf("contract_%s_%s.pdf", label, contract.StartDate.Format(time.DateOnly)),
		Content:  content,
	}, nil
}

// Export renders the filtered contracts with their balances as a workbook.
func (s *ContractService) Export(ctx context.Context, filter model.ContractFilter) (*DocumentResult, error) {
	contracts, err := s.contracts.ListContracts(ctx, filter)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListPayments(ctx, model.PaymentFilter{DriverID: filter.DriverID})
	if err != nil {
		return nil, err
	}
	byContract := make(map[uuid.UUID][]model.Payment)
	for _, p := range payments {
		if p.ContractID != nil {
			byContract[*p.ContractID] = append(byContract[*p.ContractID], p)
		}
	}

	now := s.now()
	sheet := model.ContractSheet{GeneratedAt: now}
	for _, c := range contracts {
		sheet.Rows = append(sheet.Rows, model.ContractSheetRow{
			Contract: c,
			Balance:  AggregateBalance(c, byContract[c.ID], now),
		})
	}

	content, err := s.sheets.Generate(sheet)
	if err != nil {
		return nil, fmt.Errorf("rendering contracts workbook: %w", err)
	}
	return &DocumentResult{
		FileName: fmt.Sprintf("contracts_%s.xlsx", now.Format(time.DateOnly)),
		Content:  content,
	}, nil
}

// ExpireOverdue marks ACTIVE contracts that ended before today as EXPIRED.
func (s *ContractService) ExpireOverdue(ctx context.Context) (int64, error) {
	return s.contracts.ExpireContracts(ctx, s.today())
}

func (s *ContractService) today() time.Time {
	return dateOnly(s.now())
}

func (s *ContractService) buildPatch(ctx context.Context, current *model.Contract, input UpdateContractInput) (model.ContractPatch, error) {
	var patch model.ContractPatch

	if input.StartDate != nil {
		start, err := parseDate(*input.StartDate)
		if err != nil {
			return patch, fmt.Errorf("%w: start date %q is malformed", ErrInvalidDateRange, *input.StartDate)
		}
		patch.StartDate = &start
	}
	if input.EndDate != nil {
		if strings.TrimSpace(*input.EndDate) == "" {
			patch.ClearEndDate = true
		} else {
			end, err := parseDate(*input.EndDate)
			if err != nil {
				return patch, fmt.Errorf("%w: end date %q is malformed", ErrInvalidDateRange, *input.EndDate)
			}
			patch.EndDate = &end
		}
	}
	if input.Type != nil {
		contractType := model.ContractType(strings.ToUpper(strings.TrimSpace(*input.Type)))
		patch.Type = &contractType
	}

	patch.BasePrice = input.BasePrice
	patch.DailyPrice = input.DailyPrice
	patch.MonthlyPrice = input.MonthlyPrice
	patch.TotalAmount = input.TotalAmount
	patch.Deposit = input.Deposit
	patch.PenaltyRate = input.PenaltyRate
	patch.AllowedDelayDays = input.AllowedDelayDays
	patch.AutomaticRenewal = input.AutomaticRenewal
	patch.Terms = input.Terms
	patch.Notes = input.Notes

	var next *model.ContractStatus
	switch {
	case input.StatusID != nil:
		status, err := s.resolveStatus(ctx, *input.StatusID)
		if err != nil {
			return patch, err
		}
		statusID := *input.StatusID
		patch.StatusID = &statusID
		next = &status
	case input.Status != nil:
		status, ok := model.ParseContractStatus(*input.Status)
		if !ok {
			return patch, fmt.Errorf("%w: unknown contract status %q", ErrInvalidInput, *input.Status)
		}
		if status != current.Status {
			patch.ClearStatusID = current.StatusID != nil
		}
		next = &status
	}
	if next != nil {
		if !current.Status.CanTransition(*next) {
			return patch, fmt.Errorf("%w: cannot move contract from %s to %s", ErrInvalidInput, current.Status, *next)
		}
		patch.Status = next
	}
	return patch, nil
}

// resolveStatus maps a lookup row onto the contract status enum.
func (s *ContractService) resolveStatus(ctx context.Context, id uuid.UUID) (model.ContractStatus, error) {
	lookup, err := s.directory.GetStatus(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: unknown statusId %s", ErrInvalidInput, id)
		}
		return "", err
	}
	if lookup.Module != model.StatusModuleContract {
		return "", fmt.Errorf("%w: status %q belongs to module %s", ErrInvalidInput, lookup.Name, lookup.Module)
	}
	status, ok := model.ParseContractStatus(lookup.Name)
	if !ok {
		return "", fmt.Errorf("%w: status %q is not a contract status", ErrInvalidInput, lookup.Name)
	}
	return status, nil
}

// ensureVehicleEligible accepts vehicles without a status and vehicles
// whose status reads as available.
func ensureVehicleEligible(vehicle *model.VehicleSummary) error {
	if vehicle.StatusID == nil {
		return nil
	}
	if vehicle.Status != model.VehicleStatusAvailable {
		return ErrVehicleUnavailable
	}
	return nil
}

func validateTerms(contract *model.Contract) error {
	if !contract.Type.Valid() {
		return fmt.Errorf("%w: unknown contract type %q", ErrInvalidInput, contract.Type)
	}
	for name, price := range map[string]decimal.NullDecimal{
		"basePrice":    contract.BasePrice,
		"dailyPrice":   contract.DailyPrice,
		"monthlyPrice": contract.MonthlyPrice,
		"totalAmount":  contract.TotalAmount,
		"deposit":      contract.Deposit,
	} {
		if price.Valid && price.Decimal.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
		}
	}

	priced := contract.TotalAmount.Valid || contract.BasePrice.Valid
	switch contract.Type {
	case model.ContractTypeDaily:
		priced = priced || contract.DailyPrice.Valid
	case model.ContractTypeMonthly:
		priced = priced || contract.MonthlyPrice.Valid
	}
	if !priced {
		return fmt.Errorf("%w: a price is required for %s contracts", ErrInvalidInput, contract.Type)
	}

	if err := validatePenaltyRate(contract.PenaltyRate); err != nil {
		return err
	}
	if contract.AllowedDelayDays < 0 {
		return fmt.Errorf("%w: allowedDelayDays must not be negative", ErrInvalidInput)
	}
	return nil
}

func inferContractType(contract *model.Contract) model.ContractType {
	switch {
	case contract.DailyPrice.Valid:
		return model.ContractTypeDaily
	case contract.MonthlyPrice.Valid:
		return model.ContractTypeMonthly
	}
	return model.ContractTypeCustom
}

func penaltyBase(contract *model.Contract) decimal.Decimal {
	switch contract.Type {
	case model.ContractTypeDaily:
		return firstValid(contract.DailyPrice, contract.BasePrice)
	case model.ContractTypeMonthly:
		return firstValid(contract.MonthlyPrice, contract.BasePrice)
	}
	return firstValid(contract.BasePrice, contract.TotalAmount)
}

func applyPatch(contract model.Contract, patch model.ContractPatch) model.Contract {
	if patch.StartDate != nil {
		contract.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		end := *patch.EndDate
		contract.EndDate = &end
	} else if patch.ClearEndDate {
		contract.EndDate = nil
	}
	if patch.Type != nil {
		contract.Type = *patch.Type
	}
	if patch.BasePrice != nil {
		contract.BasePrice = decimal.NewNullDecimal(*patch.BasePrice)
	}
	if patch.DailyPrice != nil {
		contract.DailyPrice = decimal.NewNullDecimal(*patch.DailyPrice)
	}
	if patch.MonthlyPrice != nil {
		contract.MonthlyPrice = decimal.NewNullDecimal(*patch.MonthlyPrice)
	}
	if patch.TotalAmount != nil {
		contract.TotalAmount = decimal.NewNullDecimal(*patch.TotalAmount)
	}
	if patch.Deposit != nil {
		contract.Deposit = decimal.NewNullDecimal(*patch.Deposit)
	}
	if patch.PenaltyRate != nil {
		contract.PenaltyRate = *patch.PenaltyRate
	}
	if patch.AllowedDelayDays != nil {
		contract.AllowedDelayDays = *patch.AllowedDelayDays
	}
	if patch.AutomaticRenewal != nil {
		contract.AutomaticRenewal = *patch.AutomaticRenewal
	}
	if patch.Status != nil {
		contract.Status = *patch.Status
	}
	return contract
}

func contractError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrContractNotFound
	case errors.Is(err, repository.ErrRangeConflict):
		return ErrSchedulingConflict
	}
	return err
}

func nullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*value)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
