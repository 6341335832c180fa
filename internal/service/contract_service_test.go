package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/nurpe/rental-contracts/internal/config"
	"github.com/nurpe/rental-contracts/internal/model"
	"github.com/nurpe/rental-contracts/internal/repository"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	contracts *MockContractStore
	payments  *MockPaymentStore
	directory *MockDirectory
	documents *MockDocumentRenderer
	sheets    *MockSheetRenderer
	tx        *MockBookingTx
	svc       *ContractService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		contracts: NewMockContractStore(ctrl),
		payments:  NewMockPaymentStore(ctrl),
		directory: NewMockDirectory(ctrl),
		documents: NewMockDocumentRenderer(ctrl),
		sheets:    NewMockSheetRenderer(ctrl),
		tx:        NewMockBookingTx(ctrl),
	}
	cfg := &config.Config{Contracts: config.ContractsConfig{ExpiringWithinDays: 14}}
	f.svc = NewContractService(f.contracts, f.payments, f.directory, f.documents, f.sheets, cfg)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func operator() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.UserRoleOperator}
}

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func createInput(driverID, vehicleID uuid.UUID) CreateContractInput {
	return CreateContractInput{
		DriverID:    driverID,
		VehicleID:   vehicleID,
		StartDate:   "2024-01-01",
		EndDate:     ptr("2024-01-31"),
		Type:        "daily",
		DailyPrice:  dec("50"),
		Deposit:     dec("300"),
		PenaltyRate: dec("0.01"),
		Principal:   operator(),
	}
}

func (f *serviceFixture) expectParties(driverID, vehicleID uuid.UUID) {
	f.directory.EXPECT().GetDriver(gomock.Any(), driverID).
		Return(&model.DriverSummary{ID: driverID, FirstName: "Ana"}, nil)
	f.directory.EXPECT().GetVehicle(gomock.Any(), vehicleID).
		Return(&model.VehicleSummary{ID: vehicleID, Plate: "ABC-123"}, nil)
}

func TestCreateRejectsInvertedRangeBeforeAnyLookup(t *testing.T) {
	f := newServiceFixture(t)

	input := createInput(uuid.New(), uuid.New())
	input.StartDate = "2024-02-01"
	input.EndDate = ptr("2024-01-15")

	_, err := f.svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidDateRange)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRejectsMalformedStartDate(t *testing.T) {
	f := newServiceFixture(t)

	input := createInput(uuid.New(), uuid.New())
	input.StartDate = "01/02/2024"

	_, err := f.svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateRequiresContractManager(t *testing.T) {
	f := newServiceFixture(t)

	input := createInput(uuid.New(), uuid.New())
	input.Principal = model.Principal{UserID: uuid.New(), Role: model.UserRoleDriver}

	_, err := f.svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateDriverNotFound(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()

	f.directory.EXPECT().GetDriver(gomock.Any(), driverID).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Create(context.Background(), createInput(driverID, vehicleID))
	require.ErrorIs(t, err, ErrDriverNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVehicleNotFound(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()

	f.directory.EXPECT().GetDriver(gomock.Any(), driverID).Return(&model.DriverSummary{ID: driverID}, nil)
	f.directory.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Create(context.Background(), createInput(driverID, vehicleID))
	require.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestCreateVehicleInMaintenanceWritesNothing(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	statusID := uuid.New()

	f.directory.EXPECT().GetDriver(gomock.Any(), driverID).Return(&model.DriverSummary{ID: driverID}, nil)
	f.directory.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&model.VehicleSummary{
		ID:         vehicleID,
		StatusID:   &statusID,
		StatusName: "En Mantenimiento",
		Status:     model.ParseVehicleStatus("En Mantenimiento"),
	}, nil)

	_, err := f.svc.Create(context.Background(), createInput(driverID, vehicleID))
	require.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestCreateVehicleWithUnresolvedStatusIsUnavailable(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	statusID := uuid.New()

	f.directory.EXPECT().GetDriver(gomock.Any(), driverID).Return(&model.DriverSummary{ID: driverID}, nil)
	f.directory.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&model.VehicleSummary{
		ID:       vehicleID,
		StatusID: &statusID,
		Status:   model.VehicleStatusUnknown,
	}, nil)

	_, err := f.svc.Create(context.Background(), createInput(driverID, vehicleID))
	require.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestCreateSchedulingConflictWritesNothing(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()

	f.expectParties(driverID, vehicleID)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), vehicleID, driverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q model.AvailabilityQuery) (bool, error) {
			assert.Equal(t, vehicleID, q.VehicleID)
			assert.Equal(t, driverID, q.DriverID)
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), q.Start)
			require.NotNil(t, q.End)
			assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *q.End)
			return true, nil
		})
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Create(context.Background(), createInput(driverID, vehicleID))
	require.ErrorIs(t, err, ErrSchedulingConflict)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateRollsBackWhenDepositInsertFails(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()

	f.expectParties(driverID, vehicleID)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), vehicleID, driverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(false, nil)
	f.tx.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(errors.New("check constraint violated"))
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Create(context.Background(), createInput(driverID, vehicleID))
	require.Error(t, err)
}

func TestCreateWithDepositRecordsOnePendingDeposit(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	input := createInput(driverID, vehicleID)

	var created *model.Contract
	var deposits []*model.Payment

	f.expectParties(driverID, vehicleID)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), vehicleID, driverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(false, nil)
	f.tx.EXPECT().CreateContract(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *model.Contract) error {
			created = c
			return nil
		})
	f.tx.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *model.Payment) error {
			deposits = append(deposits, p)
			return nil
		})
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)
	f.contracts.EXPECT().GetContract(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*model.Contract, error) {
			require.Equal(t, created.ID, id)
			return created, nil
		})

	contract, err := f.svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, model.ContractStatusActive, contract.Status)
	assert.Equal(t, model.ContractTypeDaily, contract.Type)
	require.NotNil(t, contract.CreatedBy)
	assert.Equal(t, input.Principal.UserID, *contract.CreatedBy)

	require.Len(t, deposits, 1)
	deposit := deposits[0]
	assert.Equal(t, model.PaymentTypeDeposit, deposit.Type)
	assert.Equal(t, model.PaymentStatusPending, deposit.Status)
	assert.True(t, decimal.NewFromInt(300).Equal(deposit.Amount))
	require.NotNil(t, deposit.ContractID)
	assert.Equal(t, contract.ID, *deposit.ContractID)
	assert.Equal(t, driverID, deposit.DriverID)
	assert.Equal(t, fixedNow, deposit.Date)
}

func TestCreateChecksAvailabilityInsideBooking(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	input := createInput(driverID, vehicleID)
	input.Deposit = dec("0")

	f.expectParties(driverID, vehicleID)
	gomock.InOrder(
		f.contracts.EXPECT().BeginBooking(gomock.Any(), vehicleID, driverID).Return(f.tx, nil),
		f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(false, nil),
		f.tx.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil),
		f.tx.EXPECT().Commit().Return(nil),
		f.tx.EXPECT().Rollback().Return(nil),
	)
	f.contracts.EXPECT().GetContract(gomock.Any(), gomock.Any()).Return(&model.Contract{}, nil)

	_, err := f.svc.Create(context.Background(), input)
	require.NoError(t, err)
}

func TestCreateWithoutDepositSkipsPayment(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()
	input := createInput(driverID, vehicleID)
	input.Deposit = dec("0")

	f.expectParties(driverID, vehicleID)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), vehicleID, driverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(false, nil)
	f.tx.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)
	f.contracts.EXPECT().GetContract(gomock.Any(), gomock.Any()).Return(&model.Contract{}, nil)

	_, err := f.svc.Create(context.Background(), input)
	require.NoError(t, err)
}

func TestCreateMapsRangeConstraintToSchedulingConflict(t *testing.T) {
	f := newServiceFixture(t)
	driverID, vehicleID := uuid.New(), uuid.New()

	f.expectParties(driverID, vehicleID)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), vehicleID, driverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(false, nil)
	f.tx.EXPECT().CreateContract(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("inserting contract: %w", repository.ErrRangeConflict))
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Create(context.Background(), createInput(driverID, vehicleID))
	require.ErrorIs(t, err, ErrSchedulingConflict)
}

func TestCreateValidatesTerms(t *testing.T) {
	cases := map[string]func(*CreateContractInput){
		"unknown type":     func(in *CreateContractInput) { in.Type = "weekly" },
		"missing price":    func(in *CreateContractInput) { in.DailyPrice = nil },
		"negative deposit": func(in *CreateContractInput) { in.Deposit = dec("-1") },
		"rate above one":   func(in *CreateContractInput) { in.PenaltyRate = dec("1.2") },
		"negative grace":   func(in *CreateContractInput) { in.AllowedDelayDays = ptr(-2) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newServiceFixture(t)
			input := createInput(uuid.New(), uuid.New())
			mutate(&input)

			_, err := f.svc.Create(context.Background(), input)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateRejectsNonActiveStatusLookup(t *testing.T) {
	f := newServiceFixture(t)
	statusID := uuid.New()
	input := createInput(uuid.New(), uuid.New())
	input.StatusID = &statusID

	f.directory.EXPECT().GetStatus(gomock.Any(), statusID).
		Return(&model.Status{ID: statusID, Name: "Vencido", Module: model.StatusModuleContract}, nil)

	_, err := f.svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRejectsStatusFromAnotherModule(t *testing.T) {
	f := newServiceFixture(t)
	statusID := uuid.New()
	input := createInput(uuid.New(), uuid.New())
	input.StatusID = &statusID

	f.directory.EXPECT().GetStatus(gomock.Any(), statusID).
		Return(&model.Status{ID: statusID, Name: "Activo", Module: model.StatusModuleDriver}, nil)

	_, err := f.svc.Create(context.Background(), input)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func existingContract() *model.Contract {
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	return &model.Contract{
		ID:          uuid.New(),
		DriverID:    uuid.New(),
		VehicleID:   uuid.New(),
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     &end,
		Type:        model.ContractTypeDaily,
		DailyPrice:  decimal.NewNullDecimal(decimal.NewFromInt(50)),
		PenaltyRate: decimal.RequireFromString("0.01"),
		Status:      model.ContractStatusActive,
	}
}

func TestUpdateReschedulingRechecksExcludingItself(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil).Times(2)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), current.VehicleID, current.DriverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q model.AvailabilityQuery) (bool, error) {
			assert.Equal(t, current.ID, q.ExcludeID)
			assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), *q.End)
			return false, nil
		})
	f.tx.EXPECT().UpdateContract(gomock.Any(), current.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, patch model.ContractPatch) error {
			require.NotNil(t, patch.EndDate)
			assert.Nil(t, patch.StartDate)
			return nil
		})
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Update(context.Background(), current.ID, UpdateContractInput{
		EndDate:   ptr("2024-02-15"),
		Principal: operator(),
	})
	require.NoError(t, err)
}

func TestUpdateReschedulingConflict(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), current.VehicleID, current.DriverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(true, nil)
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Update(context.Background(), current.ID, UpdateContractInput{
		StartDate: ptr("2023-12-20"),
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrSchedulingConflict)
}

func TestUpdateNotesSkipsAvailabilityCheck(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil).Times(2)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), current.VehicleID, current.DriverID).Return(f.tx, nil)
	f.tx.EXPECT().UpdateContract(gomock.Any(), current.ID, gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Update(context.Background(), current.ID, UpdateContractInput{
		Notes:     ptr("keys returned late"),
		Principal: operator(),
	})
	require.NoError(t, err)
}

func TestUpdateRejectsInvertedRange(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil)

	_, err := f.svc.Update(context.Background(), current.ID, UpdateContractInput{
		StartDate: ptr("2024-02-10"),
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestUpdateReactivationRechecks(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()
	current.Status = model.ContractStatusCancelled

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), current.VehicleID, current.DriverID).Return(f.tx, nil)
	f.tx.EXPECT().HasConflict(gomock.Any(), gomock.Any()).Return(true, nil)
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Update(context.Background(), current.ID, UpdateContractInput{
		Status:    ptr("Vigente"),
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrSchedulingConflict)
}

func TestUpdateRejectsInvalidTransition(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()
	current.Status = model.ContractStatusCompleted

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil)

	_, err := f.svc.Update(context.Background(), current.ID, UpdateContractInput{
		Status:    ptr("ACTIVE"),
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatusIDReplacesStatus(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()
	statusID := uuid.New()

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil).Times(2)
	f.directory.EXPECT().GetStatus(gomock.Any(), statusID).
		Return(&model.Status{ID: statusID, Name: "Completado", Module: model.StatusModuleContract}, nil)
	f.contracts.EXPECT().BeginBooking(gomock.Any(), current.VehicleID, current.DriverID).Return(f.tx, nil)
	f.tx.EXPECT().UpdateContract(gomock.Any(), current.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, patch model.ContractPatch) error {
			require.NotNil(t, patch.Status)
			assert.Equal(t, model.ContractStatusCompleted, *patch.Status)
			require.NotNil(t, patch.StatusID)
			assert.Equal(t, statusID, *patch.StatusID)
			return nil
		})
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.Update(context.Background(), current.ID, UpdateContractInput{
		StatusID:  &statusID,
		Principal: operator(),
	})
	require.NoError(t, err)
}

func TestUpdateMissingContract(t *testing.T) {
	f := newServiceFixture(t)
	id := uuid.New()

	f.contracts.EXPECT().GetContract(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Update(context.Background(), id, UpdateContractInput{Principal: operator()})
	require.ErrorIs(t, err, ErrContractNotFound)
}

func TestDeleteMissingContract(t *testing.T) {
	f := newServiceFixture(t)
	id := uuid.New()

	f.contracts.EXPECT().DeleteContract(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

	err := f.svc.Delete(context.Background(), id, operator())
	require.ErrorIs(t, err, ErrContractNotFound)
}

func TestCalculatePenaltyDefaultsToContractTerms(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()
	current.DailyPrice = decimal.NewNullDecimal(decimal.NewFromInt(1000))
	current.AllowedDelayDays = 3

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil)

	result, err := f.svc.CalculatePenalty(context.Background(), current.ID, PenaltyInput{DaysLate: 5})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(result.Penalty))
	assert.Nil(t, result.Payment)
}

func TestCalculatePenaltyRecordsPendingPenalty(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil)
	f.payments.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.svc.CalculatePenalty(context.Background(), current.ID, PenaltyInput{
		Base:             dec("1000"),
		PenaltyRate:      dec("0.01"),
		DaysLate:         5,
		AllowedDelayDays: ptr(3),
		Record:           true,
		Principal:        operator(),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Payment)
	assert.Equal(t, model.PaymentTypePenalty, result.Payment.Type)
	assert.Equal(t, model.PaymentStatusPending, result.Payment.Status)
	assert.True(t, decimal.NewFromInt(20).Equal(result.Payment.Amount))
}

func TestExpiringUsesConfiguredWindow(t *testing.T) {
	f := newServiceFixture(t)
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	f.contracts.EXPECT().ListExpiring(gomock.Any(), today, today.AddDate(0, 0, 14)).Return(nil, nil)
	_, err := f.svc.Expiring(context.Background(), 0)
	require.NoError(t, err)

	f.contracts.EXPECT().ListExpiring(gomock.Any(), today, today.AddDate(0, 0, 3)).Return(nil, nil)
	_, err = f.svc.Expiring(context.Background(), 3)
	require.NoError(t, err)

	_, err = f.svc.Expiring(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestByStatusParsesLegacyNames(t *testing.T) {
	f := newServiceFixture(t)

	f.contracts.EXPECT().ListContracts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter model.ContractFilter) ([]model.Contract, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, model.ContractStatusCancelled, *filter.Status)
			return nil, nil
		})

	_, err := f.svc.ByStatus(context.Background(), "Cancelado")
	require.NoError(t, err)

	_, err = f.svc.ByStatus(context.Background(), "bogus")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStats(t *testing.T) {
	f := newServiceFixture(t)

	f.contracts.EXPECT().CountByStatus(gomock.Any()).Return(map[model.ContractStatus]int64{
		model.ContractStatusActive:    3,
		model.ContractStatusCancelled: 1,
	}, nil)
	f.contracts.EXPECT().ListActive(gomock.Any(), gomock.Any()).Return(make([]model.Contract, 2), nil)
	f.contracts.EXPECT().ListExpiring(gomock.Any(), gomock.Any(), gomock.Any()).Return(make([]model.Contract, 1), nil)
	f.payments.EXPECT().SumCollected(gomock.Any()).Return(decimal.NewFromInt(750), nil)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.ActiveToday)
	assert.Equal(t, int64(1), stats.ExpiringSoon)
	assert.Equal(t, 14, stats.ExpiringWithin)
	assert.True(t, decimal.NewFromInt(750).Equal(stats.CollectedTotal))
}

func TestDocumentRendersWithBalance(t *testing.T) {
	f := newServiceFixture(t)
	current := existingContract()
	current.Vehicle = &model.VehicleSummary{Plate: "ABC 123"}
	current.Payments = []model.Payment{
		{Type: model.PaymentTypeDeposit, Status: model.PaymentStatusCompleted, Amount: decimal.NewFromInt(300)},
	}

	f.contracts.EXPECT().GetContract(gomock.Any(), current.ID).Return(current, nil)
	f.documents.EXPECT().Generate(gomock.Any()).DoAndReturn(
		func(doc model.ContractDocument) ([]byte, error) {
			assert.True(t, decimal.NewFromInt(1550).Equal(doc.Balance.TotalValue))
			assert.True(t, decimal.NewFromInt(1250).Equal(doc.Balance.Balance))
			return []byte("%PDF"), nil
		})

	result, err := f.svc.Document(context.Background(), current.ID)
	require.NoError(t, err)
	assert.Equal(t, "contract_ABC-123_2024-01-01.pdf", result.FileName)
	assert.Equal(t, []byte("%PDF"), result.Content)
}

func TestExportGroupsPaymentsByContract(t *testing.T) {
	f := newServiceFixture(t)
	first := existingContract()
	second := existingContract()
	firstID := first.ID

	f.contracts.EXPECT().ListContracts(gomock.Any(), gomock.Any()).Return([]model.Contract{*first, *second}, nil)
	f.payments.EXPECT().ListPayments(gomock.Any(), gomock.Any()).Return([]model.Payment{
		{ContractID: &firstID, Type: model.PaymentTypePayment, Status: model.PaymentStatusCompleted, Amount: decimal.NewFromInt(100)},
	}, nil)
	f.sheets.EXPECT().Generate(gomock.Any()).DoAndReturn(
		func(sheet model.ContractSheet) ([]byte, error) {
			require.Len(t, sheet.Rows, 2)
			assert.True(t, decimal.NewFromInt(100).Equal(sheet.Rows[0].Balance.TotalPaid))
			assert.True(t, sheet.Rows[1].Balance.TotalPaid.IsZero())
			return []byte("xlsx"), nil
		})

	result, err := f.svc.Export(context.Background(), model.ContractFilter{})
	require.NoError(t, err)
	assert.Equal(t, "contracts_2024-03-10.xlsx", result.FileName)
}

func TestAvailability(t *testing.T) {
	f := newServiceFixture(t)
	vehicleID, driverID := uuid.New(), uuid.New()

	f.contracts.EXPECT().HasConflict(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q model.AvailabilityQuery) (bool, error) {
			assert.Nil(t, q.End)
			return false, nil
		})

	result, err := f.svc.Availability(context.Background(), AvailabilityInput{
		VehicleID: vehicleID,
		DriverID:  driverID,
		StartDate: "2024-02-01",
	})
	require.NoError(t, err)
	assert.True(t, result.Available)

	_, err = f.svc.Availability(context.Background(), AvailabilityInput{
		VehicleID: vehicleID,
		DriverID:  driverID,
		StartDate: "2024-02-01",
		EndDate:   ptr("2024-01-01"),
	})
	require.ErrorIs(t, err, ErrInvalidDateRange)
}
