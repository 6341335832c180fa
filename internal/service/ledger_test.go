package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/nurpe/rental-contracts/internal/model"
)

type ledgerFixture struct {
	contracts *MockContractStore
	payments  *MockPaymentStore
	directory *MockDirectory
	svc       *LedgerService
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	ctrl := gomock.NewController(t)
	f := &ledgerFixture{
		contracts: NewMockContractStore(ctrl),
		payments:  NewMockPaymentStore(ctrl),
		directory: NewMockDirectory(ctrl),
	}
	f.svc = NewLedgerService(f.payments, f.contracts, f.directory)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestContractValue(t *testing.T) {
	jan31 := day(2024, 1, 31)
	mar15 := day(2024, 3, 15)

	cases := []struct {
		name     string
		contract model.Contract
		want     int64
	}{
		{
			name: "explicit total wins",
			contract: model.Contract{
				Type:        model.ContractTypeDaily,
				StartDate:   day(2024, 1, 1),
				EndDate:     &jan31,
				DailyPrice:  decimal.NewNullDecimal(decimal.NewFromInt(50)),
				TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(1200)),
			},
			want: 1200,
		},
		{
			name: "daily counts both ends",
			contract: model.Contract{
				Type:       model.ContractTypeDaily,
				StartDate:  day(2024, 1, 1),
				EndDate:    &jan31,
				DailyPrice: decimal.NewNullDecimal(decimal.NewFromInt(50)),
			},
			want: 1550,
		},
		{
			name: "monthly bills started months",
			contract: model.Contract{
				Type:         model.ContractTypeMonthly,
				StartDate:    day(2024, 1, 1),
				EndDate:      &mar15,
				MonthlyPrice: decimal.NewNullDecimal(decimal.NewFromInt(900)),
			},
			want: 2700,
		},
		{
			name: "open-ended daily up to as-of date",
			contract: model.Contract{
				Type:       model.ContractTypeDaily,
				StartDate:  day(2024, 3, 1),
				DailyPrice: decimal.NewNullDecimal(decimal.NewFromInt(10)),
			},
			want: 100,
		},
		{
			name: "daily range spanning centuries",
			contract: model.Contract{
				Type:       model.ContractTypeDaily,
				StartDate:  day(2024, 1, 1),
				EndDate:    ptrTime(day(2400, 1, 1)),
				DailyPrice: decimal.NewNullDecimal(decimal.NewFromInt(1)),
			},
			want: 137332,
		},
		{
			name: "custom uses base price",
			contract: model.Contract{
				Type:      model.ContractTypeCustom,
				StartDate: day(2024, 1, 1),
				BasePrice: decimal.NewNullDecimal(decimal.NewFromInt(640)),
			},
			want: 640,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ContractValue(tc.contract, fixedNow)
			assert.True(t, decimal.NewFromInt(tc.want).Equal(got), "got %s", got)
		})
	}
}

func TestAggregateBalance(t *testing.T) {
	contract := model.Contract{
		ID:          uuid.New(),
		Type:        model.ContractTypeCustom,
		TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
	}
	payments := []model.Payment{
		{Type: model.PaymentTypeDeposit, Status: model.PaymentStatusCompleted, Amount: decimal.NewFromInt(200)},
		{Type: model.PaymentTypePayment, Status: model.PaymentStatusCompleted, Amount: decimal.NewFromInt(300)},
		{Type: model.PaymentTypePayment, Status: model.PaymentStatusPending, Amount: decimal.NewFromInt(500)},
		{Type: model.PaymentTypeRefund, Status: model.PaymentStatusCompleted, Amount: decimal.NewFromInt(50)},
		{Type: model.PaymentTypePenalty, Status: model.PaymentStatusPending, Amount: decimal.NewFromInt(20)},
		{Type: model.PaymentTypePenalty, Status: model.PaymentStatusCancelled, Amount: decimal.NewFromInt(99)},
	}

	balance := AggregateBalance(contract, payments, fixedNow)
	assert.Equal(t, contract.ID, balance.ContractID)
	assert.True(t, decimal.NewFromInt(1000).Equal(balance.TotalValue))
	assert.True(t, decimal.NewFromInt(450).Equal(balance.TotalPaid))
	assert.True(t, decimal.NewFromInt(20).Equal(balance.Penalties))
	assert.True(t, decimal.NewFromInt(570).Equal(balance.Balance))
}

func TestRecordPaymentInfersDriverFromContract(t *testing.T) {
	f := newLedgerFixture(t)
	contract := existingContract()

	f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.directory.EXPECT().GetDriver(gomock.Any(), contract.DriverID).Return(&model.DriverSummary{ID: contract.DriverID}, nil)
	f.payments.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)

	payment, err := f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		ContractID: &contract.ID,
		Amount:     decimal.NewFromInt(150),
		Type:       "payment",
		Method:     "cash",
		Principal:  operator(),
	})
	require.NoError(t, err)
	assert.Equal(t, contract.DriverID, payment.DriverID)
	assert.Equal(t, model.PaymentStatusPending, payment.Status)
	assert.Equal(t, fixedNow, payment.Date)
}

func TestRecordPaymentRejectsDriverMismatch(t *testing.T) {
	f := newLedgerFixture(t)
	contract := existingContract()

	f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

	_, err := f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		ContractID: &contract.ID,
		DriverID:   uuid.New(),
		Amount:     decimal.NewFromInt(150),
		Type:       "payment",
		Principal:  operator(),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordPaymentValidation(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		DriverID:  uuid.New(),
		Amount:    decimal.Zero,
		Type:      "payment",
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		DriverID:  uuid.New(),
		Amount:    decimal.NewFromInt(10),
		Type:      "tip",
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		Amount:    decimal.NewFromInt(10),
		Type:      "payment",
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		DriverID:  uuid.New(),
		Amount:    decimal.NewFromInt(10),
		Type:      "payment",
		Principal: model.Principal{Role: model.UserRoleDriver},
	})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRecordPaymentUnknownContract(t *testing.T) {
	f := newLedgerFixture(t)
	id := uuid.New()

	f.contracts.EXPECT().GetContract(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		ContractID: &id,
		Amount:     decimal.NewFromInt(10),
		Type:       "payment",
		Principal:  operator(),
	})
	require.ErrorIs(t, err, ErrContractNotFound)
}

func TestRecordPaymentUnknownDriver(t *testing.T) {
	f := newLedgerFixture(t)
	driverID := uuid.New()

	f.directory.EXPECT().GetDriver(gomock.Any(), driverID).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.RecordPayment(context.Background(), RecordPaymentInput{
		DriverID:  driverID,
		Amount:    decimal.NewFromInt(10),
		Type:      "penalty",
		Principal: operator(),
	})
	require.ErrorIs(t, err, ErrDriverNotFound)
}

func TestUpdatePaymentStatus(t *testing.T) {
	f := newLedgerFixture(t)
	id := uuid.New()

	f.payments.EXPECT().GetPayment(gomock.Any(), id).
		Return(&model.Payment{ID: id, Status: model.PaymentStatusPending}, nil)
	f.payments.EXPECT().UpdatePaymentStatus(gomock.Any(), id, model.PaymentStatusCompleted).Return(nil)

	payment, err := f.svc.UpdateStatus(context.Background(), id, "Pagado", operator())
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusCompleted, payment.Status)
}

func TestUpdatePaymentStatusCannotReopenCancelled(t *testing.T) {
	f := newLedgerFixture(t)
	id := uuid.New()

	f.payments.EXPECT().GetPayment(gomock.Any(), id).
		Return(&model.Payment{ID: id, Status: model.PaymentStatusCancelled}, nil)

	_, err := f.svc.UpdateStatus(context.Background(), id, "completed", operator())
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBalanceMissingContract(t *testing.T) {
	f := newLedgerFixture(t)
	id := uuid.New()

	f.contracts.EXPECT().GetContract(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Balance(context.Background(), id)
	require.ErrorIs(t, err, ErrContractNotFound)
}
