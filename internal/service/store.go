package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nurpe/rental-contracts/internal/model"
	"github.com/nurpe/rental-contracts/internal/repository"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=service
//go:generate mockgen -destination=booking_mock.go -package=service github.com/nurpe/rental-contracts/internal/repository BookingTx

type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	ListContracts(ctx context.Context, filter model.ContractFilter) ([]model.Contract, error)
	ListActive(ctx context.Context, day time.Time) ([]model.Contract, error)
	ListExpiring(ctx context.Context, from, to time.Time) ([]model.Contract, error)
	SearchContracts(ctx context.Context, term string) ([]model.Contract, error)
	CountByStatus(ctx context.Context) (map[model.ContractStatus]int64, error)
	HasConflict(ctx context.Context, query model.AvailabilityQuery) (bool, error)
	BeginBooking(ctx context.Context, vehicleID, driverID uuid.UUID) (repository.BookingTx, error)
	DeleteContract(ctx context.Context, id uuid.UUID) error
	ExpireContracts(ctx context.Context, day time.Time) (int64, error)
}

type PaymentStore interface {
	CreatePayment(ctx context.Context, payment *model.Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	ListPayments(ctx context.Context, filter model.PaymentFilter) ([]model.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error
	SumCollected(ctx context.Context) (decimal.Decimal, error)
}

// Directory resolves the drivers, vehicles and statuses that contracts
// reference.
type Directory interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*model.DriverSummary, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*model.VehicleSummary, error)
	GetStatus(ctx context.Context, id uuid.UUID) (*model.Status, error)
}

type DocumentRenderer interface {
	Generate(doc model.ContractDocument) ([]byte, error)
}

type SheetRenderer interface {
	Generate(sheet model.ContractSheet) ([]byte, error)
}
