package repository

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/nurpe/rental-contracts/internal/model"
)

// ErrRangeConflict is returned when the database rejects a contract because
// its date range overlaps another booking of the same vehicle or driver.
var ErrRangeConflict = errors.New("contract range overlaps an existing booking")

const exclusionViolation = "23P01"

// BookingTx is a write transaction holding the scheduling locks for one
// vehicle and one driver. Availability checks made through it cannot race
// with other bookings of the same vehicle or driver.
type BookingTx interface {
	HasConflict(ctx context.Context, query model.AvailabilityQuery) (bool, error)
	CreateContract(ctx context.Context, contract *model.Contract) error
	UpdateContract(ctx context.Context, id uuid.UUID, patch model.ContractPatch) error
	CreatePayment(ctx context.Context, payment *model.Payment) error
	Commit() error
	Rollback() error
}

type bookingTx struct {
	tx      *gorm.DB
	done    bool
	release func()
}

// BeginBooking opens a transaction and serialises it against every other
// booking touching vehicleID or driverID. On PostgreSQL this is a pair of
// transaction-scoped advisory locks; other dialects fall back to a
// process-wide mutex.
func (r *ContractRepository) BeginBooking(ctx context.Context, vehicleID, driverID uuid.UUID) (BookingTx, error) {
	release := func() {}
	postgres := r.db.Dialector.Name() == "postgres"
	if !postgres {
		r.bookingMu.Lock()
		var once sync.Once
		release = func() { once.Do(r.bookingMu.Unlock) }
	}

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		release()
		return nil, fmt.Errorf("begin booking tx: %w", tx.Error)
	}

	if postgres {
		for _, key := range bookingLockKeys(vehicleID, driverID) {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", key).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("acquiring booking lock: %w", err)
			}
		}
	}

	return &bookingTx{tx: tx, release: release}, nil
}

func (b *bookingTx) HasConflict(ctx context.Context, query model.AvailabilityQuery) (bool, error) {
	return hasConflict(b.tx.WithContext(ctx), query)
}

func (b *bookingTx) CreateContract(ctx context.Context, contract *model.Contract) error {
	if err := b.tx.WithContext(ctx).Create(contract).Error; err != nil {
		return fmt.Errorf("inserting contract: %w", translateError(err))
	}
	return nil
}

func (b *bookingTx) UpdateContract(ctx context.Context, id uuid.UUID, patch model.ContractPatch) error {
	return updateContract(b.tx.WithContext(ctx), id, patch)
}

func (b *bookingTx) CreatePayment(ctx context.Context, payment *model.Payment) error {
	if err := b.tx.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}

func (b *bookingTx) Commit() error {
	if b.done {
		return nil
	}
	b.done = true
	defer b.release()
	if err := b.tx.Commit().Error; err != nil {
		return fmt.Errorf("commit booking: %w", translateError(err))
	}
	return nil
}

// Rollback is a no-op after Commit so it can be deferred unconditionally.
func (b *bookingTx) Rollback() error {
	if b.done {
		return nil
	}
	b.done = true
	defer b.release()
	return b.tx.Rollback().Error
}

// hasConflict looks for a non-cancelled contract on the same vehicle or
// driver whose range intersects the requested one. Both ends are inclusive
// and a missing end date extends to infinity.
func hasConflict(db *gorm.DB, query model.AvailabilityQuery) (bool, error) {
	sql := `
		SELECT COUNT(*)
		FROM contracts
		WHERE (vehicle_id = ? OR driver_id = ?)
			AND status <> ?
			AND (end_date IS NULL OR end_date >= ?)
	`
	args := []interface{}{query.VehicleID, query.DriverID, model.ContractStatusCancelled, query.Start}
	if query.End != nil {
		sql += " AND start_date <= ?"
		args = append(args, *query.End)
	}
	if query.ExcludeID != uuid.Nil {
		sql += " AND id <> ?"
		args = append(args, query.ExcludeID)
	}

	var count int64
	if err := db.Raw(sql, args...).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("checking availability: %w", err)
	}
	return count > 0, nil
}

func updateContract(db *gorm.DB, id uuid.UUID, patch model.ContractPatch) error {
	columns := patchColumns(patch)
	if len(columns) == 0 {
		return nil
	}
	columns["updated_at"] = time.Now().UTC()

	result := db.Model(&model.Contract{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("updating contract: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func patchColumns(patch model.ContractPatch) map[string]interface{} {
	columns := map[string]interface{}{}
	if patch.StartDate != nil {
		columns["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		columns["end_date"] = *patch.EndDate
	} else if patch.ClearEndDate {
		columns["end_date"] = nil
	}
	if patch.Type != nil {
		columns["type"] = *patch.Type
	}
	if patch.BasePrice != nil {
		columns["base_price"] = *patch.BasePrice
	}
	if patch.DailyPrice != nil {
		columns["daily_price"] = *patch.DailyPrice
	}
	if patch.MonthlyPrice != nil {
		columns["monthly_price"] = *patch.MonthlyPrice
	}
	if patch.TotalAmount != nil {
		columns["total_amount"] = *patch.TotalAmount
	}
	if patch.Deposit != nil {
		columns["deposit"] = *patch.Deposit
	}
	if patch.PenaltyRate != nil {
		columns["penalty_rate"] = *patch.PenaltyRate
	}
	if patch.AllowedDelayDays != nil {
		columns["allowed_delay_days"] = *patch.AllowedDelayDays
	}
	if patch.AutomaticRenewal != nil {
		columns["automatic_renewal"] = *patch.AutomaticRenewal
	}
	if patch.Status != nil {
		columns["status"] = *patch.Status
	}
	if patch.StatusID != nil {
		columns["status_id"] = *patch.StatusID
	} else if patch.ClearStatusID {
		columns["status_id"] = nil
	}
	if patch.Terms != nil {
		columns["terms"] = *patch.Terms
	}
	if patch.Notes != nil {
		columns["notes"] = *patch.Notes
	}
	return columns
}

func bookingLockKeys(vehicleID, driverID uuid.UUID) []int64 {
	keys := []int64{
		lockKey("vehicle", vehicleID),
		lockKey("driver", driverID),
	}
	// Fixed order so two bookings never wait on each other's second lock.
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func lockKey(scope string, id uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(scope))
	h.Write([]byte{0})
	h.Write(id[:])

	return int64(h.Sum64())
}

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
		return fmt.Errorf("%w (%s)", ErrRangeConflict, pgErr.ConstraintName)
	}
	return err
}
