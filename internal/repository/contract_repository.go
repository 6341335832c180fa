package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/rental-contracts/internal/model"
)

type ContractRepository struct {
	db        *gorm.DB
	directory *DirectoryRepository

	bookingMu sync.Mutex
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db, directory: NewDirectoryRepository(db)}
}

// GetContract loads a contract with its driver, vehicle, status lookup and
// payments.
func (r *ContractRepository) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error; err != nil {
		return nil, err
	}

	contracts := []model.Contract{contract}
	if err := r.hydrate(ctx, contracts); err != nil {
		return nil, err
	}
	contract = contracts[0]

	var payments []model.Payment
	if err := r.db.WithContext(ctx).
		Where("contract_id = ?", id).
		Order("date ASC").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("loading payments: %w", err)
	}
	contract.Payments = payments

	return &contract, nil
}

func (r *ContractRepository) ListContracts(ctx context.Context, filter model.ContractFilter) ([]model.Contract, error) {
	query := r.db.WithContext(ctx).Model(&model.Contract{})
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var contracts []model.Contract
	if err := query.Order("start_date DESC").Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	return contracts, r.hydrate(ctx, contracts)
}

// ListActive returns ACTIVE contracts whose range covers day.
func (r *ContractRepository) ListActive(ctx context.Context, day time.Time) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ContractStatusActive).
		Where("start_date <= ?", day).
		Where("end_date IS NULL OR end_date >= ?", day).
		Order("start_date ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("listing active contracts: %w", err)
	}
	return contracts, r.hydrate(ctx, contracts)
}

// ListExpiring returns ACTIVE contracts ending within [from, to].
func (r *ContractRepository) ListExpiring(ctx context.Context, from, to time.Time) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ContractStatusActive).
		Where("end_date IS NOT NULL AND end_date >= ? AND end_date <= ?", from, to).
		Order("end_date ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("listing expiring contracts: %w", err)
	}
	return contracts, r.hydrate(ctx, contracts)
}

func (r *ContractRepository) SearchContracts(ctx context.Context, term string) ([]model.Contract, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Model(&model.Contract{}).
		Select("contracts.*").
		Joins("JOIN drivers d ON d.id = contracts.driver_id").
		Joins("JOIN vehicles v ON v.id = contracts.vehicle_id").
		Where(`LOWER(contracts.terms) LIKE ?
			OR LOWER(contracts.notes) LIKE ?
			OR LOWER(d.first_name) LIKE ?
			OR LOWER(d.last_name) LIKE ?
			OR LOWER(d.document_number) LIKE ?
			OR LOWER(v.plate) LIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern).
		Order("contracts.start_date DESC").
		Find(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("searching contracts: %w", err)
	}
	return contracts, r.hydrate(ctx, contracts)
}

func (r *ContractRepository) CountByStatus(ctx context.Context) (map[model.ContractStatus]int64, error) {
	var rows []struct {
		Status model.ContractStatus
		Total  int64
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS total
		FROM contracts
		GROUP BY status
	`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("counting contracts: %w", err)
	}

	counts := make(map[model.ContractStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// HasConflict runs the availability query outside any booking transaction.
// The answer is advisory; bookings re-check under lock.
func (r *ContractRepository) HasConflict(ctx context.Context, query model.AvailabilityQuery) (bool, error) {
	return hasConflict(r.db.WithContext(ctx), query)
}

// DeleteContract removes a contract together with the payments it owns.
func (r *ContractRepository) DeleteContract(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contract_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
			return fmt.Errorf("deleting contract payments: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&model.Contract{})
		if result.Error != nil {
			return fmt.Errorf("deleting contract: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ExpireContracts marks ACTIVE contracts that ended before day as EXPIRED.
func (r *ContractRepository) ExpireContracts(ctx context.Context, day time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Contract{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", model.ContractStatusActive, day).
		Updates(map[string]interface{}{
			"status":     model.ContractStatusExpired,
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

// hydrate attaches driver, vehicle and status lookups to contracts in place.
func (r *ContractRepository) hydrate(ctx context.Context, contracts []model.Contract) error {
	if len(contracts) == 0 {
		return nil
	}

	driverIDs := make([]uuid.UUID, 0, len(contracts))
	vehicleIDs := make([]uuid.UUID, 0, len(contracts))
	statusIDs := make([]uuid.UUID, 0)
	for _, c := range contracts {
		driverIDs = append(driverIDs, c.DriverID)
		vehicleIDs = append(vehicleIDs, c.VehicleID)
		if c.StatusID != nil {
			statusIDs = append(statusIDs, *c.StatusID)
		}
	}

	drivers, err := r.directory.driversByID(ctx, driverIDs)
	if err != nil {
		return err
	}
	vehicles, err := r.directory.vehiclesByID(ctx, vehicleIDs)
	if err != nil {
		return err
	}
	statuses, err := r.directory.statusesByID(ctx, statusIDs)
	if err != nil {
		return err
	}

	for i := range contracts {
		if d, ok := drivers[contracts[i].DriverID]; ok {
			contracts[i].Driver = &d
		}
		if v, ok := vehicles[contracts[i].VehicleID]; ok {
			contracts[i].Vehicle = &v
		}
		if contracts[i].StatusID != nil {
			if s, ok := statuses[*contracts[i].StatusID]; ok {
				contracts[i].StatusLookup = &s
			}
		}
	}
	return nil
}
