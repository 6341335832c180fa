package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/rental-contracts/internal/model"
)

// DirectoryRepository reads drivers, vehicles and the status lookup. Those
// records are maintained by the fleet back office.
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) GetDriver(ctx context.Context, id uuid.UUID) (*model.DriverSummary, error) {
	drivers, err := r.driversByID(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	driver, ok := drivers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &driver, nil
}

func (r *DirectoryRepository) GetVehicle(ctx context.Context, id uuid.UUID) (*model.VehicleSummary, error) {
	vehicles, err := r.vehiclesByID(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	vehicle, ok := vehicles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &vehicle, nil
}

func (r *DirectoryRepository) GetStatus(ctx context.Context, id uuid.UUID) (*model.Status, error) {
	var status model.Status
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *DirectoryRepository) driversByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.DriverSummary, error) {
	var drivers []model.DriverSummary
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&drivers).Error; err != nil {
		return nil, fmt.Errorf("loading drivers: %w", err)
	}

	statuses, err := r.statusesByID(ctx, driverStatusIDs(drivers))
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]model.DriverSummary, len(drivers))
	for _, d := range drivers {
		d.Status = model.DriverStatusUnknown
		if d.StatusID != nil {
			if s, ok := statuses[*d.StatusID]; ok {
				d.Status = model.ParseDriverStatus(s.Name)
			}
		}
		result[d.ID] = d
	}
	return result, nil
}

func (r *DirectoryRepository) vehiclesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.VehicleSummary, error) {
	var vehicles []model.VehicleSummary
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("loading vehicles: %w", err)
	}

	statusIDs := make([]uuid.UUID, 0, len(vehicles))
	for _, v := range vehicles {
		if v.StatusID != nil {
			statusIDs = append(statusIDs, *v.StatusID)
		}
	}
	statuses, err := r.statusesByID(ctx, statusIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]model.VehicleSummary, len(vehicles))
	for _, v := range vehicles {
		v.Status = model.VehicleStatusUnknown
		if v.StatusID != nil {
			if s, ok := statuses[*v.StatusID]; ok {
				v.StatusName = s.Name
				v.Status = model.ParseVehicleStatus(s.Name)
			}
		}
		result[v.ID] = v
	}
	return result, nil
}

func (r *DirectoryRepository) statusesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Status, error) {
	result := map[uuid.UUID]model.Status{}
	if len(ids) == 0 {
		return result, nil
	}

	var statuses []model.Status
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("loading statuses: %w", err)
	}
	for _, s := range statuses {
		result[s.ID] = s
	}
	return result, nil
}

func driverStatusIDs(drivers []model.DriverSummary) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(drivers))
	for _, d := range drivers {
		if d.StatusID != nil {
			ids = append(ids, *d.StatusID)
		}
	}
	return ids
}
