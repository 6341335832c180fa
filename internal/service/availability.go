package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/rental-contracts/internal/model"
)

// ConflictFinder is satisfied by both the contract store and an open
// booking transaction.
type ConflictFinder interface {
	HasConflict(ctx context.Context, query model.AvailabilityQuery) (bool, error)
}

// AvailabilityChecker answers whether a vehicle and driver are free for a
// date range. A nil end means the booking never ends.
type AvailabilityChecker struct {
	finder ConflictFinder
}

func NewAvailabilityChecker(finder ConflictFinder) *AvailabilityChecker {
	return &AvailabilityChecker{finder: finder}
}

func (a *AvailabilityChecker) HasConflict(ctx context.Context, vehicleID, driverID uuid.UUID, start time.Time, end *time.Time) (bool, error) {
	return a.finder.HasConflict(ctx, model.AvailabilityQuery{
		VehicleID: vehicleID,
		DriverID:  driverID,
		Start:     dateOnly(start),
		End:       end,
	})
}

func ensureAvailable(ctx context.Context, finder ConflictFinder, query model.AvailabilityQuery) error {
	conflict, err := finder.HasConflict(ctx, query)
	if err != nil {
		return err
	}
	if conflict {
		return ErrSchedulingConflict
	}
	return nil
}

type AvailabilityInput struct {
	VehicleID uuid.UUID
	DriverID  uuid.UUID
	StartDate string
	EndDate   *string
}

type AvailabilityResult struct {
	Available bool
	Start     time.Time
	End       *time.Time
}

func (s *ContractService) Availability(ctx context.Context, input AvailabilityInput) (*AvailabilityResult, error) {
	if input.VehicleID == uuid.Nil || input.DriverID == uuid.Nil {
		return nil, fmt.Errorf("%w: vehicleId and driverId are required", ErrInvalidInput)
	}
	start, end, err := parseRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	conflict, err := s.availability.HasConflict(ctx, input.VehicleID, input.DriverID, start, end)
	if err != nil {
		return nil, err
	}
	return &AvailabilityResult{Available: !conflict, Start: start, End: end}, nil
}
