package model

import "github.com/google/uuid"

// DriverSummary is the read-only projection of a driver owned by the fleet
// registry.
type DriverSummary struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	DocumentNumber string
	Phone          string
	Email          string
	StatusID       *uuid.UUID
	Status         DriverStatus `gorm:"-"`
}

func (DriverSummary) TableName() string {
	return "drivers"
}

func (d DriverSummary) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// VehicleSummary is the read-only projection of a fleet vehicle.
type VehicleSummary struct {
	ID       uuid.UUID
	Plate    string
	Brand    string
	Model    string
	Year     int
	StatusID *uuid.UUID
	Status   VehicleStatus `gorm:"-"`
	// StatusName keeps the raw lookup name for display.
	StatusName string `gorm:"-"`
}

func (VehicleSummary) TableName() string {
	return "vehicles"
}
