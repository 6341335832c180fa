package model

import (
	"strings"

	"github.com/google/uuid"
)

type StatusModule string

const (
	StatusModuleDriver   StatusModule = "driver"
	StatusModuleVehicle  StatusModule = "vehicle"
	StatusModuleContract StatusModule = "contract"
	StatusModulePayment  StatusModule = "payment"
)

// Status is a row of the shared status lookup maintained by the back office.
// It is only read here; decisions are taken on the per-entity enums below.
type Status struct {
	ID     uuid.UUID
	Name   string
	Module StatusModule
	Color  string
}

func (Status) TableName() string {
	return "statuses"
}

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusActive, ContractStatusCompleted, ContractStatusExpired, ContractStatusCancelled:
		return true
	}
	return false
}

func (s ContractStatus) Terminal() bool {
	switch s {
	case ContractStatusCompleted, ContractStatusExpired, ContractStatusCancelled:
		return true
	}
	return false
}

// Blocks reports whether a contract in this status occupies its vehicle and
// driver for scheduling purposes.
func (s ContractStatus) Blocks() bool {
	return s != ContractStatusCancelled
}

// CanTransition reports whether a manual status update from s to next is
// allowed. Cancelled and expired contracts may be reactivated.
func (s ContractStatus) CanTransition(next ContractStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case ContractStatusActive:
		return next.Terminal()
	case ContractStatusCancelled, ContractStatusExpired:
		return next == ContractStatusActive
	}
	return false
}

// ParseContractStatus accepts the enum value as well as the legacy lookup
// names ("Vigente", "Completado", "Vencido", "Cancelado").
func ParseContractStatus(raw string) (ContractStatus, bool) {
	switch normalizeStatusName(raw) {
	case "active", "vigente", "activo":
		return ContractStatusActive, true
	case "completed", "completado", "finalizado":
		return ContractStatusCompleted, true
	case "expired", "vencido":
		return ContractStatusExpired, true
	case "cancelled", "canceled", "cancelado", "anulado":
		return ContractStatusCancelled, true
	}
	return "", false
}

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusInactive    VehicleStatus = "INACTIVE"
	VehicleStatusUnknown     VehicleStatus = "UNKNOWN"
)

func ParseVehicleStatus(raw string) VehicleStatus {
	switch normalizeStatusName(raw) {
	case "available", "disponible":
		return VehicleStatusAvailable
	case "rented", "alquilado", "rentado", "en uso", "asignado":
		return VehicleStatusRented
	case "maintenance", "mantenimiento", "en mantenimiento", "en taller":
		return VehicleStatusMaintenance
	case "inactive", "inactivo", "fuera de servicio":
		return VehicleStatusInactive
	}
	return VehicleStatusUnknown
}

type DriverStatus string

const (
	DriverStatusActive    DriverStatus = "ACTIVE"
	DriverStatusInactive  DriverStatus = "INACTIVE"
	DriverStatusSuspended DriverStatus = "SUSPENDED"
	DriverStatusUnknown   DriverStatus = "UNKNOWN"
)

func ParseDriverStatus(raw string) DriverStatus {
	switch normalizeStatusName(raw) {
	case "active", "activo":
		return DriverStatusActive
	case "inactive", "inactivo":
		return DriverStatusInactive
	case "suspended", "suspendido":
		return DriverStatusSuspended
	}
	return DriverStatusUnknown
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch normalizeStatusName(raw) {
	case "pending", "pendiente":
		return PaymentStatusPending, true
	case "completed", "completado", "pagado", "paid":
		return PaymentStatusCompleted, true
	case "cancelled", "canceled", "cancelado":
		return PaymentStatusCancelled, true
	}
	return "", false
}

func normalizeStatusName(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}
