package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

var (
	ErrInvalidDateRange   = fmt.Errorf("%w: invalid date range", ErrInvalidInput)
	ErrDriverNotFound     = fmt.Errorf("driver %w", ErrNotFound)
	ErrVehicleNotFound    = fmt.Errorf("vehicle %w", ErrNotFound)
	ErrContractNotFound   = fmt.Errorf("contract %w", ErrNotFound)
	ErrPaymentNotFound    = fmt.Errorf("payment %w", ErrNotFound)
	ErrVehicleUnavailable = fmt.Errorf("%w: vehicle is not available", ErrConflict)
	ErrSchedulingConflict = fmt.Errorf("%w: vehicle or driver already booked for the requested dates", ErrConflict)
)
