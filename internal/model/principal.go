package model

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleOperator UserRole = "OPERATOR"
	UserRoleDriver   UserRole = "DRIVER"
)

type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

func (p Principal) IsDriver() bool {
	return p.Role == UserRoleDriver
}

func (p Principal) CanManageContracts() bool {
	return p.Role == UserRoleAdmin || p.Role == UserRoleOperator
}
