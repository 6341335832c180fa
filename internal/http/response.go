package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nurpe/rental-contracts/internal/model"
)

type driverResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	DocumentNumber string    `json:"documentNumber"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	Status         string    `json:"status"`
}

type vehicleResponse struct {
	ID         uuid.UUID `json:"id"`
	Plate      string    `json:"plate"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	Status     string    `json:"status"`
	StatusName string    `json:"statusName,omitempty"`
}

type statusResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Module string    `json:"module"`
	Color  string    `json:"color,omitempty"`
}

type paymentResponse struct {
	ID          uuid.UUID       `json:"id"`
	ContractID  *uuid.UUID      `json:"contractId,omitempty"`
	DriverID    uuid.UUID       `json:"driverId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Method      string          `json:"method,omitempty"`
	Status      string          `json:"status"`
	Date        time.Time       `json:"date"`
	DueDate     *string         `json:"dueDate,omitempty"`
	Description string          `json:"description,omitempty"`
	Reference   string          `json:"reference,omitempty"`
}

type contractResponse struct {
	ID               uuid.UUID           `json:"id"`
	DriverID         uuid.UUID           `json:"driverId"`
	VehicleID        uuid.UUID           `json:"vehicleId"`
	StartDate        string              `json:"startDate"`
	EndDate          *string             `json:"endDate"`
	Type             string              `json:"type"`
	BasePrice        decimal.NullDecimal `json:"basePrice"`
	DailyPrice       decimal.NullDecimal `json:"dailyPrice"`
	MonthlyPrice     decimal.NullDecimal `json:"monthlyPrice"`
	TotalAmount      decimal.NullDecimal `json:"totalAmount"`
	Deposit          decimal.NullDecimal `json:"deposit"`
	PenaltyRate      decimal.Decimal     `json:"penaltyRate"`
	AllowedDelayDays int                 `json:"allowedDelayDays"`
	AutomaticRenewal bool                `json:"automaticRenewal"`
	Status           string              `json:"status"`
	StatusID         *uuid.UUID          `json:"statusId"`
	Terms            string              `json:"terms"`
	Notes            string              `json:"notes"`
	CreatedBy        *uuid.UUID          `json:"createdBy,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	Driver           *driverResponse     `json:"driver,omitempty"`
	Vehicle          *vehicleResponse    `json:"vehicle,omitempty"`
	StatusInfo       *statusResponse     `json:"statusInfo,omitempty"`
	Payments         []paymentResponse   `json:"payments,omitempty"`
}

type balanceResponse struct {
	ContractID uuid.UUID       `json:"contractId"`
	TotalValue decimal.Decimal `json:"totalValue"`
	TotalPaid  decimal.Decimal `json:"totalPaid"`
	Penalties  decimal.Decimal `json:"penalties"`
	Balance    decimal.Decimal `json:"balance"`
}

type statsResponse struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"byStatus"`
	ActiveToday    int64            `json:"activeToday"`
	ExpiringSoon   int64            `json:"expiringSoon"`
	ExpiringWithin int              `json:"expiringWithinDays"`
	CollectedTotal decimal.Decimal  `json:"collectedTotal"`
}

func toContractResponse(c model.Contract) contractResponse {
	resp := contractResponse{
		ID:               c.ID,
		DriverID:         c.DriverID,
		VehicleID:        c.VehicleID,
		StartDate:        c.StartDate.Format(time.DateOnly),
		EndDate:          formatOptionalDate(c.EndDate),
		Type:             string(c.Type),
		BasePrice:        c.BasePrice,
		DailyPrice:       c.DailyPrice,
		MonthlyPrice:     c.MonthlyPrice,
		TotalAmount:      c.TotalAmount,
		Deposit:          c.Deposit,
		PenaltyRate:      c.PenaltyRate,
		AllowedDelayDays: c.AllowedDelayDays,
		AutomaticRenewal: c.AutomaticRenewal,
		Status:           string(c.Status),
		StatusID:         c.StatusID,
		Terms:            c.Terms,
		Notes:            c.Notes,
		CreatedBy:        c.CreatedBy,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.Driver != nil {
		resp.Driver = &driverResponse{
			ID:             c.Driver.ID,
			FirstName:      c.Driver.FirstName,
			LastName:       c.Driver.LastName,
			DocumentNumber: c.Driver.DocumentNumber,
			Phone:          c.Driver.Phone,
			Email:          c.Driver.Email,
			Status:         string(c.Driver.Status),
		}
	}
	if c.Vehicle != nil {
		resp.Vehicle = &vehicleResponse{
			ID:         c.Vehicle.ID,
			Plate:      c.Vehicle.Plate,
			Brand:      c.Vehicle.Brand,
			Model:      c.Vehicle.Model,
			Year:       c.Vehicle.Year,
			Status:     string(c.Vehicle.Status),
			StatusName: c.Vehicle.StatusName,
		}
	}
	if c.StatusLookup != nil {
		resp.StatusInfo = &statusResponse{
			ID:     c.StatusLookup.ID,
			Name:   c.StatusLookup.Name,
			Module: string(c.StatusLookup.Module),
			Color:  c.StatusLookup.Color,
		}
	}
	if len(c.Payments) > 0 {
		resp.Payments = toPaymentResponses(c.Payments)
	}
	return resp
}

func toContractResponses(contracts []model.Contract) []contractResponse {
	resp := make([]contractResponse, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, toContractResponse(c))
	}
	return resp
}

func toPaymentResponse(p model.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		ContractID:  p.ContractID,
		DriverID:    p.DriverID,
		Amount:      p.Amount,
		Type:        string(p.Type),
		Method:      p.Method,
		Status:      string(p.Status),
		Date:        p.Date,
		DueDate:     formatOptionalDate(p.DueDate),
		Description: p.Description,
		Reference:   p.Reference,
	}
}

func toPaymentResponses(payments []model.Payment) []paymentResponse {
	resp := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, toPaymentResponse(p))
	}
	return resp
}

func toBalanceResponse(b model.Balance) balanceResponse {
	return balanceResponse{
		ContractID: b.ContractID,
		TotalValue: b.TotalValue,
		TotalPaid:  b.TotalPaid,
		Penalties:  b.Penalties,
		Balance:    b.Balance,
	}
}

func toStatsResponse(s model.ContractStats) statsResponse {
	byStatus := make(map[string]int64, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[string(status)] = n
	}
	return statsResponse{
		Total:          s.Total,
		ByStatus:       byStatus,
		ActiveToday:    s.ActiveToday,
		ExpiringSoon:   s.ExpiringSoon,
		ExpiringWithin: s.ExpiringWithin,
		CollectedTotal: s.CollectedTotal,
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.DateOnly)
	return &formatted
}
