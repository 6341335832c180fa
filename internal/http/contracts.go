package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nurpe/rental-contracts/internal/model"
	"github.com/nurpe/rental-contracts/internal/service"
)

type createContractRequest struct {
	DriverID         string           `json:"driverId" binding:"required"`
	VehicleID        string           `json:"vehicleId" binding:"required"`
	StartDate        string           `json:"startDate"`
	EndDate          *string          `json:"endDate"`
	Type             string           `json:"type"`
	BasePrice        *decimal.Decimal `json:"basePrice"`
	DailyPrice       *decimal.Decimal `json:"dailyPrice"`
	MonthlyPrice     *decimal.Decimal `json:"monthlyPrice"`
	TotalAmount      *decimal.Decimal `json:"totalAmount"`
	Deposit          *decimal.Decimal `json:"deposit"`
	PenaltyRate      *decimal.Decimal `json:"penaltyRate"`
	AllowedDelayDays *int             `json:"allowedDelayDays"`
	AutomaticRenewal bool             `json:"automaticRenewal"`
	StatusID         *string          `json:"statusId"`
	Terms            string           `json:"terms"`
	Notes            string           `json:"notes"`
}

type updateContractRequest struct {
	StartDate        *string          `json:"startDate"`
	EndDate          *string          `json:"endDate"`
	Type             *string          `json:"type"`
	BasePrice        *decimal.Decimal `json:"basePrice"`
	DailyPrice       *decimal.Decimal `json:"dailyPrice"`
	MonthlyPrice     *decimal.Decimal `json:"monthlyPrice"`
	TotalAmount      *decimal.Decimal `json:"totalAmount"`
	Deposit          *decimal.Decimal `json:"deposit"`
	PenaltyRate      *decimal.Decimal `json:"penaltyRate"`
	AllowedDelayDays *int             `json:"allowedDelayDays"`
	AutomaticRenewal *bool            `json:"automaticRenewal"`
	Status           *string          `json:"status"`
	StatusID         *string          `json:"statusId"`
	Terms            *string          `json:"terms"`
	Notes            *string          `json:"notes"`
}

type calculatePenaltyRequest struct {
	Base             *decimal.Decimal `json:"base"`
	PenaltyRate      *decimal.Decimal `json:"penaltyRate"`
	DaysLate         int              `json:"daysLate"`
	AllowedDelayDays *int             `json:"allowedDelayDays"`
	Record           bool             `json:"record"`
}

func (h *Handler) createContract(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error(), "ValidationError"))
		return
	}
	driverID, err := uuid.Parse(strings.TrimSpace(req.DriverID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid driverId", "ValidationError"))
		return
	}
	vehicleID, err := uuid.Parse(strings.TrimSpace(req.VehicleID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid vehicleId", "ValidationError"))
		return
	}
	statusID, ok := parseOptionalUUID(c, req.StatusID, "statusId")
	if !ok {
		return
	}

	contract, err := h.contracts.Create(c.Request.Context(), service.CreateContractInput{
		DriverID:         driverID,
		VehicleID:        vehicleID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Type:             req.Type,
		BasePrice:        req.BasePrice,
		DailyPrice:       req.DailyPrice,
		MonthlyPrice:     req.MonthlyPrice,
		TotalAmount:      req.TotalAmount,
		Deposit:          req.Deposit,
		PenaltyRate:      req.PenaltyRate,
		AllowedDelayDays: req.AllowedDelayDays,
		AutomaticRenewal: req.AutomaticRenewal,
		StatusID:         statusID,
		Terms:            req.Terms,
		Notes:            req.Notes,
		Principal:        principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toContractResponse(*contract))
}

func (h *Handler) listContracts(c *gin.Context) {
	driverID, ok := optionalUUIDQuery(c, "driverId")
	if !ok {
		return
	}
	vehicleID, ok := optionalUUIDQuery(c, "vehicleId")
	if !ok {
		return
	}
	filter := model.ContractFilter{DriverID: driverID, VehicleID: vehicleID}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := model.ParseContractStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, errorBody("invalid status", "ValidationError"))
			return
		}
		filter.Status = &status
	}

	contracts, err := h.contracts.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) activeContracts(c *gin.Context) {
	contracts, err := h.contracts.Active(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) expiringContracts(c *gin.Context) {
	days := 0
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody("invalid days", "ValidationError"))
			return
		}
		days = parsed
	}

	contracts, err := h.contracts.Expiring(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) searchContracts(c *gin.Context) {
	contracts, err := h.contracts.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) contractStats(c *gin.Context) {
	stats, err := h.contracts.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(*stats))
}

func (h *Handler) checkAvailability(c *gin.Context) {
	vehicleID, ok := optionalUUIDQuery(c, "vehicleId")
	if !ok {
		return
	}
	driverID, ok := optionalUUIDQuery(c, "driverId")
	if !ok {
		return
	}
	if vehicleID == nil || driverID == nil {
		c.JSON(http.StatusBadRequest, errorBody("vehicleId and driverId are required", "ValidationError"))
		return
	}

	var endDate *string
	if raw, present := c.GetQuery("endDate"); present {
		endDate = &raw
	}
	result, err := h.contracts.Availability(c.Request.Context(), service.AvailabilityInput{
		VehicleID: *vehicleID,
		DriverID:  *driverID,
		StartDate: c.Query("startDate"),
		EndDate:   endDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": result.Available,
		"startDate": result.Start.Format("2006-01-02"),
		"endDate":   formatOptionalDate(result.End),
	})
}

func (h *Handler) exportContracts(c *gin.Context) {
	driverID, ok := optionalUUIDQuery(c, "driverId")
	if !ok {
		return
	}
	vehicleID, ok := optionalUUIDQuery(c, "vehicleId")
	if !ok {
		return
	}

	result, err := h.contracts.Export(c.Request.Context(), model.ContractFilter{DriverID: driverID, VehicleID: vehicleID})
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, contentTypeXLSX, result.FileName, result.Content)
}

func (h *Handler) contractsByDriver(c *gin.Context) {
	driverID, ok := uuidParam(c, "driverId")
	if !ok {
		return
	}
	contracts, err := h.contracts.ByDriver(c.Request.Context(), driverID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) contractsByVehicle(c *gin.Context) {
	vehicleID, ok := uuidParam(c, "vehicleId")
	if !ok {
		return
	}
	contracts, err := h.contracts.ByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) contractsByStatus(c *gin.Context) {
	contracts, err := h.contracts.ByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponses(contracts))
}

func (h *Handler) getContract(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	contract, err := h.contracts.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(*contract))
}

func (h *Handler) updateContract(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req updateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error(), "ValidationError"))
		return
	}
	statusID, ok := parseOptionalUUID(c, req.StatusID, "statusId")
	if !ok {
		return
	}

	contract, err := h.contracts.Update(c.Request.Context(), id, service.UpdateContractInput{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Type:             req.Type,
		BasePrice:        req.BasePrice,
		DailyPrice:       req.DailyPrice,
		MonthlyPrice:     req.MonthlyPrice,
		TotalAmount:      req.TotalAmount,
		Deposit:          req.Deposit,
		PenaltyRate:      req.PenaltyRate,
		AllowedDelayDays: req.AllowedDelayDays,
		AutomaticRenewal: req.AutomaticRenewal,
		Status:           req.Status,
		StatusID:         statusID,
		Terms:            req.Terms,
		Notes:            req.Notes,
		Principal:        principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(*contract))
}

func (h *Handler) deleteContract(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) calculatePenalty(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req calculatePenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error(), "ValidationError"))
		return
	}

	result, err := h.contracts.CalculatePenalty(c.Request.Context(), id, service.PenaltyInput{
		Base:             req.Base,
		PenaltyRate:      req.PenaltyRate,
		DaysLate:         req.DaysLate,
		AllowedDelayDays: req.AllowedDelayDays,
		Record:           req.Record,
		Principal:        principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	data := gin.H{"penalty": result.Penalty}
	if result.Payment != nil {
		data["payment"] = toPaymentResponse(*result.Payment)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *Handler) downloadContract(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.contracts.Document(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	attachment(c, contentTypePDF, result.FileName, result.Content)
}

func (h *Handler) contractBalance(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	balance, err := h.ledger.Balance(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBalanceResponse(*balance))
}

func (h *Handler) contractPayments(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.contracts.Get(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	payments, err := h.ledger.List(c.Request.Context(), model.PaymentFilter{ContractID: &id})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponses(payments))
}

func parseOptionalUUID(c *gin.Context, raw *string, name string) (*uuid.UUID, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, true
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid "+name, "ValidationError"))
		return nil, false
	}
	return &id, true
}
