package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nurpe/rental-contracts/internal/model"
	"github.com/nurpe/rental-contracts/internal/service"
)

type recordPaymentRequest struct {
	ContractID  *string         `json:"contractId"`
	DriverID    *string         `json:"driverId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" binding:"required"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
	DueDate     string          `json:"dueDate"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
}

type updatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) recordPayment(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error(), "ValidationError"))
		return
	}
	contractID, ok := parseOptionalUUID(c, req.ContractID, "contractId")
	if !ok {
		return
	}
	driverID, ok := parseOptionalUUID(c, req.DriverID, "driverId")
	if !ok {
		return
	}

	input := service.RecordPaymentInput{
		ContractID:  contractID,
		Amount:      req.Amount,
		Type:        req.Type,
		Method:      req.Method,
		Status:      req.Status,
		Date:        req.Date,
		DueDate:     req.DueDate,
		Description: req.Description,
		Reference:   req.Reference,
		Principal:   principal,
	}
	if driverID != nil {
		input.DriverID = *driverID
	}

	payment, err := h.ledger.RecordPayment(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(*payment))
}

func (h *Handler) listPayments(c *gin.Context) {
	contractID, ok := optionalUUIDQuery(c, "contractId")
	if !ok {
		return
	}
	driverID, ok := optionalUUIDQuery(c, "driverId")
	if !ok {
		return
	}
	filter := model.PaymentFilter{ContractID: contractID, DriverID: driverID}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := model.ParsePaymentStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, errorBody("invalid status", "ValidationError"))
			return
		}
		filter.Status = &status
	}

	payments, err := h.ledger.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponses(payments))
}

func (h *Handler) updatePaymentStatus(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid id", "ValidationError"))
		return
	}

	var req updatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error(), "ValidationError"))
		return
	}

	payment, err := h.ledger.UpdateStatus(c.Request.Context(), id, req.Status, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(*payment))
}
