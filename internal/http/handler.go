package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/rental-contracts/internal/http/middleware"
	"github.com/nurpe/rental-contracts/internal/model"
	"github.com/nurpe/rental-contracts/internal/service"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	contracts *service.ContractService
	ledger    *service.LedgerService
	log       zerolog.Logger
}

func NewHandler(contracts *service.ContractService, ledger *service.LedgerService, log zerolog.Logger) *Handler {
	return &Handler{contracts: contracts, ledger: ledger, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", h.health)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	contracts := protected.Group("/contracts")
	contracts.POST("", h.createContract)
	contracts.GET("", h.listContracts)
	contracts.GET("/active", h.activeContracts)
	contracts.GET("/expiring", h.expiringContracts)
	contracts.GET("/search", h.searchContracts)
	contracts.GET("/stats", h.contractStats)
	contracts.GET("/availability", h.checkAvailability)
	contracts.GET("/export", h.exportContracts)
	contracts.GET("/driver/:driverId", h.contractsByDriver)
	contracts.GET("/vehicle/:vehicleId", h.contractsByVehicle)
	contracts.GET("/status/:status", h.contractsByStatus)
	contracts.GET("/:id", h.getContract)
	contracts.PUT("/:id", h.updateContract)
	contracts.DELETE("/:id", h.deleteContract)
	contracts.POST("/:id/calculate-penalty", h.calculatePenalty)
	contracts.GET("/:id/download", h.downloadContract)
	contracts.GET("/:id/balance", h.contractBalance)
	contracts.GET("/:id/payments", h.contractPayments)

	payments := protected.Group("/payments")
	payments.POST("", h.recordPayment)
	payments.GET("", h.listPayments)
	payments.PATCH("/:id/status", h.updatePaymentStatus)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func principalOrAbort(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody("missing principal", "Unauthorized"))
	}
	return principal, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid "+name, "ValidationError"))
		return uuid.Nil, false
	}
	return id, true
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid "+name, "ValidationError"))
		return nil, false
	}
	return &id, true
}

func errorBody(message, code string) gin.H {
	return gin.H{"message": message, "error": code}
}

func attachment(c *gin.Context, contentType, fileName string, content []byte) {
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, contentType, content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status, code := classifyError(err)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(status, errorBody("internal error", code))
		return
	}
	c.JSON(status, errorBody(err.Error(), code))
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, service.ErrInvalidDateRange):
		return http.StatusBadRequest, "InvalidDateRange"
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "ValidationError"
	case errors.Is(err, service.ErrDriverNotFound):
		return http.StatusNotFound, "DriverNotFound"
	case errors.Is(err, service.ErrVehicleNotFound):
		return http.StatusNotFound, "VehicleNotFound"
	case errors.Is(err, service.ErrContractNotFound):
		return http.StatusNotFound, "ContractNotFound"
	case errors.Is(err, service.ErrPaymentNotFound):
		return http.StatusNotFound, "PaymentNotFound"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "NotFoundError"
	case errors.Is(err, service.ErrVehicleUnavailable):
		return http.StatusBadRequest, "VehicleUnavailable"
	case errors.Is(err, service.ErrSchedulingConflict):
		return http.StatusBadRequest, "SchedulingConflict"
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, "ConflictError"
	default:
		return http.StatusInternalServerError, "PersistenceError"
	}
}
