package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/rental-contracts/internal/model"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetPayment(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListPayments(ctx context.Context, filter model.PaymentFilter) ([]model.Payment, error) {
	query := r.db.WithContext(ctx).Model(&model.Payment{})
	if filter.ContractID != nil {
		query = query.Where("contract_id = ?", *filter.ContractID)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var payments []model.Payment
	if err := query.Order("date ASC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumCollected totals completed payments and deposits net of completed
// refunds across all contracts.
func (r *PaymentRepository) SumCollected(ctx context.Context) (decimal.Decimal, error) {
	var rows []struct {
		Type   model.PaymentType
		Amount decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Select("type, amount").
		Where("status = ?", model.PaymentStatusCompleted).
		Where("type IN ?", []model.PaymentType{model.PaymentTypePayment, model.PaymentTypeDeposit, model.PaymentTypeRefund}).
		Scan(&rows).Error; err != nil {
		return decimal.Zero, fmt.Errorf("summing payments: %w", err)
	}

	total := decimal.Zero
	for _, row := range rows {
		if row.Type == model.PaymentTypeRefund {
			total = total.Sub(row.Amount)
			continue
		}
		total = total.Add(row.Amount)
	}
	return total, nil
}
