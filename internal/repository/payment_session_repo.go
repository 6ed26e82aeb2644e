package repository

import (
	"context"
	"time"

	"stayfront/internal/domain"

	"gorm.io/gorm"
)

type PaymentSessionRepository struct {
	db *gorm.DB
}

func NewPaymentSessionRepository(db *gorm.DB) *PaymentSessionRepository {
	return &PaymentSessionRepository{db: db}
}

func (r *PaymentSessionRepository) Create(ctx context.Context, s *domain.PaymentSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PaymentSessionRepository) GetByID(ctx context.Context, id string) (*domain.PaymentSession, error) {
	var s domain.PaymentSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PaymentSessionRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.PaymentSession, error) {
	var s domain.PaymentSession
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PaymentSessionRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentSessionStatus, failureReason string, paidAt *time.Time) error {
	updates := map[string]interface{}{
		"status":         string(status),
		"failure_reason": failureReason,
	}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}
	return r.db.WithContext(ctx).
		Model(&domain.PaymentSession{}).
		Where("id = ?", id).
		Updates(updates).Error
}
