package repository

import (
	"context"
	"time"

	"stayfront/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) GetRange(ctx context.Context, roomTypeID string, from, to time.Time) ([]domain.RoomAvailability, error) {
	var out []domain.RoomAvailability
	err := r.db.WithContext(ctx).
		Where("room_type_id = ? AND date >= ? AND date < ?", roomTypeID, from, to).
		Order("date").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
