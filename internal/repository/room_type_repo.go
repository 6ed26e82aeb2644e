package repository

import (
	"context"

	"stayfront/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, businessUnitID, roomTypeID string) (*domain.RoomType, error) {
	var rt domain.RoomType
	err := r.db.WithContext(ctx).
		Where("id = ? AND business_unit_id = ? AND is_active = ?", roomTypeID, businessUnitID, true).
		First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RoomTypeRepository) ListByBusinessUnit(ctx context.Context, businessUnitID string) ([]domain.RoomType, error) {
	var out []domain.RoomType
	err := r.db.WithContext(ctx).
		Where("business_unit_id = ? AND is_active = ?", businessUnitID, true).
		Order("name").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
