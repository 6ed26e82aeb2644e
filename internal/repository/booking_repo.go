package repository

import (
	"context"
	"errors"
	"time"

	"stayfront/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	BusinessUnitID string    `gorm:"column:business_unit_id"`
	RoomTypeID     string    `gorm:"column:room_type_id"`
	GuestName      string    `gorm:"column:guest_name"`
	GuestEmail     string    `gorm:"column:guest_email"`
	GuestPhone     *string   `gorm:"column:guest_phone"`
	Notes          *string   `gorm:"column:notes"`
	CheckInDate    time.Time `gorm:"column:check_in_date"`
	CheckOutDate   time.Time `gorm:"column:check_out_date"`
	Adults         int       `gorm:"column:adults"`
	Children       int       `gorm:"column:children"`
	Nights         int       `gorm:"column:nights"`
	Subtotal       float64   `gorm:"column:subtotal"`
	Taxes          float64   `gorm:"column:taxes"`
	ServiceFee     float64   `gorm:"column:service_fee"`
	TotalAmount    float64   `gorm:"column:total_amount"`
	Currency       string    `gorm:"column:currency"`
	Status         string    `gorm:"column:status"`
	Confirmation   *string   `gorm:"column:confirmation_number"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var phone, notes, confirmation string
	if m.GuestPhone != nil {
		phone = *m.GuestPhone
	}
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.Confirmation != nil {
		confirmation = *m.Confirmation
	}

	return &domain.Booking{
		ID:                 m.ID,
		BusinessUnitID:     m.BusinessUnitID,
		RoomTypeID:         m.RoomTypeID,
		GuestName:          m.GuestName,
		GuestEmail:         m.GuestEmail,
		GuestPhone:         phone,
		Notes:              notes,
		CheckInDate:        m.CheckInDate,
		CheckOutDate:       m.CheckOutDate,
		Adults:             m.Adults,
		Children:           m.Children,
		Nights:             m.Nights,
		Subtotal:           m.Subtotal,
		Taxes:              m.Taxes,
		ServiceFee:         m.ServiceFee,
		TotalAmount:        m.TotalAmount,
		Currency:           m.Currency,
		Status:             domain.BookingStatus(m.Status),
		ConfirmationNumber: confirmation,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var phone, notes, confirmation *string
	if b.GuestPhone != "" {
		v := b.GuestPhone
		phone = &v
	}
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.ConfirmationNumber != "" {
		v := b.ConfirmationNumber
		confirmation = &v
	}

	return bookingModel{
		ID:             b.ID,
		BusinessUnitID: b.BusinessUnitID,
		RoomTypeID:     b.RoomTypeID,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     phone,
		Notes:          notes,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		Adults:         b.Adults,
		Children:       b.Children,
		Nights:         b.Nights,
		Subtotal:       b.Subtotal,
		Taxes:          b.Taxes,
		ServiceFee:     b.ServiceFee,
		TotalAmount:    b.TotalAmount,
		Currency:       b.Currency,
		Status:         string(b.Status),
		Confirmation:   confirmation,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByConfirmationNumber(ctx context.Context, confirmation string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("confirmation_number = ?", confirmation).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// MarkPaid moves the booking to paid and assigns its confirmation number,
// exactly once. Returns false if the booking was already paid.
func (r *BookingRepository) MarkPaid(ctx context.Context, id, confirmation string) (bool, error) {
	var changed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&m).Error; err != nil {
			return err
		}
		if m.Status == string(domain.BookingPaid) {
			changed = false
			return nil
		}
		res := tx.Model(&bookingModel{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":              string(domain.BookingPaid),
			"confirmation_number": confirmation,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("booking row not updated")
		}
		changed = true
		return nil
	})
	return changed, err
}
