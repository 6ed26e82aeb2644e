package domain

import "time"

type BookingStatus string

const (
	BookingCreated        BookingStatus = "created"
	BookingPaymentPending BookingStatus = "payment_pending"
	BookingPaid           BookingStatus = "paid"
	BookingFailed         BookingStatus = "failed"
	BookingCancelled      BookingStatus = "cancelled"
)

// Terminal reports whether no further status change is expected.
func (s BookingStatus) Terminal() bool {
	return s == BookingPaid || s == BookingFailed || s == BookingCancelled
}

// Booking is the persisted reservation. It holds a snapshot of the guest and
// stay details plus the price breakdown the guest confirmed at submission;
// the price is never recomputed after creation.
type Booking struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	BusinessUnitID string `json:"business_unit_id" gorm:"index;not null"`
	RoomTypeID     string `json:"room_type_id" gorm:"index;not null"`

	GuestName  string `json:"guest_name" validate:"required"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	GuestPhone string `json:"guest_phone,omitempty"`
	Notes      string `json:"notes,omitempty" gorm:"type:text"`

	CheckInDate  time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate time.Time `json:"check_out_date" validate:"required"`
	Adults       int       `json:"adults" validate:"required,gte=1"`
	Children     int       `json:"children" validate:"gte=0"`

	Nights      int     `json:"nights"`
	Subtotal    float64 `json:"subtotal" validate:"gte=0"`
	Taxes       float64 `json:"taxes" validate:"gte=0"`
	ServiceFee  float64 `json:"service_fee" validate:"gte=0"`
	TotalAmount float64 `json:"total_amount" validate:"gte=0"`
	Currency    string  `json:"currency" gorm:"type:varchar(3)"`

	Status             BookingStatus `json:"status" gorm:"type:varchar(20);index;default:'created'"`
	ConfirmationNumber string        `json:"confirmation_number,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
