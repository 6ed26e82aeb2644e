package booking

import (
	"time"

	"stayfront/internal/domain"
)

// CreateRequest is the booking-creation snapshot assembled by the wizard on
// final submission. The breakdown is the one the guest saw and confirmed,
// never a freshly recomputed one.
type CreateRequest struct {
	BusinessUnitID string
	RoomTypeID     string

	GuestName  string
	GuestEmail string
	GuestPhone string
	Notes      string

	CheckInDate  time.Time
	CheckOutDate time.Time
	Adults       int
	Children     int

	Breakdown domain.PriceBreakdown
}

type CreateResult struct {
	BookingID        string `json:"booking_id"`
	PaymentSessionID string `json:"payment_session_id"`
	CheckoutURL      string `json:"checkout_url"`
}
