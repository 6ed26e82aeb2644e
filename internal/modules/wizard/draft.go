package wizard

import (
	"time"

	"stayfront/internal/domain"
	"stayfront/internal/modules/stay"
)

// Step is one screen of the booking wizard. Steps are linear and navigable
// forward (with validation) and backward (always) until submission.
type Step string

const (
	StepGuestDetails Step = "guest_details"
	StepStayDetails  Step = "stay_details"
	StepReviewAndPay Step = "review_and_pay"
)

var stepOrder = []Step{StepGuestDetails, StepStayDetails, StepReviewAndPay}

func (s Step) index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return 0
}

func (s Step) next() (Step, bool) {
	i := s.index()
	if i >= len(stepOrder)-1 {
		return s, false
	}
	return stepOrder[i+1], true
}

func (s Step) prev() (Step, bool) {
	i := s.index()
	if i <= 0 {
		return s, false
	}
	return stepOrder[i-1], true
}

// Draft is the wizard's accumulated state across steps. It lives in the
// draft store until submitted or expired; it is never written to the
// booking tables before final submission.
type Draft struct {
	ID             string `json:"id"`
	BusinessUnitID string `json:"business_unit_id"`
	RoomTypeID     string `json:"room_type_id"`

	Step Step `json:"step"`

	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone,omitempty"`
	Notes      string `json:"notes,omitempty"`

	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`

	// Breakdown is the last computed quote; nil whenever dates or occupancy
	// changed since. QuoteGeneration tags quote requests so a slow, stale
	// response can never overwrite a newer one.
	Breakdown       *domain.PriceBreakdown `json:"breakdown,omitempty"`
	QuoteGeneration uint64                 `json:"quote_generation"`

	Submitting       bool   `json:"submitting"`
	BookingID        string `json:"booking_id,omitempty"`
	PaymentSessionID string `json:"payment_session_id,omitempty"`
	CheckoutURL      string `json:"checkout_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Draft) stayInput() stay.Input {
	return stay.Input{
		GuestName:    d.GuestName,
		GuestEmail:   d.GuestEmail,
		CheckInDate:  d.CheckInDate,
		CheckOutDate: d.CheckOutDate,
		Adults:       d.Adults,
		Children:     d.Children,
	}
}

func (d *Draft) submitted() bool { return d.BookingID != "" }
