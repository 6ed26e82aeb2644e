package payment

import "stayfront/internal/domain"

type CheckoutRequest struct {
	BookingID     string
	Description   string
	Amount        float64
	Currency      string
	CustomerEmail string
}

// CheckoutSession is the provider-side handle: where to send the guest and
// how to ask about the session later.
type CheckoutSession struct {
	ProviderSessionID string
	CheckoutURL       string
}

type SessionStatus struct {
	Status domain.PaymentSessionStatus
	Reason string
}

type StatusResponse struct {
	Status             domain.PaymentSessionStatus `json:"status"`
	ConfirmationNumber string                      `json:"confirmation_number,omitempty"`
	FailureReason      string                      `json:"failure_reason,omitempty"`
}
