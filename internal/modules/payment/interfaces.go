package payment

import (
	"context"
	"time"

	"stayfront/internal/domain"
)

// Provider abstracts the external payment service: create a hosted checkout
// session, then pull its status until it settles.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetSessionStatus(ctx context.Context, providerSessionID string) (*SessionStatus, error)
}

type sessionRepo interface {
	GetByID(ctx context.Context, id string) (*domain.PaymentSession, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentSessionStatus, failureReason string, paidAt *time.Time) error
}

type bookingWriter interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	MarkPaid(ctx context.Context, id, confirmation string) (bool, error)
}
